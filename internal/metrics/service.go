package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		AnalysisRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "squadcheck_analyses_total",
			Help: "The total number of roster analyses run.",
		}),
		AnalysisFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "squadcheck_analysis_failures_total",
			Help: "The total number of roster analyses that ended in an error response.",
		}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "squadcheck_analysis_duration_seconds",
			Help:    "The duration of a full roster analysis, including provider fetches and pacing pauses.",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		}),
		ProviderFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "squadcheck_provider_fetches_total",
			Help: "The total number of live roster fetch attempts against the provider.",
		}),
		ProviderFetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "squadcheck_provider_fetch_failures_total",
			Help: "The total number of failed roster fetch attempts.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "squadcheck_roster_cache_hits_total",
			Help: "The total number of rosters served from the on-disk cache.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "squadcheck_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "squadcheck_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "squadcheck_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.AnalysisRuns,
		s.AnalysisFailures,
		s.AnalysisDuration,
		s.ProviderFetches,
		s.ProviderFetchFailures,
		s.CacheHits,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncAnalysisRuns() {
	s.AnalysisRuns.Inc()
}

func (s *Service) IncAnalysisFailures() {
	s.AnalysisFailures.Inc()
}

func (s *Service) ObserveAnalysisDuration(duration float64) {
	s.AnalysisDuration.Observe(duration)
}

func (s *Service) IncProviderFetches() {
	s.ProviderFetches.Inc()
}

func (s *Service) IncProviderFetchFailures() {
	s.ProviderFetchFailures.Inc()
}

func (s *Service) IncCacheHits() {
	s.CacheHits.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
