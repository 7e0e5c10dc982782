package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncAnalysisRuns()
	IncAnalysisFailures()
	ObserveAnalysisDuration(duration float64)
	IncProviderFetches()
	IncProviderFetchFailures()
	IncCacheHits()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
