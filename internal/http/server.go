package http

import (
	"net/http"

	"github.com/tbouchet/squadcheck/internal/config"
	"github.com/tbouchet/squadcheck/internal/history"
	"github.com/tbouchet/squadcheck/internal/metrics"
	"github.com/tbouchet/squadcheck/internal/notifier"
	"github.com/tbouchet/squadcheck/internal/recon"
)

func NewServer(assembler *recon.Assembler, runs history.RunStore, notifier notifier.Notifier, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Assembler:      assembler,
		History:        runs,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware, recoverMiddleware))
	s.Router.Handle("/analyze", Chain(s.AnalyzeHandler(), paramsMiddleware, recoverMiddleware))
	s.Router.Handle("/runs", Chain(s.ListRunsHandler(), paramsMiddleware, recoverMiddleware))
	s.Router.Handle("/", Chain(s.HomeHandler(), paramsMiddleware, recoverMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
