package http

import (
	"net/http"

	"github.com/tbouchet/squadcheck/internal/config"
	"github.com/tbouchet/squadcheck/internal/history"
	"github.com/tbouchet/squadcheck/internal/metrics"
	"github.com/tbouchet/squadcheck/internal/notifier"
	"github.com/tbouchet/squadcheck/internal/recon"
)

type Server struct {
	Assembler      *recon.Assembler
	History        history.RunStore
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
