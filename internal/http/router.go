package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/rs/cors"

	"football-lines-service/internal/metrics"
)

// RouterConfig controls optional router features.
type RouterConfig struct {
	// MetricsHandler, when set, is mounted at /metrics.
	MetricsHandler nethttp.Handler
	// AllowedOrigins for CORS; empty means same-origin only.
	AllowedOrigins []string
}

// NewRouter registers the admin routes and wraps them with logging, metrics,
// and CORS middleware.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder, cfg RouterConfig) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/status", handler.Status)
	mux.HandleFunc("/slates", handler.Slates)
	mux.HandleFunc("/slates/", handler.Slate)
	if cfg.MetricsHandler != nil {
		mux.Handle("/metrics", cfg.MetricsHandler)
	}

	var root nethttp.Handler = mux
	if len(cfg.AllowedOrigins) > 0 {
		root = cors.New(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{nethttp.MethodGet},
		}).Handler(root)
	}
	root = MetricsMiddleware(recorder, root)
	return LoggingMiddleware(logger, root)
}
