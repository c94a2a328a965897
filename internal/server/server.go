package server

import (
	"context"
	"log/slog"
	"net/http"

	"football-lines-service/internal/config"
	httpadmin "football-lines-service/internal/http"
	"football-lines-service/internal/lines"
	"football-lines-service/internal/logging"
	"football-lines-service/internal/metrics"
	"football-lines-service/internal/poller"
	"football-lines-service/internal/providers"
	"football-lines-service/internal/providers/scrape"
	"football-lines-service/internal/sheet"
	"football-lines-service/internal/state"
	"football-lines-service/internal/tasks"
)

var metricsSetup = metrics.Setup

// Version is stamped at build time.
var Version = "dev"

// Server owns the poll loops, the sheet sync runner, and the admin HTTP
// surface, and shuts them down together.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	sheetClient   *sheet.Client
	runner        *tasks.Runner
	pollers       Pollers
	provider      providers.GameProvider
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	stateClose    func() error
}

// New wires the full service from configuration.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)

	base := selectProvider(cfg, logger)
	provider := newProviderFactory(logger, recorder).wrap(cfg, base)

	stateStore, stateClose, err := buildState(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sheetClient, sheetWriter, err := buildSheet(ctx, cfg, logger, recorder)
	if err != nil {
		return nil, err
	}

	resolver := lines.NewResolver(logger, recorder, lineSources(cfg, base)...)
	runner := tasks.NewRunner(sheetWriter, resolver, stateStore, logger, recorder)

	snaps := buildSnapshots(cfg)
	pollers := buildPollers(cfg, provider, runner, snaps, logger, recorder)

	httpSrv := buildHTTPServer(cfg, pollers, snaps, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		sheetClient:   sheetClient,
		runner:        runner,
		pollers:       pollers,
		provider:      provider,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		stateClose:    stateClose,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, pollers Pollers) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		pollers:    pollers,
	}
}

// lineSources orders the odds sources: the scoreboard payload the slate
// already carries, then the per-event summary, then the HTML fallback.
func lineSources(cfg config.Config, base providers.GameProvider) []providers.LineProvider {
	sources := []providers.LineProvider{providers.EmbeddedLines{}}
	if lp, ok := base.(providers.LineProvider); ok {
		sources = append(sources, lp)
	}
	sources = append(sources, scrape.New(scrape.Config{BaseURL: cfg.Scrape.BaseURL}))
	return sources
}

func buildState(ctx context.Context, cfg config.Config) (state.Store, func() error, error) {
	if cfg.State.Backend == "redis" {
		rs, err := state.NewRedisStore(ctx, state.RedisConfig{
			Addr: cfg.State.RedisAddr,
			DB:   cfg.State.RedisDB,
			TTL:  cfg.State.TTL,
		})
		if err != nil {
			return nil, nil, err
		}
		return rs, rs.Close, nil
	}
	return state.NewMemoryStore(), nil, nil
}

// buildSheet returns the real client when a spreadsheet is configured and a
// discarding writer otherwise, so local runs work without credentials.
func buildSheet(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*sheet.Client, tasks.SheetWriter, error) {
	if cfg.Sheet.SpreadsheetID == "" {
		logging.Warn(logger, "no spreadsheet configured, sheet writes disabled")
		return nil, discardSheet{logger: logger}, nil
	}
	client, err := sheet.NewClient(ctx, sheet.Config{
		SpreadsheetID:   cfg.Sheet.SpreadsheetID,
		CredentialsFile: cfg.Sheet.CredentialsFile,
		Endpoint:        cfg.Sheet.Endpoint,
		Tabs:            cfg.Sheet.Tabs,
	}, logger, recorder)
	if err != nil {
		return nil, nil, err
	}
	return client, client, nil
}

func buildPollers(cfg config.Config, provider providers.GameProvider, runner *tasks.Runner, snaps snapshotComponents, logger *slog.Logger, recorder *metrics.Recorder) *poller.Orchestrator {
	cadence := poller.Cadence{Min: cfg.MinInterval, Max: cfg.MaxInterval}
	ps := make([]*poller.Poller, 0, len(cfg.Leagues))
	for _, league := range cfg.Leagues {
		ps = append(ps, poller.New(league, provider, runner, snaps.writer, logger, recorder, cadence))
	}
	return poller.NewOrchestrator(ps...)
}

func buildHTTPServer(cfg config.Config, pollers Pollers, snaps snapshotComponents, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := httpadmin.NewHandler(pollers, snaps.store, recorder, logger, Version)
	router := httpadmin.NewRouter(handler, logger, recorder, httpadmin.RouterConfig{
		AllowedOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts the pollers and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	if s.sheetClient != nil {
		if err := s.sheetClient.EnsureHeaders(ctx); err != nil {
			logging.Error(s.logger, "failed to ensure sheet headers", err)
		}
	}

	s.startMetrics()
	s.startServer(stop)
	s.pollers.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.pollers.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop pollers", err)
	}

	// Stop rate-limited providers to avoid ticker leaks.
	if rl, ok := s.provider.(interface{ Close() }); ok {
		rl.Close()
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}
	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.stateClose != nil {
		if err := s.stateClose(); err != nil {
			logging.Warn(s.logger, "state store close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
