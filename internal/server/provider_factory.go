package server

import (
	"log/slog"

	"football-lines-service/internal/config"
	"football-lines-service/internal/metrics"
	"football-lines-service/internal/providers"
)

// providerFactory assembles the game provider with shared wrappers
// (rate limit + retry + fetch logging).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// wrap layers the shared rate limiter, retry policy, and fetch logging around
// a base provider.
func (f providerFactory) wrap(cfg config.Config, base providers.GameProvider) providers.GameProvider {
	name := normalizeProviderName(cfg.Provider.Name, base)
	limited := providers.NewRateLimitedProvider(base, cfg.Provider.MinGap, f.logger)
	retried := providers.NewRetryingProvider(limited, f.logger, f.metrics, name, cfg.Provider.RetryMaxElapsed)
	return providers.NewLoggingProvider(retried, f.logger, name)
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}
