package providers

import (
	"context"
	"log/slog"
	"time"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/logging"
)

// loggingProvider tags every fetch record with the provider name, so logs
// from layered providers stay attributable.
type loggingProvider struct {
	inner  GameProvider
	logger *slog.Logger
	name   string
}

// NewLoggingProvider wraps a provider so every fetch is logged under its name.
func NewLoggingProvider(inner GameProvider, logger *slog.Logger, name string) GameProvider {
	return &loggingProvider{inner: inner, logger: logger, name: name}
}

func (l *loggingProvider) FetchGames(ctx context.Context, league domain.League, date string) ([]domain.Game, error) {
	if l.inner == nil {
		return nil, ErrProviderUnavailable
	}

	start := time.Now()
	games, err := l.inner.FetchGames(ctx, league, date)

	logger := logging.FromContext(ctx, l.logger)
	if logger == nil {
		return games, err
	}
	args := []any{
		slog.String(logging.FieldProvider, l.name),
		slog.String(logging.FieldLeague, string(league)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	}
	if err != nil {
		logger.Error("provider fetch failed", append(args, slog.Any("error", err))...)
		return nil, err
	}
	logger.Debug("provider fetch", append(args, slog.Int(logging.FieldCount, len(games)))...)
	return games, nil
}

// Close forwards to the wrapped provider so shutdown reaches the rate limiter.
func (l *loggingProvider) Close() {
	if c, ok := l.inner.(interface{ Close() }); ok {
		c.Close()
	}
}
