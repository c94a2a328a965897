package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/logging"
	"football-lines-service/internal/metrics"
)

const (
	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxElapsed     = 45 * time.Second
)

// retryingProvider wraps a GameProvider with exponential backoff retries.
type retryingProvider struct {
	inner      GameProvider
	logger     *slog.Logger
	metrics    *metrics.Recorder
	name       string
	maxElapsed time.Duration
}

// NewRetryingProvider wraps the given provider with retries.
// If maxElapsed <= 0 a default window is used.
func NewRetryingProvider(inner GameProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxElapsed time.Duration) GameProvider {
	if maxElapsed <= 0 {
		maxElapsed = defaultMaxElapsed
	}
	return &retryingProvider{
		inner:      inner,
		logger:     logger,
		metrics:    recorder,
		name:       name,
		maxElapsed: maxElapsed,
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context, league domain.League, date string) ([]domain.Game, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = defaultInitialBackoff
	policy.MaxElapsedTime = r.maxElapsed

	var games []domain.Game
	attempt := 0

	op := func() error {
		attempt++
		start := time.Now()
		fetched, err := r.inner.FetchGames(ctx, league, date)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err != nil {
			if rl, ok := AsRateLimitError(err); ok {
				r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
			}
			r.logWarn(ctx, "provider fetch retry",
				slog.Int("attempt", attempt),
				slog.String(logging.FieldLeague, string(league)),
				slog.Any("error", err),
			)
			return err
		}
		games = fetched
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		r.logWarn(ctx, "provider fetch failed",
			slog.Int("attempts", attempt),
			slog.String(logging.FieldLeague, string(league)),
			slog.Any("error", err),
		)
		return nil, err
	}
	return games, nil
}

// Close forwards to the wrapped provider so shutdown reaches the rate limiter.
func (r *retryingProvider) Close() {
	if c, ok := r.inner.(interface{ Close() }); ok {
		c.Close()
	}
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, append(args, slog.String(logging.FieldProvider, r.name))...)
	}
}
