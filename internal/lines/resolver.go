package lines

import (
	"context"
	"log/slog"
	"time"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/logging"
	"football-lines-service/internal/metrics"
	"football-lines-service/internal/providers"
)

// Resolver merges betting lines from multiple sources. Sources are tried in
// priority order and each market (spread, total, moneyline) is resolved
// independently, so a source that only carries totals still contributes.
//
// Everything here is best effort: a source error is logged and skipped, and
// a resolver that finds nothing returns a zero Line so the caller can skip
// the write.
type Resolver struct {
	sources []providers.LineProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewResolver builds a Resolver that consults sources in the given order.
func NewResolver(logger *slog.Logger, recorder *metrics.Recorder, sources ...providers.LineProvider) *Resolver {
	return &Resolver{
		sources: sources,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Resolve returns the merged line for a game. The returned line's Source
// names the source that won the spread market (the headline number).
func (r *Resolver) Resolve(ctx context.Context, game domain.Game) domain.Line {
	merged := domain.Line{CapturedAt: r.now()}

	for _, src := range r.sources {
		if merged.Spread != nil && merged.Total != nil && merged.HomeMoneyline != nil && merged.AwayMoneyline != nil {
			break
		}

		start := time.Now()
		candidate, err := src.FetchLines(ctx, game)
		r.metrics.RecordProviderAttempt(src.Name(), time.Since(start), err)
		if err != nil {
			r.logWarn(ctx, "line source failed", game, src.Name(), slog.Any("error", err))
			continue
		}
		if candidate.Empty() {
			continue
		}

		r.mergeSpread(ctx, &merged, candidate, game, src.Name())
		r.mergeTotal(ctx, &merged, candidate, game, src.Name())
		mergeMoneylines(&merged, candidate)
	}

	return merged
}

func (r *Resolver) mergeSpread(ctx context.Context, merged *domain.Line, candidate domain.Line, game domain.Game, source string) {
	if candidate.Spread == nil {
		return
	}
	if !saneSpread(*candidate.Spread) {
		r.logWarn(ctx, "dropping insane spread", game, source, slog.Float64("spread", *candidate.Spread))
		return
	}
	if merged.Spread == nil {
		spread := *candidate.Spread
		merged.Spread = &spread
		merged.Source = source
		return
	}
	if abs(*merged.Spread-*candidate.Spread) > spreadDisagreement {
		r.logWarn(ctx, "spread sources disagree", game, source,
			slog.Float64("accepted", *merged.Spread),
			slog.Float64("candidate", *candidate.Spread),
			slog.String("accepted_source", merged.Source),
		)
	}
}

func (r *Resolver) mergeTotal(ctx context.Context, merged *domain.Line, candidate domain.Line, game domain.Game, source string) {
	if candidate.Total == nil {
		return
	}
	if !saneTotal(*candidate.Total) {
		r.logWarn(ctx, "dropping insane total", game, source, slog.Float64("total", *candidate.Total))
		return
	}
	if merged.Total == nil {
		total := *candidate.Total
		merged.Total = &total
		return
	}
	if abs(*merged.Total-*candidate.Total) > totalDisagreement {
		r.logWarn(ctx, "total sources disagree", game, source,
			slog.Float64("accepted", *merged.Total),
			slog.Float64("candidate", *candidate.Total),
		)
	}
}

func mergeMoneylines(merged *domain.Line, candidate domain.Line) {
	if merged.HomeMoneyline == nil && candidate.HomeMoneyline != nil && saneMoneyline(*candidate.HomeMoneyline) {
		ml := *candidate.HomeMoneyline
		merged.HomeMoneyline = &ml
	}
	if merged.AwayMoneyline == nil && candidate.AwayMoneyline != nil && saneMoneyline(*candidate.AwayMoneyline) {
		ml := *candidate.AwayMoneyline
		merged.AwayMoneyline = &ml
	}
}

func (r *Resolver) logWarn(ctx context.Context, msg string, game domain.Game, source string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger == nil {
		return
	}
	base := []any{
		slog.String(logging.FieldGame, game.Key()),
		slog.String(logging.FieldSource, source),
	}
	logger.Warn(msg, append(base, args...)...)
}
