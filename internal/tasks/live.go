package tasks

import (
	"context"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/sheet"
	"football-lines-service/internal/state"
)

// LiveOdds refreshes the live spread and total for in-progress games. A row
// is only written when the resolved line differs from the last one written,
// so a quiet game costs nothing.
func (r *Runner) LiveOdds(ctx context.Context, slate domain.Slate) (int, error) {
	var updates []sheet.RowUpdate
	type pending struct {
		key         string
		fingerprint string
	}
	var fingerprints []pending

	for _, game := range slate.Games {
		if game.Status != domain.StatusInProgress && game.Status != domain.StatusHalftime {
			continue
		}

		line := r.resolver.Resolve(ctx, game)
		if line.Spread == nil && line.Total == nil {
			continue
		}

		stateKey := state.GameKey(slate.League, game.Key())
		last, err := r.state.LastLive(ctx, stateKey)
		if err != nil {
			return 0, err
		}
		fp := line.Fingerprint()
		if fp == last {
			continue
		}

		update := sheet.RowUpdate{Key: game.Key()}
		update.Set(sheet.ColStatus, string(game.Status))
		if line.Spread != nil {
			update.Set(sheet.ColLiveSpread, sheet.FormatSpread(line.Spread))
		}
		if line.Total != nil {
			update.Set(sheet.ColLiveTotal, sheet.FormatTotal(line.Total))
		}
		r.touch(&update)

		updates = append(updates, update)
		fingerprints = append(fingerprints, pending{key: stateKey, fingerprint: fp})
	}

	if len(updates) == 0 {
		return 0, nil
	}
	if err := r.sheet.Upsert(ctx, slate.League, updates); err != nil {
		return 0, err
	}
	for _, p := range fingerprints {
		if err := r.state.SetLastLive(ctx, p.key, p.fingerprint); err != nil {
			return len(updates), err
		}
	}
	return len(updates), nil
}
