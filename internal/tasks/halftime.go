package tasks

import (
	"context"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/sheet"
	"football-lines-service/internal/state"
)

// Halftime captures the score at the intermission, once per game. The state
// marker wins the race before the write, so a crashed cycle may lose one
// snapshot but never writes it twice.
func (r *Runner) Halftime(ctx context.Context, slate domain.Slate) (int, error) {
	var updates []sheet.RowUpdate

	for _, game := range slate.Games {
		if !game.AtHalftime() {
			continue
		}

		first, err := r.state.MarkHalftime(ctx, state.GameKey(slate.League, game.Key()))
		if err != nil {
			return 0, err
		}
		if !first {
			continue
		}

		update := sheet.RowUpdate{Key: game.Key()}
		update.Set(sheet.ColStatus, string(domain.StatusHalftime))
		update.Set(sheet.ColHalfAway, scoreCell(game.Score.Away))
		update.Set(sheet.ColHalfHome, scoreCell(game.Score.Home))
		r.touch(&update)
		updates = append(updates, update)
	}

	if len(updates) == 0 {
		return 0, nil
	}
	if err := r.sheet.Upsert(ctx, slate.League, updates); err != nil {
		return 0, err
	}
	return len(updates), nil
}
