package tasks

import (
	"context"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/sheet"
	"football-lines-service/internal/state"
)

// Finals writes the final score for games that have ended, once per game.
// Postponed and canceled games get their status recorded without scores.
func (r *Runner) Finals(ctx context.Context, slate domain.Slate) (int, error) {
	var updates []sheet.RowUpdate

	for _, game := range slate.Games {
		if !game.Status.Terminal() && game.Status != domain.StatusPostponed {
			continue
		}

		first, err := r.state.MarkFinal(ctx, state.GameKey(slate.League, game.Key()))
		if err != nil {
			return 0, err
		}
		if !first {
			continue
		}

		update := sheet.RowUpdate{Key: game.Key()}
		update.Set(sheet.ColStatus, string(game.Status))
		if game.Status == domain.StatusFinal {
			update.Set(sheet.ColFinalAway, scoreCell(game.Score.Away))
			update.Set(sheet.ColFinalHome, scoreCell(game.Score.Home))
		}
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
