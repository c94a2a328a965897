package tasks

import (
	"context"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/sheet"
	"football-lines-service/internal/state"
	"football-lines-service/internal/timeutil"
)

// Prefill creates a sheet row for every game on the slate that does not have
// one yet, with the matchup identity and the opening line. Rows are written
// once; the opening numbers are never revisited. The updates are create-only,
// so a row already in the sheet stays untouched even when the state store
// lost its markers across a restart.
func (r *Runner) Prefill(ctx context.Context, slate domain.Slate) (int, error) {
	var updates []sheet.RowUpdate
	var marked []string

	for _, game := range slate.Games {
		stateKey := state.GameKey(slate.League, game.Key())
		seen, err := r.state.SeenRow(ctx, stateKey)
		if err != nil {
			return 0, err
		}
		if seen {
			continue
		}

		update := sheet.RowUpdate{Key: game.Key(), CreateOnly: true}
		update.Set(sheet.ColDate, timeutil.FormatDate(game.Kickoff.UTC()))
		update.Set(sheet.ColKickoff, game.Kickoff.UTC().Format("15:04"))
		update.Set(sheet.ColAway, teamCell(game.AwayTeam))
		update.Set(sheet.ColHome, teamCell(game.HomeTeam))
		update.Set(sheet.ColStatus, string(game.Status))

		line := r.resolver.Resolve(ctx, game)
		update.Set(sheet.ColOpenSpread, sheet.FormatSpread(line.Spread))
		update.Set(sheet.ColOpenTotal, sheet.FormatTotal(line.Total))
		update.Set(sheet.ColAwayML, sheet.FormatMoneyline(line.AwayMoneyline))
		update.Set(sheet.ColHomeML, sheet.FormatMoneyline(line.HomeMoneyline))
		r.touch(&update)

		updates = append(updates, update)
		marked = append(marked, stateKey)
	}

	if len(updates) == 0 {
		return 0, nil
	}
	if err := r.sheet.Upsert(ctx, slate.League, updates); err != nil {
		return 0, err
	}
	for _, key := range marked {
		if err := r.state.MarkRow(ctx, key); err != nil {
			return len(updates), err
		}
	}
	return len(updates), nil
}

// teamCell renders a team for the sheet, prefixing a top-25 rank when known.
func teamCell(t domain.Team) string {
	name := t.Abbreviation
	if name == "" {
		name = t.Name
	}
	if t.Rank > 0 {
		return "#" + scoreCell(t.Rank) + " " + name
	}
	return name
}
