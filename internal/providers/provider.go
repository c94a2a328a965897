package providers

import (
	"context"

	"football-lines-service/internal/domain"
)

// GameProvider defines how upstream scoreboard data is fetched and normalized.
// The date parameter, when provided, should be a YYYY-MM-DD string indicating
// which day's games to fetch. Providers interpret an empty date as "today".
type GameProvider interface {
	FetchGames(ctx context.Context, league domain.League, date string) ([]domain.Game, error)
}

// LineProvider fetches a betting line for a single game from one source.
// Implementations return a zero Line (not an error) when the source simply
// has no odds for the matchup.
type LineProvider interface {
	Name() string
	FetchLines(ctx context.Context, game domain.Game) (domain.Line, error)
}
