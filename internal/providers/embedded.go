package providers

import (
	"context"

	"football-lines-service/internal/domain"
)

// EmbeddedLines serves the line already attached to the game during the
// scoreboard fetch. It is the cheapest source, so resolvers usually place
// it first in the priority order.
type EmbeddedLines struct{}

func (EmbeddedLines) Name() string { return "scoreboard" }

func (EmbeddedLines) FetchLines(ctx context.Context, game domain.Game) (domain.Line, error) {
	_ = ctx
	return game.Line, nil
}
