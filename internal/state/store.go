package state

import (
	"context"

	"football-lines-service/internal/domain"
)

// Store remembers which sheet work has already been done so tasks stay
// idempotent across restarts: prefilled rows, the last live line written per
// game, and one-shot markers for halftime and final scores.
type Store interface {
	// SeenRow reports whether a game row has been prefilled.
	SeenRow(ctx context.Context, key string) (bool, error)
	// MarkRow records that a game row has been prefilled.
	MarkRow(ctx context.Context, key string) error

	// LastLive returns the fingerprint of the last live line written for a
	// game, or "" when none has been written.
	LastLive(ctx context.Context, key string) (string, error)
	// SetLastLive records the fingerprint of the live line just written.
	SetLastLive(ctx context.Context, key, fingerprint string) error

	// MarkHalftime marks the halftime snapshot done for a game and reports
	// whether this call was the first to do so.
	MarkHalftime(ctx context.Context, key string) (bool, error)
	// MarkFinal marks the final score written for a game and reports whether
	// this call was the first to do so.
	MarkFinal(ctx context.Context, key string) (bool, error)
}

// GameKey namespaces a state key by league so the two slates never collide.
func GameKey(league domain.League, key string) string {
	return string(league) + ":" + key
}
