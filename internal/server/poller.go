package server

import (
	"context"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/poller"
)

// Pollers defines the minimal poll-loop behavior the server needs.
type Pollers interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Statuses() map[domain.League]poller.Status
	Ready() bool
}
