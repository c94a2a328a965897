package poller

import (
	"context"
	"sync"

	"football-lines-service/internal/domain"
)

// Orchestrator runs one Poller per configured league and stops them together.
type Orchestrator struct {
	pollers []*Poller
	wg      sync.WaitGroup
}

// NewOrchestrator groups pollers for lifecycle management.
func NewOrchestrator(pollers ...*Poller) *Orchestrator {
	return &Orchestrator{pollers: pollers}
}

// Start launches every poller.
func (o *Orchestrator) Start(ctx context.Context) {
	for _, p := range o.pollers {
		p.Start(ctx)
	}
}

// Stop halts every poller and waits for them to acknowledge.
func (o *Orchestrator) Stop(ctx context.Context) error {
	for _, p := range o.pollers {
		o.wg.Add(1)
		go func(p *Poller) {
			defer o.wg.Done()
			_ = p.Stop(ctx)
		}(p)
	}
	o.wg.Wait()
	return nil
}

// Statuses returns the current health of every poller, keyed by league.
func (o *Orchestrator) Statuses() map[domain.League]Status {
	out := make(map[domain.League]Status, len(o.pollers))
	for _, p := range o.pollers {
		out[p.League()] = p.Status()
	}
	return out
}

// Ready reports whether every poller has had a recent success.
func (o *Orchestrator) Ready() bool {
	if len(o.pollers) == 0 {
		return false
	}
	for _, p := range o.pollers {
		if !p.Status().IsReady() {
			return false
		}
	}
	return true
}
