package poller

import (
	"context"
	"testing"
	"time"

	"football-lines-service/internal/domain"
)

func BenchmarkPollerCycle(b *testing.B) {
	provider := &stubProvider{games: []domain.Game{
		{
			ID:       "bench-game",
			League:   domain.LeagueNFL,
			HomeTeam: domain.Team{Abbreviation: "KC"},
			AwayTeam: domain.Team{Abbreviation: "BUF"},
			Kickoff:  time.Date(2024, 9, 8, 17, 0, 0, 0, time.UTC),
			Status:   domain.StatusFinal,
			Score:    domain.Score{Home: 27, Away: 20},
		},
	}}
	p := testPoller(provider, &stubSyncer{}, nil)
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.cycle(ctx)
	}
}
