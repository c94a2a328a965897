package fixture

import (
	"context"
	"time"

	"football-lines-service/internal/domain"
)

// Provider returns a static slate useful for local runs against a test
// spreadsheet and for bootstrapping without upstream access.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// FetchGames returns a deterministic pair of games for the league.
func (p *Provider) FetchGames(ctx context.Context, league domain.League, date string) ([]domain.Game, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)
	if date != "" {
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			start = parsed.UTC().Add(17 * time.Hour)
		}
	}

	games := []domain.Game{
		{
			ID:       "fixture-1",
			League:   league,
			HomeTeam: domain.Team{ID: "12", Name: "Kansas City Chiefs", Abbreviation: "KC"},
			AwayTeam: domain.Team{ID: "2", Name: "Buffalo Bills", Abbreviation: "BUF"},
			Kickoff:  start.Add(2 * time.Hour),
			Status:   domain.StatusScheduled,
			Line: domain.Line{
				Spread:        floatPtr(-3.5),
				Total:         floatPtr(47.5),
				HomeMoneyline: intPtr(-180),
				AwayMoneyline: intPtr(155),
				Source:        "fixture",
				CapturedAt:    start,
			},
		},
		{
			ID:       "fixture-2",
			League:   league,
			HomeTeam: domain.Team{ID: "21", Name: "Philadelphia Eagles", Abbreviation: "PHI"},
			AwayTeam: domain.Team{ID: "6", Name: "Dallas Cowboys", Abbreviation: "DAL"},
			Kickoff:  start.Add(5 * time.Hour),
			Status:   domain.StatusScheduled,
			Line: domain.Line{
				Spread:     floatPtr(-6),
				Total:      floatPtr(51.5),
				Source:     "fixture",
				CapturedAt: start,
			},
		},
	}
	return games, nil
}

// Name identifies the fixture when used as a line source.
func (p *Provider) Name() string { return "fixture" }

// FetchLines echoes the line already on the game.
func (p *Provider) FetchLines(ctx context.Context, game domain.Game) (domain.Line, error) {
	_ = ctx
	return game.Line, nil
}
