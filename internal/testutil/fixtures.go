package testutil

import (
	"time"

	"football-lines-service/internal/domain"
)

// Kickoff is the fixed kickoff time fixtures use.
var Kickoff = MustParseRFC3339("2024-09-08T17:00:00Z")

// SampleGame returns a minimal game fixture with the provided id.
func SampleGame(id string, status domain.GameStatus) domain.Game {
	return domain.Game{
		ID:       id,
		League:   domain.LeagueNFL,
		HomeTeam: domain.Team{ID: "12", Name: "Kansas City Chiefs", Abbreviation: "KC"},
		AwayTeam: domain.Team{ID: "2", Name: "Buffalo Bills", Abbreviation: "BUF"},
		Kickoff:  Kickoff,
		Status:   status,
	}
}

// SampleSlate builds a one-game slate for the fixture date.
func SampleSlate(status domain.GameStatus) domain.Slate {
	return domain.NewSlate(Kickoff.Format(time.DateOnly), domain.LeagueNFL, []domain.Game{
		SampleGame("401671698", status),
	})
}
