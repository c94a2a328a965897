package poller

import (
	"testing"
	"time"

	"football-lines-service/internal/domain"
)

var cadenceNow = time.Date(2024, 9, 8, 12, 0, 0, 0, time.UTC)

func defaultCadence() Cadence {
	return Cadence{Min: 30 * time.Second, Max: 15 * time.Minute}
}

func TestCadenceEmptySlateIsIdle(t *testing.T) {
	if got := defaultCadence().Next(nil, cadenceNow); got != idleInterval {
		t.Errorf("Next = %s, want %s", got, idleInterval)
	}
}

func TestCadenceAllFinalIsIdle(t *testing.T) {
	games := []domain.Game{
		{Status: domain.StatusFinal},
		{Status: domain.StatusCanceled},
	}
	if got := defaultCadence().Next(games, cadenceNow); got != idleInterval {
		t.Errorf("Next = %s, want %s", got, idleInterval)
	}
}

func TestCadenceKickoffDistance(t *testing.T) {
	far := domain.Game{Status: domain.StatusScheduled, Kickoff: cadenceNow.Add(5 * time.Hour)}
	near := domain.Game{Status: domain.StatusScheduled, Kickoff: cadenceNow.Add(30 * time.Minute)}

	if got := defaultCadence().Next([]domain.Game{far}, cadenceNow); got != preKickoffInterval {
		t.Errorf("far kickoff Next = %s, want %s", got, preKickoffInterval)
	}
	if got := defaultCadence().Next([]domain.Game{far, near}, cadenceNow); got != nearKickoffInterval {
		t.Errorf("near kickoff Next = %s, want %s", got, nearKickoffInterval)
	}
}

func TestCadenceLiveGameBeatsScheduled(t *testing.T) {
	games := []domain.Game{
		{Status: domain.StatusScheduled, Kickoff: cadenceNow.Add(5 * time.Hour)},
		{Status: domain.StatusInProgress, Period: 3},
	}
	if got := defaultCadence().Next(games, cadenceNow); got != liveInterval {
		t.Errorf("Next = %s, want %s", got, liveInterval)
	}
}

func TestCadenceHalftimeWindowPollsHardest(t *testing.T) {
	cases := []domain.Game{
		{Status: domain.StatusHalftime},
		{Status: domain.StatusInProgress, Period: 2, Clock: "3:27"},
		{Status: domain.StatusInProgress, Period: 2, Clock: "0:00"},
	}
	for _, g := range cases {
		if got := defaultCadence().Next([]domain.Game{g}, cadenceNow); got != halftimeInterval {
			t.Errorf("game %+v: Next = %s, want %s", g, got, halftimeInterval)
		}
	}

	early := domain.Game{Status: domain.StatusInProgress, Period: 2, Clock: "12:40"}
	if got := defaultCadence().Next([]domain.Game{early}, cadenceNow); got != liveInterval {
		t.Errorf("early second quarter Next = %s, want %s", got, liveInterval)
	}
}

func TestCadenceClampsToBounds(t *testing.T) {
	c := Cadence{Min: time.Minute, Max: 5 * time.Minute}

	halftime := []domain.Game{{Status: domain.StatusHalftime}}
	if got := c.Next(halftime, cadenceNow); got != time.Minute {
		t.Errorf("clamped min = %s", got)
	}
	if got := c.Next(nil, cadenceNow); got != 5*time.Minute {
		t.Errorf("clamped max = %s", got)
	}
}

func TestParseClock(t *testing.T) {
	if d, ok := parseClock("4:32"); !ok || d != 4*time.Minute+32*time.Second {
		t.Errorf("parseClock(4:32) = %s, %v", d, ok)
	}
	if _, ok := parseClock(""); ok {
		t.Error("empty clock parsed")
	}
	if _, ok := parseClock("half"); ok {
		t.Error("junk clock parsed")
	}
}
