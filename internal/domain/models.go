package domain

import (
	"fmt"
	"strings"
	"time"
)

// League identifies one of the tracked football leagues.
type League string

const (
	LeagueNFL     League = "nfl"
	LeagueCollege League = "college-football"
)

// APIPath returns the league segment used by the upstream site API.
func (l League) APIPath() string {
	return "football/" + string(l)
}

// Valid reports whether the league is one we track.
func (l League) Valid() bool {
	return l == LeagueNFL || l == LeagueCollege
}

// ParseLeague maps a configured league name to a League.
func ParseLeague(raw string) (League, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "nfl":
		return LeagueNFL, nil
	case "college-football", "ncaaf", "cfb":
		return LeagueCollege, nil
	default:
		return "", fmt.Errorf("unknown league %q", raw)
	}
}

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusHalftime   GameStatus = "HALFTIME"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusCanceled   GameStatus = "CANCELED"
)

// Terminal reports whether a game in this status will not change again.
func (s GameStatus) Terminal() bool {
	return s == StatusFinal || s == StatusCanceled
}

// rank orders statuses so a stored game never moves backwards.
func (s GameStatus) rank() int {
	switch s {
	case StatusScheduled:
		return 0
	case StatusInProgress:
		return 1
	case StatusHalftime:
		return 2
	case StatusFinal, StatusPostponed, StatusCanceled:
		return 3
	default:
		return 0
	}
}

// Before reports whether s precedes other in the game lifecycle.
func (s GameStatus) Before(other GameStatus) bool {
	return s.rank() < other.rank()
}

// Team represents the normalized team shape.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Rank         int    `json:"rank,omitempty"`
}

// Score captures home and away points.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Line is a betting line captured from one source at one moment.
// Spread is home-relative: negative means the home team is favored.
// Nil fields mean the source did not carry that market.
type Line struct {
	Spread        *float64  `json:"spread,omitempty"`
	Total         *float64  `json:"total,omitempty"`
	HomeMoneyline *int      `json:"homeMoneyline,omitempty"`
	AwayMoneyline *int      `json:"awayMoneyline,omitempty"`
	Source        string    `json:"source,omitempty"`
	CapturedAt    time.Time `json:"capturedAt,omitempty"`
}

// Empty reports whether the line carries no market at all.
func (l Line) Empty() bool {
	return l.Spread == nil && l.Total == nil && l.HomeMoneyline == nil && l.AwayMoneyline == nil
}

// Fingerprint is a compact change-detection key over the line's markets.
func (l Line) Fingerprint() string {
	var b strings.Builder
	if l.Spread != nil {
		fmt.Fprintf(&b, "s%.1f", *l.Spread)
	}
	if l.Total != nil {
		fmt.Fprintf(&b, "|t%.1f", *l.Total)
	}
	if l.HomeMoneyline != nil {
		fmt.Fprintf(&b, "|h%d", *l.HomeMoneyline)
	}
	if l.AwayMoneyline != nil {
		fmt.Fprintf(&b, "|a%d", *l.AwayMoneyline)
	}
	return b.String()
}

// Game is the canonical game shape used across the service.
type Game struct {
	ID       string     `json:"id"`
	League   League     `json:"league"`
	HomeTeam Team       `json:"homeTeam"`
	AwayTeam Team       `json:"awayTeam"`
	Kickoff  time.Time  `json:"kickoff"`
	Status   GameStatus `json:"status"`
	Period   int        `json:"period"`
	Clock    string     `json:"clock"`
	Score    Score      `json:"score"`
	Line     Line       `json:"line"`
}

// Key returns the stable row key used to locate this game in the sheet.
// It survives provider id churn because it is built from the matchup.
func (g Game) Key() string {
	return fmt.Sprintf("%s-%s-%s",
		g.Kickoff.UTC().Format("20060102"),
		strings.ToUpper(g.AwayTeam.Abbreviation),
		strings.ToUpper(g.HomeTeam.Abbreviation))
}

// Matchup renders the game as "AWAY @ HOME".
func (g Game) Matchup() string {
	return fmt.Sprintf("%s @ %s", g.AwayTeam.Abbreviation, g.HomeTeam.Abbreviation)
}

// AtHalftime reports whether the game is sitting at the intermission.
// Some feeds never flip to an explicit halftime status, so end of the
// second period with an expired clock counts too.
func (g Game) AtHalftime() bool {
	if g.Status == StatusHalftime {
		return true
	}
	if g.Status != StatusInProgress {
		return false
	}
	return g.Period == 2 && (g.Clock == "0:00" || g.Clock == "0.0" || g.Clock == "")
}

// Slate is the set of games polled for one league on one date.
type Slate struct {
	Date   string `json:"date"`
	League League `json:"league"`
	Games  []Game `json:"games"`
}

// NewSlate builds a Slate, never leaving Games nil.
func NewSlate(date string, league League, games []Game) Slate {
	if games == nil {
		games = []Game{}
	}
	return Slate{Date: date, League: league, Games: games}
}
