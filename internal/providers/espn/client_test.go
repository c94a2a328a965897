package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/providers"
)

const scoreboardBody = `{
  "events": [
    {
      "id": "401547439",
      "date": "2024-09-08T17:00Z",
      "shortName": "BUF @ KC",
      "status": {"period": 2, "displayClock": "0:00", "type": {"name": "STATUS_HALFTIME", "state": "in", "description": "Halftime"}},
      "competitions": [{
        "competitors": [
          {"homeAway": "home", "score": "14", "team": {"id": "12", "abbreviation": "KC", "displayName": "Kansas City Chiefs"}},
          {"homeAway": "away", "score": "10", "team": {"id": "2", "abbreviation": "BUF", "displayName": "Buffalo Bills"}}
        ],
        "odds": [{"details": "KC -3.5", "overUnder": 47.5, "spread": -3.5}]
      }]
    }
  ]
}`

const summaryBody = `{
  "pickcenter": [
    {"provider": {"id": "58", "name": "Book A"}, "details": "KC -4.5", "overUnder": 48.0, "spread": -4.5,
     "homeTeamOdds": {"favorite": true, "moneyLine": -210}, "awayTeamOdds": {"moneyLine": 175}}
  ]
}`

func TestFetchGames(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scoreboardBody))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	games, err := c.FetchGames(context.Background(), domain.LeagueNFL, "2024-09-08")
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}

	if gotPath != "/football/nfl/scoreboard" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "dates=20240908&limit=300" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(games) != 1 {
		t.Fatalf("games = %d, want 1", len(games))
	}
	g := games[0]
	if g.Status != domain.StatusHalftime {
		t.Errorf("Status = %q", g.Status)
	}
	if g.Score.Home != 14 || g.Score.Away != 10 {
		t.Errorf("Score = %+v", g.Score)
	}
	if g.Line.Spread == nil || *g.Line.Spread != -3.5 {
		t.Errorf("Spread = %v", g.Line.Spread)
	}
}

func TestFetchGamesCollegeAddsGroups(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"events": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	if _, err := c.FetchGames(context.Background(), domain.LeagueCollege, "2024-09-07"); err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	if gotQuery != "dates=20240907&groups=80&limit=300" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestFetchGamesDefaultsDateToToday(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"events": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	c.now = func() time.Time { return time.Date(2024, 10, 6, 12, 0, 0, 0, time.UTC) }

	if _, err := c.FetchGames(context.Background(), domain.LeagueNFL, ""); err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	if gotQuery != "dates=20241006&limit=300" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestFetchGamesRejectsUnknownLeague(t *testing.T) {
	c := NewClient(Config{})
	if _, err := c.FetchGames(context.Background(), domain.League("hockey"), ""); err == nil {
		t.Fatal("expected error for unknown league")
	}
}

func TestFetchGamesRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.FetchGames(context.Background(), domain.LeagueNFL, "2024-09-08")
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rl.RetryAfter != 30*time.Second {
		t.Errorf("RetryAfter = %v", rl.RetryAfter)
	}
}

func TestFetchGamesNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream sad", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	if _, err := c.FetchGames(context.Background(), domain.LeagueNFL, "2024-09-08"); err == nil {
		t.Fatal("expected error for 502")
	}
}

func TestFetchLines(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(summaryBody))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	game := domain.Game{
		ID:       "401547439",
		League:   domain.LeagueNFL,
		HomeTeam: domain.Team{Abbreviation: "KC"},
		AwayTeam: domain.Team{Abbreviation: "BUF"},
	}

	line, err := c.FetchLines(context.Background(), game)
	if err != nil {
		t.Fatalf("FetchLines: %v", err)
	}
	if gotPath != "/football/nfl/summary" || gotQuery != "event=401547439" {
		t.Errorf("request = %q?%q", gotPath, gotQuery)
	}
	if line.Spread == nil || *line.Spread != -4.5 {
		t.Errorf("Spread = %v", line.Spread)
	}
	if line.Total == nil || *line.Total != 48.0 {
		t.Errorf("Total = %v", line.Total)
	}
	if line.HomeMoneyline == nil || *line.HomeMoneyline != -210 {
		t.Errorf("HomeMoneyline = %v", line.HomeMoneyline)
	}
	if line.Source != summarySourceName {
		t.Errorf("Source = %q", line.Source)
	}
}

func TestFetchLinesEmptyPickcenter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"pickcenter": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	line, err := c.FetchLines(context.Background(), domain.Game{ID: "1", League: domain.LeagueNFL})
	if err != nil {
		t.Fatalf("FetchLines: %v", err)
	}
	if !line.Empty() {
		t.Errorf("expected empty line, got %+v", line)
	}
}
