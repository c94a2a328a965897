package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"football-lines-service/internal/domain"
)

const scrapePage = `<html><body>
<table>
  <thead><tr><th>Game</th><th>Spread</th><th>Total</th></tr></thead>
  <tbody>
    <tr><td>BUF @ KC</td><td>BUF -1.5</td><td>47.5</td></tr>
  </tbody>
</table>
</body></html>`

func testGame() domain.Game {
	return domain.Game{
		ID:       "1",
		League:   domain.LeagueNFL,
		HomeTeam: domain.Team{Abbreviation: "KC"},
		AwayTeam: domain.Team{Abbreviation: "BUF"},
	}
}

func TestFetchLinesFlipsAwayFavoriteSpread(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nfl" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(scrapePage))
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL})
	line, err := s.FetchLines(context.Background(), testGame())
	if err != nil {
		t.Fatalf("FetchLines: %v", err)
	}

	// BUF -1.5 with BUF away means the home team is a 1.5 underdog.
	if line.Spread == nil || *line.Spread != 1.5 {
		t.Errorf("Spread = %v, want 1.5", line.Spread)
	}
	if line.Total == nil || *line.Total != 47.5 {
		t.Errorf("Total = %v", line.Total)
	}
	if line.Source != sourceName {
		t.Errorf("Source = %q", line.Source)
	}
}

func TestFetchLinesCachesPagePerLeague(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(scrapePage))
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL})
	for i := 0; i < 3; i++ {
		if _, err := s.FetchLines(context.Background(), testGame()); err != nil {
			t.Fatalf("FetchLines: %v", err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("page fetched %d times, want 1", got)
	}

	// Advance past the cache TTL and expect a refetch.
	base := time.Now()
	s.now = func() time.Time { return base.Add(pageCacheTTL + time.Second) }
	if _, err := s.FetchLines(context.Background(), testGame()); err != nil {
		t.Fatalf("FetchLines: %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("page fetched %d times after TTL, want 2", got)
	}
}

func TestFetchLinesUnknownMatchup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(scrapePage))
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL})
	game := testGame()
	game.HomeTeam.Abbreviation = "PHI"
	game.AwayTeam.Abbreviation = "DAL"

	line, err := s.FetchLines(context.Background(), game)
	if err != nil {
		t.Fatalf("FetchLines: %v", err)
	}
	if !line.Empty() {
		t.Errorf("expected empty line, got %+v", line)
	}
}

func TestFetchLinesDisabledWithoutBaseURL(t *testing.T) {
	s := New(Config{})
	line, err := s.FetchLines(context.Background(), testGame())
	if err != nil {
		t.Fatalf("FetchLines: %v", err)
	}
	if !line.Empty() {
		t.Errorf("expected empty line, got %+v", line)
	}
}

func TestFetchLinesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL})
	if _, err := s.FetchLines(context.Background(), testGame()); err == nil {
		t.Fatal("expected error for 403")
	}
}
