package state

import (
	"context"
	"testing"

	"football-lines-service/internal/domain"
)

func TestMemoryStoreRows(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	seen, err := s.SeenRow(ctx, "nfl:20240908-BUF-KC")
	if err != nil || seen {
		t.Fatalf("SeenRow before mark = %v, %v", seen, err)
	}

	if err := s.MarkRow(ctx, "nfl:20240908-BUF-KC"); err != nil {
		t.Fatalf("MarkRow: %v", err)
	}

	seen, _ = s.SeenRow(ctx, "nfl:20240908-BUF-KC")
	if !seen {
		t.Error("SeenRow after mark = false")
	}
	seen, _ = s.SeenRow(ctx, "nfl:20240908-DAL-PHI")
	if seen {
		t.Error("unrelated key reported seen")
	}
}

func TestMemoryStoreLiveFingerprint(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	got, _ := s.LastLive(ctx, "k")
	if got != "" {
		t.Errorf("LastLive before write = %q", got)
	}

	if err := s.SetLastLive(ctx, "k", "-3.5|47.5"); err != nil {
		t.Fatalf("SetLastLive: %v", err)
	}
	got, _ = s.LastLive(ctx, "k")
	if got != "-3.5|47.5" {
		t.Errorf("LastLive = %q", got)
	}
}

func TestMemoryStoreOneShotMarkers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := s.MarkHalftime(ctx, "k")
	if err != nil || !first {
		t.Fatalf("first MarkHalftime = %v, %v", first, err)
	}
	first, _ = s.MarkHalftime(ctx, "k")
	if first {
		t.Error("second MarkHalftime reported first")
	}

	first, _ = s.MarkFinal(ctx, "k")
	if !first {
		t.Error("first MarkFinal = false")
	}
	first, _ = s.MarkFinal(ctx, "k")
	if first {
		t.Error("second MarkFinal reported first")
	}
}

func TestGameKeyNamespacesByLeague(t *testing.T) {
	nfl := GameKey(domain.LeagueNFL, "20240908-BUF-KC")
	cfb := GameKey(domain.LeagueCollege, "20240908-BUF-KC")
	if nfl == cfb {
		t.Errorf("keys collide: %q", nfl)
	}
	if nfl != "nfl:20240908-BUF-KC" {
		t.Errorf("nfl key = %q", nfl)
	}
}
