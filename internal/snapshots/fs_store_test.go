package snapshots

import (
	"errors"
	"testing"
	"time"

	"football-lines-service/internal/domain"
)

func TestFSStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	date := time.Now().UTC().Format("2006-01-02")

	if err := w.WriteSlateSnapshot(date, testSlate(date)); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewFSStore(dir)
	got, err := store.LoadSlate(domain.LeagueNFL, date)
	if err != nil {
		t.Fatalf("LoadSlate: %v", err)
	}
	if got.Date != date || got.League != domain.LeagueNFL {
		t.Errorf("slate = %s/%s", got.Date, got.League)
	}
	if len(got.Games) != 1 || got.Games[0].HomeTeam.Abbreviation != "KC" {
		t.Errorf("games = %+v", got.Games)
	}

	m := store.Manifest()
	meta, ok := m.Leagues[string(domain.LeagueNFL)]
	if !ok || len(meta.Dates) != 1 || meta.Dates[0] != date {
		t.Errorf("manifest leagues = %+v", m.Leagues)
	}
}

func TestFSStoreMissingSnapshot(t *testing.T) {
	store := NewFSStore(t.TempDir())
	_, err := store.LoadSlate(domain.LeagueNFL, "2024-09-08")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
