package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/timeutil"
)

// Writer persists slate snapshots and the manifest with pruning. Snapshots
// are an audit trail of what the pollers saw; the sheet stays the source of
// record for what was written.
type Writer struct {
	mu            sync.Mutex
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// WriteSlateSnapshot writes the slate for the given date (YYYY-MM-DD) and
// prunes snapshots past the retention window. Unchanged content is not
// rewritten. Both league pollers share one writer, so this serializes.
func (w *Writer) WriteSlateSnapshot(date string, slate domain.Slate) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if date == "" {
		return fmt.Errorf("date required")
	}
	if !slate.League.Valid() {
		return fmt.Errorf("unknown league %q", slate.League)
	}
	if slate.Date == "" {
		slate.Date = date
	}
	sort.Slice(slate.Games, func(i, j int) bool {
		return slate.Games[i].ID < slate.Games[j].ID
	})

	w.mu.Lock()
	defer w.mu.Unlock()

	target := SlateSnapshotPath(w.basePath, slate.League, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(slate, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(slate.League, date)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(slate.League, date)
}

func (w *Writer) updateManifest(league domain.League, date string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)

	dates, err := w.listDates(league)
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}
	pruned, err := w.pruneOldSnapshots(league, dates)
	if err != nil {
		return err
	}

	m.Leagues[string(league)] = LeagueMeta{
		Dates:         pruned,
		LastRefreshed: time.Now().UTC(),
	}
	m.Retention.LinesDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates(league domain.League) ([]string, error) {
	dir := filepath.Join(w.basePath, "lines", string(league))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var dates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(league domain.League, dates []string) ([]string, error) {
	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(SlateSnapshotPath(w.basePath, league, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep, nil
}
