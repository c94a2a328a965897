package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"football-lines-service/internal/domain"
)

// ErrNotFound is returned when no snapshot exists for a league and date.
var ErrNotFound = errors.New("snapshot not found")

// Store defines how slate snapshots and their manifest are read back.
type Store interface {
	LoadSlate(league domain.League, date string) (domain.Slate, error)
	Manifest() Manifest
}

// FSStore loads slate snapshots from the filesystem. The admin API uses it
// to serve historical slates without touching upstream providers.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSlate reads the slate written for a league on a date (YYYY-MM-DD).
func (s *FSStore) LoadSlate(league domain.League, date string) (domain.Slate, error) {
	path := SlateSnapshotPath(s.basePath, league, date)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Slate{}, fmt.Errorf("%w: %s %s", ErrNotFound, league, date)
		}
		return domain.Slate{}, err
	}

	var slate domain.Slate
	if err := json.Unmarshal(data, &slate); err != nil {
		return domain.Slate{}, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if slate.Date == "" {
		slate.Date = date
	}
	if slate.Games == nil {
		slate.Games = []domain.Game{}
	}
	return slate, nil
}

// Manifest reads the snapshot manifest, or an empty one when none exists yet.
func (s *FSStore) Manifest() Manifest {
	m, _ := readManifest(filepath.Join(s.basePath, "manifest.json"), 0)
	return m
}
