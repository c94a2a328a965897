package snapshots

import (
	"fmt"
	"path/filepath"

	"football-lines-service/internal/domain"
)

// SlateSnapshotPath builds the path to a league's slate snapshot for a date.
func SlateSnapshotPath(basePath string, league domain.League, date string) string {
	return filepath.Join(basePath, "lines", string(league), fmt.Sprintf("%s.json", date))
}
