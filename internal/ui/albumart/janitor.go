package albumart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Janitor removes temp files left behind by a graphics protocol.
type Janitor struct {
	// Dir is the directory to sweep. Defaults to os.TempDir().
	Dir string
	// Marker is matched against the full path of each file. An empty marker
	// disables sweeping.
	Marker string
}

// SweepStats reports what a sweep removed.
type SweepStats struct {
	Removed int
	Bytes   int64
}

// Sweep deletes the regular files of Dir whose path contains Marker.
// Files that vanish concurrently are ignored; other failures are returned
// after the sweep completes.
func (j Janitor) Sweep() (SweepStats, error) {
	var stats SweepStats
	if j.Marker == "" {
		return stats, nil
	}

	dir := j.Dir
	if dir == "" {
		dir = os.TempDir()
	}

	g, err := glob.Compile("*" + glob.QuoteMeta(j.Marker) + "*")
	if err != nil {
		return stats, fmt.Errorf("compile marker %q: %w", j.Marker, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return stats, fmt.Errorf("read temp dir: %w", err)
	}

	var errs []error
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !g.Match(path) {
			continue
		}

		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}

		if err := os.Remove(path); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, fmt.Errorf("remove %s: %w", path, err))
			}
			continue
		}
		stats.Removed++
		stats.Bytes += size
	}

	return stats, errors.Join(errs...)
}
