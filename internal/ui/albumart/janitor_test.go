package albumart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJanitor_Sweep(t *testing.T) {
	dir := t.TempDir()
	files := map[string]int{
		"tty-graphics-protocol-123": 10,
		"tty-graphics-protocol-456": 5,
		"unrelated.png":             7,
	}
	for name, size := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tty-graphics-protocol-dir"), 0o755))

	stats, err := Janitor{Dir: dir, Marker: KittyTempMarker}.Sweep()
	require.NoError(t, err)
	assert.Equal(t, SweepStats{Removed: 2, Bytes: 15}, stats)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"unrelated.png", "tty-graphics-protocol-dir"}, names)
}

func TestJanitor_MarkerMatchesFullPath(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "cover-cache")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("x"), 0o600))

	stats, err := Janitor{Dir: dir, Marker: "cover-cache"}.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Removed)
}

func TestJanitor_MarkerIsLiteral(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a[1]b"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a1b"), nil, 0o600))

	stats, err := Janitor{Dir: dir, Marker: "a[1]b"}.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Removed)
	assert.FileExists(t, filepath.Join(dir, "a1b"))
}

func TestJanitor_EmptyMarkerIsNoop(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "anything"), nil, 0o600))

	stats, err := Janitor{Dir: dir}.Sweep()
	require.NoError(t, err)
	assert.Zero(t, stats)
	assert.FileExists(t, filepath.Join(dir, "anything"))
}

func TestJanitor_MissingDir(t *testing.T) {
	_, err := Janitor{Dir: filepath.Join(t.TempDir(), "gone"), Marker: KittyTempMarker}.Sweep()
	assert.Error(t, err)
}
