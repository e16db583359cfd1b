package albumart

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName  = "nowplaying/covers"
	cacheMaxAge   = 30 * 24 * time.Hour // 30 days
	pruneInterval = 24 * time.Hour
)

// Cache keeps covers already cropped and scaled to a pixel box on disk, so
// repainting after a resize or restart skips the resampling.
type Cache struct {
	dir        string
	lastPruned time.Time
}

// NewCache creates a cache under baseDir, or under the XDG cache home when
// baseDir is empty.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = xdg.CacheHome
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cover cache: %w", err)
	}

	c := &Cache{dir: dir}

	go c.pruneOldEntries()

	return c, nil
}

// cacheKey generates a unique key for a cover URL at a pixel size.
func cacheKey(url string, width, height int) string {
	data := fmt.Sprintf("%s:%d:%d", url, width, height)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) path(url string, width, height int) string {
	return filepath.Join(c.dir, cacheKey(url, width, height)+".png")
}

// Get returns the cached cover for url at the given pixel size, or nil.
func (c *Cache) Get(url string, width, height int) image.Image {
	if c == nil {
		return nil
	}

	path := c.path(url, width, height)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		_ = os.Remove(path) //nolint:errcheck // corrupt entry, best-effort
		return nil
	}

	// Touch the file to update mtime (keeps frequently used entries fresh)
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort

	return img
}

// Put stores img for url at the given pixel size.
func (c *Cache) Put(url string, width, height int, img image.Image) error {
	if c == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode cover: %w", err)
	}
	return os.WriteFile(c.path(url, width, height), buf.Bytes(), 0o600)
}

// pruneOldEntries removes cache entries older than cacheMaxAge.
func (c *Cache) pruneOldEntries() {
	if c == nil {
		return
	}

	if time.Since(c.lastPruned) < pruneInterval {
		return
	}
	c.lastPruned = time.Now()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-cacheMaxAge)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
