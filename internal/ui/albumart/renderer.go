package albumart

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/nowplaying/internal/logger"
	"github.com/llehouerou/nowplaying/internal/ui/frame"
)

// DisableBlocksEnv is set to "1" once a pixel protocol is in use.
const DisableBlocksEnv = "NOWPLAYING_DISABLE_BLOCKS"

// RenderState is what the renderer believes is on screen. Rendered implies
// the image for URL is painted over Area.
type RenderState struct {
	URL      string
	Area     frame.Rect
	Rendered bool
}

// ImageLookup returns the decoded image for a cover URL.
type ImageLookup func(url string) (image.Image, bool)

// Options configures a Renderer.
type Options struct {
	// ClearStyle is applied to cells blanked when an image goes stale.
	ClearStyle lipgloss.Style
	// TempDir is swept for leftover transmission files. Defaults to
	// os.TempDir().
	TempDir string
	// Cache stores scaled covers. Optional.
	Cache *Cache
}

// Renderer keeps one cover image in sync with the frame. It is owned by a
// single UI session and must only be used from its render path.
type Renderer struct {
	choice     Choice
	painter    Painter
	out        io.Writer
	clearStyle lipgloss.Style
	janitor    Janitor
	cache      *Cache
	state      RenderState
}

// New creates a renderer painting with choice into out. It returns nil when
// choice paints nothing; a nil *Renderer is valid and does nothing.
func New(choice Choice, out io.Writer, po PainterOptions, opts Options) *Renderer {
	p := NewPainter(choice, po)
	if p == nil {
		return nil
	}
	return NewWithPainter(choice, p, out, opts)
}

// NewWithPainter creates a renderer around an existing painter.
func NewWithPainter(choice Choice, p Painter, out io.Writer, opts Options) *Renderer {
	if choice.PixelProtocol() {
		if err := os.Setenv(DisableBlocksEnv, "1"); err != nil {
			logger.Warn("set environment", "key", DisableBlocksEnv, "error", err)
		}
	}
	return &Renderer{
		choice:     choice,
		painter:    p,
		out:        out,
		clearStyle: opts.ClearStyle,
		janitor:    Janitor{Dir: opts.TempDir, Marker: p.TempMarker()},
		cache:      opts.Cache,
	}
}

// Choice returns the protocol the renderer paints with.
func (r *Renderer) Choice() Choice {
	if r == nil {
		return ChoiceNone
	}
	return r.choice
}

// State returns the current render state.
func (r *Renderer) State() RenderState {
	if r == nil {
		return RenderState{}
	}
	return r.state
}

// Render brings the screen in line with the cover at url over area.
//
// A change of url or area clears both the old and the new area and paints
// nothing during that frame. The next frame paints; every frame after that
// protects the area so cell output leaves the image alone.
func (r *Renderer) Render(buf *frame.Buffer, url string, area frame.Rect, lookup ImageLookup) {
	if r == nil {
		return
	}

	if url == "" {
		r.Reset(buf)
		return
	}

	if url != r.state.URL || area != r.state.Area {
		if r.state.Rendered {
			r.erase()
		}
		r.clear(buf, r.state.Area)
		r.clear(buf, area)
		r.state = RenderState{URL: url, Area: area}
		return
	}

	if !r.state.Rendered {
		r.state.Rendered = r.paint(url, area, lookup)
	}
	buf.Protect(area)
}

// Reset forgets the tracked image, clearing it first if it was painted.
func (r *Renderer) Reset(buf *frame.Buffer) {
	if r == nil {
		return
	}
	if r.state.Rendered {
		r.erase()
		r.clear(buf, r.state.Area)
	}
	r.state = RenderState{}
}

func (r *Renderer) paint(url string, area frame.Rect, lookup ImageLookup) bool {
	if lookup == nil || area.Empty() {
		return false
	}
	if err := r.sweep(); err != nil {
		logger.Warn("paint cover image",
			"protocol", r.choice.String(),
			"url", url,
			"error", err,
		)
		return false
	}

	img, ok := lookup(url)
	if !ok || img == nil {
		return false
	}

	width, height := r.painter.PixelSize(area)
	if err := r.painter.Paint(r.out, r.scaled(url, img, width, height), area); err != nil {
		logger.Warn("paint cover image",
			"protocol", r.choice.String(),
			"url", url,
			"error", err,
		)
		return false
	}
	return true
}

func (r *Renderer) scaled(url string, img image.Image, width, height int) image.Image {
	if cached := r.cache.Get(url, width, height); cached != nil {
		return cached
	}
	scaled := Fit(CropSquare(img), width, height)
	if err := r.cache.Put(url, width, height, scaled); err != nil {
		logger.Debug("cache cover image", "url", url, "error", err)
	}
	return scaled
}

// sweep removes leftover transmission files. An error aborts the current
// paint attempt; the next frame tries again.
func (r *Renderer) sweep() error {
	stats, err := r.janitor.Sweep()
	if stats.Removed > 0 {
		logger.Info("removed graphics temp files",
			"count", stats.Removed,
			"size", humanize.Bytes(uint64(stats.Bytes)), //nolint:gosec // sizes are non-negative
		)
	}
	if err != nil {
		return fmt.Errorf("remove graphics temp files: %w", err)
	}
	return nil
}

func (r *Renderer) erase() {
	e, ok := r.painter.(Eraser)
	if !ok {
		return
	}
	if err := e.Erase(r.out); err != nil {
		logger.Warn("erase cover image", "protocol", r.choice.String(), "error", err)
	}
}

func (r *Renderer) clear(buf *frame.Buffer, area frame.Rect) {
	if buf == nil || area.Empty() {
		return
	}
	buf.Clear(area, r.clearStyle)
}
