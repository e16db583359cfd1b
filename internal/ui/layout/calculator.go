// Package layout provides pure functions for the playback window geometry.
package layout

import "github.com/llehouerou/nowplaying/internal/ui/frame"

// BorderHeight is the vertical space consumed by the playback window border.
const BorderHeight = 2

// ProgressBarHeight is the number of rows reserved for the progress bar.
const ProgressBarHeight = 1

// CoverSpacing is the gap between the cover image column and the metadata.
const CoverSpacing = 1

// Position places the playback window relative to the rest of the screen.
type Position int

const (
	PositionTop Position = iota
	PositionBottom
)

// ParsePosition maps a config value to a Position. Anything other than
// "bottom" is Top.
func ParsePosition(s string) Position {
	if s == "bottom" {
		return PositionBottom
	}
	return PositionTop
}

// String returns the config spelling of the position.
func (p Position) String() string {
	if p == PositionBottom {
		return "bottom"
	}
	return "top"
}

// PlaybackOpts contains the parameters that shape the playback window.
type PlaybackOpts struct {
	Height       int // configured content height, without borders
	Position     Position
	CoverEnabled bool
	CoverWidth   int // target cover width in cells
	CoverHeight  int // maximum cover height in cells
}

// CoverImageHeight returns the height a square cover needs for the configured
// width. Cells are roughly twice as tall as they are wide, so a square image
// spans half as many rows as columns.
func CoverImageHeight(opts PlaybackOpts) int {
	h := max((opts.CoverWidth+1)/2, 1)
	if opts.CoverHeight > 0 {
		h = min(h, opts.CoverHeight)
	}
	return h
}

// PlaybackWindowHeight returns the total height of the playback window,
// borders included. With the cover enabled the window grows so the cover
// and the progress bar row both fit.
func PlaybackWindowHeight(opts PlaybackOpts) int {
	height := max(opts.Height, 0)
	if opts.CoverEnabled {
		height = max(height, CoverImageHeight(opts)+ProgressBarHeight)
	}
	return height + BorderHeight
}

// SplitPlaybackWindow partitions area into the playback window and the
// remaining space for the rest of the application.
func SplitPlaybackWindow(area frame.Rect, opts PlaybackOpts) (panel, rest frame.Rect) {
	height := min(PlaybackWindowHeight(opts), max(area.Height, 0))

	if opts.Position == PositionBottom {
		rest = frame.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: area.Height - height}
		panel = frame.Rect{X: area.X, Y: rest.Bottom(), Width: area.Width, Height: height}
		return panel, rest
	}

	panel = frame.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: height}
	rest = frame.Rect{X: area.X, Y: panel.Bottom(), Width: area.Width, Height: area.Height - height}
	return panel, rest
}

// PanelLayout holds the sub-rectangles of the playback window interior.
type PanelLayout struct {
	Metadata frame.Rect
	Cover    frame.Rect // empty when the cover is disabled
	Progress frame.Rect
}

// SplitPanel partitions the inner playback window rectangle. The last row is
// the progress bar. With the cover enabled, the rows above are split into a
// cover column, one spacing column and the metadata area.
func SplitPanel(inner frame.Rect, opts PlaybackOpts) PanelLayout {
	if inner.Empty() {
		return PanelLayout{}
	}

	body := frame.Rect{X: inner.X, Y: inner.Y, Width: inner.Width, Height: inner.Height - ProgressBarHeight}
	progress := frame.Rect{X: inner.X, Y: body.Bottom(), Width: inner.Width, Height: ProgressBarHeight}

	if !opts.CoverEnabled || body.Empty() {
		return PanelLayout{Metadata: body, Progress: progress}
	}

	colW := min(max(opts.CoverWidth, 0), body.Width)
	coverH := max(colW/2, 1)
	if opts.CoverHeight > 0 {
		coverH = min(coverH, opts.CoverHeight)
	}
	coverH = min(coverH, body.Height)

	var cover frame.Rect
	if colW > 0 {
		cover = frame.Rect{X: body.X, Y: body.Y, Width: colW, Height: coverH}
	}

	metaX := body.X + colW + CoverSpacing
	metadata := frame.Rect{
		X:      metaX,
		Y:      body.Y,
		Width:  max(body.Right()-metaX, 0),
		Height: body.Height,
	}

	return PanelLayout{Metadata: metadata, Cover: cover, Progress: progress}
}
