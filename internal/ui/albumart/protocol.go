// Package albumart paints the cover image of the playing item with a
// terminal graphics protocol and tracks what is currently on screen.
package albumart

import (
	"image"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/nowplaying/internal/ui/frame"
)

// Choice is the graphics protocol used to paint cover images.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceKitty
	ChoiceITerm
	ChoiceSixel
	// ChoiceBlocks is the block-character fallback. Detection never picks
	// it; it names what DisableBlocksEnv turns off.
	ChoiceBlocks
)

func (c Choice) String() string {
	switch c {
	case ChoiceKitty:
		return "kitty"
	case ChoiceITerm:
		return "iterm"
	case ChoiceSixel:
		return "sixel"
	case ChoiceBlocks:
		return "blocks"
	default:
		return "none"
	}
}

// PixelProtocol reports whether c transmits real pixels, which makes the
// block fallback unnecessary.
func (c Choice) PixelProtocol() bool {
	return c == ChoiceKitty || c == ChoiceITerm
}

// Painter writes the escape sequences that display img over area.
type Painter interface {
	Paint(w io.Writer, img image.Image, area frame.Rect) error
	// PixelSize returns the pixel box an image should be scaled to before
	// being painted over area.
	PixelSize(area frame.Rect) (width, height int)
	// TempMarker is the substring of temp files the protocol leaves behind,
	// or "" when it writes none.
	TempMarker() string
}

// Eraser is implemented by painters whose images outlive the cells they
// were painted on.
type Eraser interface {
	Erase(w io.Writer) error
}

// PainterOptions configures the painter returned by NewPainter.
type PainterOptions struct {
	InTmux bool
	Remote bool
	// CellSize returns the cell size in pixels. Defaults to a TIOCGWINSZ
	// query on stdout.
	CellSize func() (width, height int)
}

// NewPainter returns the painter for c, or nil when c paints nothing.
func NewPainter(c Choice, opts PainterOptions) Painter {
	cellSize := opts.CellSize
	if cellSize == nil {
		cellSize = getCellSize
	}
	switch c {
	case ChoiceKitty:
		return &KittyPainter{InTmux: opts.InTmux, Remote: opts.Remote, cellSize: cellSize}
	case ChoiceITerm:
		return &ITermPainter{InTmux: opts.InTmux, cellSize: cellSize}
	case ChoiceSixel:
		return &SixelPainter{InTmux: opts.InTmux, cellSize: cellSize}
	default:
		return nil
	}
}

const stringTerminator = "\x1b\\"

// moveTo positions the cursor at the top-left cell of area.
func moveTo(area frame.Rect) string {
	return ansi.CursorPosition(area.X+1, area.Y+1)
}

// tmuxWrap wraps every string-terminated sequence of seq in a tmux
// passthrough so that it reaches the outer terminal.
func tmuxWrap(seq string) string {
	var sb strings.Builder
	for _, part := range strings.SplitAfter(seq, stringTerminator) {
		if part == "" {
			continue
		}
		sb.WriteString(ansi.TmuxPassthrough(part))
	}
	return sb.String()
}

// placed wraps seq with cursor save, positioning and restore.
func placed(area frame.Rect, seq string) string {
	var sb strings.Builder
	sb.WriteString(ansi.SaveCursor)
	sb.WriteString(moveTo(area))
	sb.WriteString(seq)
	sb.WriteString(ansi.RestoreCursor)
	return sb.String()
}

func pixelBox(area frame.Rect, cellSize func() (int, int)) (width, height int) {
	cw, ch := cellSize()
	if cw <= 0 || ch <= 0 {
		cw, ch = defaultCellWidth, defaultCellHeight
	}
	return area.Width * cw, area.Height * ch
}
