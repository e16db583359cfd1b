package frame

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/nowplaying/internal/ui/render"
)

// DrawBlock draws a rounded border around r with title set into the top
// edge, and returns the inner rectangle.
func DrawBlock(b *Buffer, r Rect, title string, border, titleStyle lipgloss.Style) Rect {
	if r.Width < 2 || r.Height < 2 {
		return Rect{}
	}
	edge := lipgloss.RoundedBorder()

	top := edge.TopLeft + strings.Repeat(edge.Top, r.Width-2) + edge.TopRight
	bottom := edge.BottomLeft + strings.Repeat(edge.Bottom, r.Width-2) + edge.BottomRight
	b.SetString(r.X, r.Y, top, r.Width, border)
	b.SetString(r.X, r.Bottom()-1, bottom, r.Width, border)
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		b.SetString(r.X, y, edge.Left, 1, border)
		b.SetString(r.Right()-1, y, edge.Right, 1, border)
	}

	if title != "" && r.Width > 2 {
		b.SetString(r.X+1, r.Y, render.TruncateEllipsis(title, r.Width-2), r.Width-2, titleStyle)
	}
	return r.Inner(1)
}

// DrawLine draws the spans of line from (x, y), clipped to width columns.
func DrawLine(b *Buffer, x, y int, line render.Line, width int) {
	end := x + width
	for _, span := range line.Spans {
		if x >= end {
			return
		}
		x = b.SetString(x, y, span.Content, end-x, span.Style)
	}
}

// DrawText draws text inside r, one line per row. Lines past the bottom of
// r are dropped and long lines are clipped.
func DrawText(b *Buffer, r Rect, text render.Text) {
	for i, line := range text.Lines {
		if i >= r.Height {
			return
		}
		DrawLine(b, r.X, r.Y+i, line, r.Width)
	}
}

// DrawParagraph word-wraps s to the width of r and draws it with style.
func DrawParagraph(b *Buffer, r Rect, s string, style lipgloss.Style) {
	if r.Empty() {
		return
	}
	wrapped := ansi.Wrap(s, r.Width, "")
	for i, line := range strings.Split(wrapped, "\n") {
		if i >= r.Height {
			return
		}
		b.SetString(r.X, r.Y+i, strings.TrimSpace(line), r.Width, style)
	}
}
