package frame

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell is a single terminal cell. The trailing cells of a wide grapheme have
// empty Content and zero Width.
type Cell struct {
	Content string
	Width   int
	style   int
}

var blankCell = Cell{Content: " ", Width: 1}

// Buffer holds one frame worth of cells.
type Buffer struct {
	area      Rect
	cells     []Cell
	styles    []lipgloss.Style
	protected []Rect
}

// NewBuffer creates a blank buffer covering area.
func NewBuffer(area Rect) *Buffer {
	b := &Buffer{
		area:   area,
		cells:  make([]Cell, area.Area()),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range b.cells {
		b.cells[i] = blankCell
	}
	return b
}

// Area returns the rectangle covered by the buffer.
func (b *Buffer) Area() Rect {
	return b.area
}

// Cell returns the cell at (x, y). ok is false outside the buffer.
func (b *Buffer) Cell(x, y int) (c Cell, ok bool) {
	i, ok := b.index(x, y)
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// Protect marks r as painted by something other than the buffer. Cell
// writes skip protected cells and Render moves the cursor over them.
func (b *Buffer) Protect(r Rect) {
	r = r.Intersect(b.area)
	if r.Empty() {
		return
	}
	b.protected = append(b.protected, r)
}

// Protected reports whether (x, y) lies inside a protected region.
func (b *Buffer) Protected(x, y int) bool {
	for _, r := range b.protected {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// ProtectedRegions returns the regions protected during this frame.
func (b *Buffer) ProtectedRegions() []Rect {
	return b.protected
}

// SetString writes s starting at (x, y), never past maxWidth columns.
// It returns the column following the last written grapheme.
func (b *Buffer) SetString(x, y int, s string, maxWidth int, style lipgloss.Style) int {
	if maxWidth <= 0 || s == "" {
		return x
	}
	limit := min(x+maxWidth, b.area.Right())
	idx := b.addStyle(style)

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		if b.spanProtected(x, y, w) {
			x += w
			continue
		}
		b.set(x, y, Cell{Content: cluster, Width: w, style: idx})
		for i := 1; i < w; i++ {
			b.set(x+i, y, Cell{style: idx})
		}
		x += w
	}
	return x
}

// Fill sets every unprotected cell of r to content.
func (b *Buffer) Fill(r Rect, content string, style lipgloss.Style) {
	idx := b.addStyle(style)
	w := max(runewidth.StringWidth(content), 1)
	r = r.Intersect(b.area)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x+w <= r.Right(); x += w {
			if b.spanProtected(x, y, w) {
				continue
			}
			b.set(x, y, Cell{Content: content, Width: w, style: idx})
			for i := 1; i < w; i++ {
				b.set(x+i, y, Cell{style: idx})
			}
		}
	}
}

// SetStyle restyles the unprotected cells of r, keeping their content.
func (b *Buffer) SetStyle(r Rect, style lipgloss.Style) {
	idx := b.addStyle(style)
	r = r.Intersect(b.area)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if b.Protected(x, y) {
				continue
			}
			if i, ok := b.index(x, y); ok {
				b.cells[i].style = idx
			}
		}
	}
}

// Clear blanks every cell of r with style. Protection is ignored: clearing
// has to reach the cells a previous image was painted on.
func (b *Buffer) Clear(r Rect, style lipgloss.Style) {
	idx := b.addStyle(style)
	r = r.Intersect(b.area)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if i, ok := b.index(x, y); ok {
				b.cells[i] = Cell{Content: " ", Width: 1, style: idx}
			}
		}
	}
}

// Render converts the buffer into a string of styled rows. Protected cells
// are skipped with cursor movements so whatever the terminal shows there is
// left untouched.
func (b *Buffer) Render() string {
	rows := make([]string, 0, b.area.Height)
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		rows = append(rows, b.renderRow(y))
	}
	return strings.Join(rows, "\n")
}

func (b *Buffer) renderRow(y int) string {
	var sb strings.Builder
	x := b.area.X
	for x < b.area.Right() {
		if b.Protected(x, y) {
			start := x
			for x < b.area.Right() && b.Protected(x, y) {
				x++
			}
			sb.WriteString(ansi.CursorForward(x - start))
			continue
		}

		i, _ := b.index(x, y)
		styleIdx := b.cells[i].style
		var run strings.Builder
		for x < b.area.Right() && !b.Protected(x, y) {
			j, _ := b.index(x, y)
			if b.cells[j].style != styleIdx {
				break
			}
			run.WriteString(b.cells[j].Content)
			x++
		}
		if styleIdx == 0 {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(b.styles[styleIdx].Render(run.String()))
		}
	}
	return sb.String()
}

// PlainLine returns the unstyled content of row y.
func (b *Buffer) PlainLine(y int) string {
	var sb strings.Builder
	for x := b.area.X; x < b.area.Right(); x++ {
		if c, ok := b.Cell(x, y); ok {
			sb.WriteString(c.Content)
		}
	}
	return sb.String()
}

// String returns the unstyled content of the whole buffer.
func (b *Buffer) String() string {
	rows := make([]string, 0, b.area.Height)
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		rows = append(rows, b.PlainLine(y))
	}
	return strings.Join(rows, "\n")
}

// spanProtected reports whether any of the w columns starting at x is
// protected. A wide grapheme is written whole or not at all.
func (b *Buffer) spanProtected(x, y, w int) bool {
	for i := range w {
		if b.Protected(x+i, y) {
			return true
		}
	}
	return false
}

func (b *Buffer) set(x, y int, c Cell) {
	if b.Protected(x, y) {
		return
	}
	if i, ok := b.index(x, y); ok {
		b.cells[i] = c
	}
}

func (b *Buffer) index(x, y int) (int, bool) {
	if !b.area.Contains(x, y) {
		return 0, false
	}
	return (y-b.area.Y)*b.area.Width + (x - b.area.X), true
}

func (b *Buffer) addStyle(style lipgloss.Style) int {
	b.styles = append(b.styles, style)
	return len(b.styles) - 1
}
