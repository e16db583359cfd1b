package nowplaying

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/nowplaying/internal/ui/frame"
	"github.com/llehouerou/nowplaying/internal/ui/render"
	"github.com/llehouerou/nowplaying/internal/ui/styles"
)

// BarKind selects how the progress bar is drawn.
type BarKind int

const (
	BarRectangle BarKind = iota
	BarLine
)

// ParseBarKind maps a config value to a BarKind. Anything other than "line"
// is a rectangle.
func ParseBarKind(s string) BarKind {
	if s == "line" {
		return BarLine
	}
	return BarRectangle
}

func (k BarKind) String() string {
	if k == BarLine {
		return "line"
	}
	return "rectangle"
}

const (
	lineFilled   = "━"
	lineUnfilled = "─"
)

// BarStyles are the styles of the progress bar parts.
type BarStyles struct {
	Filled   lipgloss.Style
	Unfilled lipgloss.Style
	Label    lipgloss.Style

	// Gradient, when both ends are set, colors the filled cells from
	// GradientFrom at the left edge to GradientTo at the right edge.
	GradientFrom lipgloss.Color
	GradientTo   lipgloss.Color
}

func (s BarStyles) gradient(width int) []lipgloss.Color {
	if s.GradientFrom == "" || s.GradientTo == "" {
		return nil
	}
	return styles.Blend(width, s.GradientFrom, s.GradientTo)
}

// Ratio returns elapsed/total clamped to [0, 1]. A non-positive total
// yields 0.
func Ratio(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	r := elapsed.Seconds() / total.Seconds()
	return min(max(r, 0), 1)
}

// FormatDuration formats d as m:ss, or h:mm:ss past one hour. Negative
// durations are shown as 0:00.
func FormatDuration(d time.Duration) string {
	secs := max(int(d.Seconds()), 0)
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ProgressLabel returns the "elapsed/total" label of the progress bar.
func ProgressLabel(elapsed, total time.Duration) string {
	return FormatDuration(elapsed) + "/" + FormatDuration(total)
}

// RenderProgressBar draws the progress bar into area and returns the
// rectangle it occupies.
func RenderProgressBar(buf *frame.Buffer, area frame.Rect, elapsed, total time.Duration, kind BarKind, st BarStyles) frame.Rect {
	if area.Empty() {
		return frame.Rect{}
	}
	label := ProgressLabel(elapsed, total)
	ratio := Ratio(elapsed, total)

	if kind == BarLine {
		renderLine(buf, area, label, ratio, st)
	} else {
		renderRectangle(buf, area, label, ratio, st)
	}
	return area
}

// renderLine draws the label followed by a one-row line gauge on the first
// row of area.
func renderLine(buf *frame.Buffer, area frame.Rect, label string, ratio float64, st BarStyles) {
	y := area.Y
	x := buf.SetString(area.X, y, label, area.Width, st.Label)
	x = min(x+1, area.Right())

	width := area.Right() - x
	if width <= 0 {
		return
	}
	filled := int(float64(width) * ratio)
	colors := st.gradient(width)

	for i := range width {
		if i >= filled {
			buf.SetString(x+i, y, lineUnfilled, 1, st.Unfilled)
			continue
		}
		style := st.Filled.UnsetBackground()
		if colors != nil {
			style = style.Foreground(colors[i])
		}
		buf.SetString(x+i, y, lineFilled, 1, style)
	}
}

// renderRectangle fills the filled share of every row of area and centers
// the label on the middle row. Label characters over filled cells take the
// filled background.
func renderRectangle(buf *frame.Buffer, area frame.Rect, label string, ratio float64, st BarStyles) {
	filled := int(float64(area.Width) * ratio)
	colors := st.gradient(area.Width)

	cellBg := func(i int) lipgloss.TerminalColor {
		if colors != nil {
			return colors[i]
		}
		return st.Filled.GetBackground()
	}

	for y := area.Y; y < area.Bottom(); y++ {
		for i := range area.Width {
			if i < filled {
				buf.Fill(frame.Rect{X: area.X + i, Y: y, Width: 1, Height: 1}, " ", st.Filled.Background(cellBg(i)))
			} else {
				buf.Fill(frame.Rect{X: area.X + i, Y: y, Width: 1, Height: 1}, " ", st.Unfilled)
			}
		}
	}

	label = render.TruncateEllipsis(label, area.Width)
	lw := render.Width(label)
	x := area.X + (area.Width-lw)/2
	y := area.Y + area.Height/2
	for _, r := range label {
		i := x - area.X
		style := st.Label
		if i < filled {
			style = style.Background(cellBg(i))
		}
		x = buf.SetString(x, y, string(r), 1, style)
	}
}
