package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/nowplaying/internal/ui/frame"
	"github.com/llehouerou/nowplaying/internal/ui/styles"
)

// View renders the application UI. Escape sequences written by the cover
// painter during the frame are appended after the cells, so they land on
// top of the cleared area.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	area := frame.Rect{Width: m.Width, Height: m.Height}
	buf := frame.NewBuffer(area)

	rest := m.Panel.Render(buf, area, m.Store)
	m.renderStatus(buf, rest)

	view := buf.Render()
	if m.imgOut.Len() > 0 {
		view += m.imgOut.String()
		m.imgOut.Reset()
	}
	return view
}

// renderStatus fills the space left by the panel with the protocol line,
// the last error and the key help.
func (m Model) renderStatus(buf *frame.Buffer, r frame.Rect) {
	if r.Empty() {
		return
	}
	st := styles.T().S()
	inner := frame.Rect{X: r.X + 1, Y: r.Y, Width: max(r.Width-2, 0), Height: r.Height}
	y := inner.Y

	status := "cover: " + m.Renderer.Choice().String()
	if m.Config.Path != "" {
		status += "  config: " + m.Config.Path
	}
	buf.SetString(inner.X, y, status, inner.Width, st.Subtle)
	y++

	if m.ErrorMsg != "" && y < inner.Bottom() {
		frame.DrawParagraph(buf, frame.Rect{X: inner.X, Y: y, Width: inner.Width, Height: 2}, m.ErrorMsg, st.Error)
		y += 2
	}

	helpView := m.Help.View(m.Keys)
	lines := strings.Split(helpView, "\n")
	start := max(inner.Bottom()-len(lines), y)
	for i, line := range lines {
		if start+i >= inner.Bottom() {
			break
		}
		buf.SetString(inner.X, start+i, ansi.Strip(line), inner.Width, st.Muted)
	}
}
