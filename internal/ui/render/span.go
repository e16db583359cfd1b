package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Span is a run of text drawn with a single style.
type Span struct {
	Content string
	Style   lipgloss.Style
}

// Raw returns an unstyled span.
func Raw(s string) Span {
	return Span{Content: s, Style: lipgloss.NewStyle()}
}

// Styled returns a span drawn with style.
func Styled(s string, style lipgloss.Style) Span {
	return Span{Content: s, Style: style}
}

// Line is an ordered list of spans, drawn left to right.
type Line struct {
	Spans []Span
}

// String returns the line without styling.
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Content)
	}
	return sb.String()
}

// Width returns the number of columns the line occupies.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += Width(s.Content)
	}
	return w
}

// Text is an ordered list of lines, drawn top to bottom.
type Text struct {
	Lines []Line
}

// String returns the text without styling, lines separated by newlines.
func (t Text) String() string {
	lines := make([]string, len(t.Lines))
	for i, l := range t.Lines {
		lines[i] = l.String()
	}
	return strings.Join(lines, "\n")
}
