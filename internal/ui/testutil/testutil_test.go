package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/nowplaying/internal/ui/frame"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no ansi codes",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "with color codes",
			input: "\x1b[31mred\x1b[0m text",
			want:  "red text",
		},
		{
			name:  "cursor movement",
			input: "ab\x1b[3Ccd",
			want:  "abcd",
		},
		{
			name:  "kitty graphics command",
			input: "x\x1b_Ga=d\x1b\\y",
			want:  "xy",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindLine(t *testing.T) {
	output := "first\nsecond line\nthird"

	if got := FindLine(output, "second"); got != "second line" {
		t.Errorf("FindLine() = %q, want %q", got, "second line")
	}
	if got := FindLine(output, "missing"); got != "" {
		t.Errorf("FindLine() = %q, want empty", got)
	}
	if !ContainsLine(output, "third") || ContainsLine(output, "fourth") {
		t.Error("ContainsLine() gave the wrong answer")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\n\n  \n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitLines() = %q, want [a b]", got)
	}
}

func TestBufferLines(t *testing.T) {
	buf := frame.NewBuffer(frame.Rect{Width: 6, Height: 2})
	buf.SetString(1, 1, "hi", 6, lipgloss.NewStyle())

	got := BufferLines(buf)

	if len(got) != 2 || got[0] != "" || got[1] != " hi" {
		t.Errorf("BufferLines() = %q", got)
	}
}

type counter struct{ n int }

func (c counter) Init() tea.Cmd { return nil }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "+" {
		c.n++
		return c, tea.Quit
	}
	return c, nil
}

func (c counter) View() string {
	if c.n > 0 {
		return "\x1b[1mcount\x1b[0m"
	}
	return ""
}

func TestHarness(t *testing.T) {
	h := NewHarness(counter{})

	if len(h.Commands()) != 0 {
		t.Fatalf("Commands() = %d, want 0", len(h.Commands()))
	}
	cmd := h.SendKey("+")
	if _, ok := ExecuteCmd(cmd).(tea.QuitMsg); !ok {
		t.Error("SendKey(+) did not return tea.Quit")
	}
	if h.Model().(counter).n != 1 {
		t.Errorf("n = %d, want 1", h.Model().(counter).n)
	}
	if !h.ViewContains("count") {
		t.Errorf("View() = %q, want it to contain count", h.View())
	}
	h.ClearCommands()
	if len(h.Commands()) != 0 {
		t.Error("ClearCommands() left commands behind")
	}
}
