//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func testBindings() []Binding {
	return []Binding{
		bind(ActionQuit, "global", "q", "quit", "q", "ctrl+c"),
		bind(ActionPlayPause, "playback", "space", "play/pause", " "),
		bind(ActionSeekForward, "playback", "→", "seek", "right", "l"),
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(testBindings())

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"right", ActionSeekForward},
		{"l", ActionSeekForward},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(testBindings())

	tests := []struct {
		action   Action
		expected []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionPlayPause, []string{" "}},
		{ActionToggleMute, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			result := r.KeysFor(tt.action)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, result, tt.expected)
			}
		})
	}
}

func TestResolver_LastBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		bind(ActionQuit, "global", "x", "quit", "x"),
		bind(ActionToggleMute, "playback", "x", "mute", "x"),
	})

	if got := r.Resolve("x"); got != ActionToggleMute {
		t.Errorf("Resolve(x) = %q, want %q", got, ActionToggleMute)
	}
}

func TestResolver_Help(t *testing.T) {
	r := NewResolver(All)

	short := r.ShortHelp()
	if len(short) != 5 {
		t.Fatalf("ShortHelp() returned %d bindings, want 5", len(short))
	}
	if short[0].Help().Desc != "play/pause" {
		t.Errorf("first short help = %q, want play/pause", short[0].Help().Desc)
	}

	full := r.FullHelp()
	if len(full) != 3 {
		t.Fatalf("FullHelp() returned %d columns, want 3", len(full))
	}
	total := 0
	for _, col := range full {
		total += len(col)
	}
	if total != len(All) {
		t.Errorf("FullHelp() lists %d bindings, want %d", total, len(All))
	}
}

func TestResolver_MatchesKeyMsg(t *testing.T) {
	r := NewResolver(All)
	quit := r.byAction[ActionQuit]

	if !slices.Contains(quit.Keys(), "ctrl+c") {
		t.Errorf("quit keys = %v, want ctrl+c among them", quit.Keys())
	}
	if !key.Matches(keyMsg("q"), quit) {
		t.Error("key.Matches(q, quit) = false")
	}
}

type keyMsg string

func (k keyMsg) String() string { return string(k) }
