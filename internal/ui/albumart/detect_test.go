package albumart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeEnv(t *testing.T) {
	env := map[string]string{
		"TMUX":                  "/tmp/tmux-1000/default,1,0",
		"TERM_PROGRAM":          "ghostty",
		"TERM":                  "xterm-ghostty",
		"GHOSTTY_RESOURCES_DIR": "/usr/share/ghostty",
		"SSH_TTY":               "/dev/pts/3",
	}
	caps := ProbeEnv(func(k string) string { return env[k] })

	assert.Equal(t, Capabilities{
		InTmux:           true,
		TermProgram:      "ghostty",
		Term:             "xterm-ghostty",
		GhosttyResources: true,
		Remote:           true,
		Sixel:            true,
	}, caps)

	empty := ProbeEnv(func(string) string { return "" })
	assert.Equal(t, Capabilities{Sixel: true}, empty)
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		override string
		caps     Capabilities
		want     Choice
	}{
		{"override kitty", "kitty", Capabilities{}, ChoiceKitty},
		{"override is case-insensitive and trimmed", "  ITerm ", Capabilities{}, ChoiceITerm},
		{"override sixel enabled", "sixel", Capabilities{Sixel: true}, ChoiceSixel},
		{"override sixel disabled falls through", "sixel", Capabilities{InTmux: true}, ChoiceKitty},
		{"unknown override falls through", "blocks", Capabilities{Sixel: true, Term: "foot"}, ChoiceSixel},
		{"override beats detection", "kitty", Capabilities{Sixel: true, Term: "xterm-256color"}, ChoiceKitty},
		{"xterm sixel", "", Capabilities{Sixel: true, Term: "xterm-256color"}, ChoiceSixel},
		{"mlterm", "", Capabilities{Sixel: true, Term: "mlterm"}, ChoiceSixel},
		{"wezterm program", "", Capabilities{Sixel: true, TermProgram: "wezterm"}, ChoiceSixel},
		{"sixel terminal without sixel", "", Capabilities{Term: "foot"}, ChoiceNone},
		{"sixel wins over ghostty", "", Capabilities{Sixel: true, Term: "xterm-ghostty"}, ChoiceSixel},
		{"ghostty program", "", Capabilities{TermProgram: "ghostty"}, ChoiceKitty},
		{"ghostty term", "", Capabilities{Term: "ghostty"}, ChoiceKitty},
		{"ghostty resources", "", Capabilities{GhosttyResources: true, Sixel: true, Term: "screen"}, ChoiceKitty},
		{"tmux", "", Capabilities{InTmux: true, Term: "screen-256color"}, ChoiceKitty},
		{"nothing", "", Capabilities{Sixel: true, Term: "linux"}, ChoiceNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.override, tt.caps))
		})
	}
}

func TestSelect_Deterministic(t *testing.T) {
	caps := Capabilities{InTmux: true, Term: "xterm", Sixel: true}
	first := Select("", caps)
	for range 10 {
		assert.Equal(t, first, Select("", caps))
	}
}

func TestParseOverride(t *testing.T) {
	tests := []struct {
		in     string
		want   Choice
		wantOK bool
	}{
		{"kitty", ChoiceKitty, true},
		{"KITTY", ChoiceKitty, true},
		{"iterm", ChoiceITerm, true},
		{" sixel\n", ChoiceSixel, true},
		{"", ChoiceNone, false},
		{"none", ChoiceNone, false},
		{"iterm2", ChoiceNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseOverride(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestChoice_String(t *testing.T) {
	assert.Equal(t, "none", ChoiceNone.String())
	assert.Equal(t, "kitty", ChoiceKitty.String())
	assert.Equal(t, "iterm", ChoiceITerm.String())
	assert.Equal(t, "sixel", ChoiceSixel.String())
	assert.Equal(t, "blocks", ChoiceBlocks.String())
	assert.True(t, ChoiceKitty.PixelProtocol())
	assert.True(t, ChoiceITerm.PixelProtocol())
	assert.False(t, ChoiceSixel.PixelProtocol())
}
