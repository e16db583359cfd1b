package albumart

import "strings"

// OverrideEnv forces a protocol by name, like the cover_image.protocol
// setting.
const OverrideEnv = "NOWPLAYING_IMAGE_PROTOCOL"

// Capabilities are the terminal signals protocol selection depends on.
type Capabilities struct {
	InTmux           bool
	TermProgram      string
	Term             string
	GhosttyResources bool
	// Remote is set inside an SSH session, where temp-file transmission
	// cannot reach the terminal.
	Remote bool
	// Sixel enables the Sixel protocol.
	Sixel bool
}

// ProbeEnv collects capabilities from the environment. Sixel is enabled;
// callers turn it off from configuration.
func ProbeEnv(getenv func(string) string) Capabilities {
	return Capabilities{
		InTmux:           getenv("TMUX") != "",
		TermProgram:      getenv("TERM_PROGRAM"),
		Term:             getenv("TERM"),
		GhosttyResources: getenv("GHOSTTY_RESOURCES_DIR") != "",
		Remote:           getenv("SSH_CONNECTION") != "" || getenv("SSH_TTY") != "",
		Sixel:            true,
	}
}

var sixelTerms = []string{"xterm", "mlterm", "foot", "wezterm", "contour", "mintty"}

// SixelTerminal reports whether the terminal is known to support Sixel.
func (c Capabilities) SixelTerminal() bool {
	for _, t := range sixelTerms {
		if strings.Contains(c.Term, t) {
			return true
		}
	}
	return strings.Contains(c.TermProgram, "wezterm")
}

// Ghostty reports whether the terminal is Ghostty.
func (c Capabilities) Ghostty() bool {
	return c.TermProgram == "ghostty" || strings.Contains(c.Term, "ghostty") || c.GhosttyResources
}

// ParseOverride parses a protocol name. ok is false for names that do not
// force a protocol.
func ParseOverride(s string) (c Choice, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kitty":
		return ChoiceKitty, true
	case "iterm":
		return ChoiceITerm, true
	case "sixel":
		return ChoiceSixel, true
	default:
		return ChoiceNone, false
	}
}

// Select picks the protocol for caps. A valid override wins, except that
// sixel is only honored when Sixel is enabled; otherwise detection runs.
func Select(override string, caps Capabilities) Choice {
	if c, ok := ParseOverride(override); ok && (c != ChoiceSixel || caps.Sixel) {
		return c
	}

	switch {
	case caps.Sixel && caps.SixelTerminal():
		return ChoiceSixel
	case caps.Ghostty() || caps.InTmux:
		return ChoiceKitty
	default:
		return ChoiceNone
	}
}
