// Package keymap defines key bindings and action dispatch for the application.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding ties an action to its keys within a context.
type Binding struct {
	Action  Action
	Key     key.Binding
	Context string // "global", "playback", "display"
}

func bind(action Action, context, help, desc string, keys ...string) Binding {
	return Binding{
		Action:  action,
		Key:     key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc)),
		Context: context,
	}
}

// All contains all key bindings.
var All = []Binding{
	// Global
	bind(ActionQuit, "global", "q", "quit", "q", "ctrl+c"),
	bind(ActionHelp, "global", "?", "help", "?"),
	bind(ActionReloadConfig, "global", "ctrl+r", "reload config", "ctrl+r"),

	// Playback
	bind(ActionPlayPause, "playback", "space", "play/pause", " "),
	bind(ActionNextTrack, "playback", "n", "next", "n", "pgdown"),
	bind(ActionPrevTrack, "playback", "p", "previous", "p", "pgup"),
	bind(ActionSeekForward, "playback", "→", "seek +5s", "right", "l"),
	bind(ActionSeekBack, "playback", "←", "seek -5s", "left", "h"),
	bind(ActionCycleRepeat, "playback", "R", "repeat", "R"),
	bind(ActionToggleShuffle, "playback", "S", "shuffle", "S"),
	bind(ActionToggleLike, "playback", "L", "like", "L"),
	bind(ActionVolumeUp, "playback", "+", "volume up", "+", "="),
	bind(ActionVolumeDown, "playback", "-", "volume down", "-"),
	bind(ActionToggleMute, "playback", "m", "mute", "m"),

	// Display
	bind(ActionCycleProgressBar, "display", "b", "bar style", "b"),
	bind(ActionToggleCover, "display", "c", "cover", "c"),
	bind(ActionTogglePosition, "display", "t", "top/bottom", "t"),
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
