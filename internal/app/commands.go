package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/nowplaying/internal/config"
	"github.com/llehouerou/nowplaying/internal/playback"
)

const (
	tickInterval   = time.Second
	redrawInterval = 50 * time.Millisecond
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// RedrawCmd returns a command that sends RedrawMsg shortly.
func RedrawCmd() tea.Cmd {
	return tea.Tick(redrawInterval, func(_ time.Time) tea.Msg {
		return RedrawMsg{}
	})
}

// WaitForChange returns a command that waits for the next store change.
func WaitForChange(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case c := <-sub.Changed:
			return StoreChangedMsg(c)
		case <-sub.Done:
			return StoreClosedMsg{}
		}
	}
}

// WaitForConfig returns a command that waits for the config file to change.
func WaitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return ConfigChangedMsg{}
	}
}

// ReloadConfigCmd reloads the config from explicit (or the default search
// paths when empty).
func ReloadConfigCmd(explicit string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load(explicit)
		return ConfigReloadedMsg{Config: cfg, Err: err}
	}
}
