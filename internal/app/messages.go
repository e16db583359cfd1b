// Package app contains the bubbletea model driving the playback panel.
package app

import (
	"time"

	"github.com/llehouerou/nowplaying/internal/config"
	"github.com/llehouerou/nowplaying/internal/playback"
)

// TickMsg is sent periodically to advance playback progress.
type TickMsg time.Time

// RedrawMsg asks for one more frame, so a cover cleared in the previous
// frame gets painted without waiting for the next tick.
type RedrawMsg struct{}

// StoreChangedMsg wraps a playback store change.
type StoreChangedMsg playback.Change

// StoreClosedMsg is sent when the store subscription ends.
type StoreClosedMsg struct{}

// ConfigChangedMsg is sent when the loaded config file was rewritten.
type ConfigChangedMsg struct{}

// ConfigReloadedMsg carries the result of reloading the config.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}
