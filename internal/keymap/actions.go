package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit         Action = "quit"
	ActionHelp         Action = "help"
	ActionReloadConfig Action = "reload_config"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionToggleLike    Action = "toggle_like"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionToggleMute    Action = "toggle_mute"

	// Display actions
	ActionCycleProgressBar Action = "cycle_progress_bar"
	ActionToggleCover      Action = "toggle_cover"
	ActionTogglePosition   Action = "toggle_position"
)
