// internal/playback/state.go
package playback

// RepeatState is the repeat mode reported by the playback service.
type RepeatState int

const (
	RepeatOff RepeatState = iota
	RepeatTrack
	RepeatContext
)

// String returns the display name of the repeat state.
func (r RepeatState) String() string {
	switch r {
	case RepeatOff:
		return "off"
	case RepeatTrack:
		return "track"
	case RepeatContext:
		return "context"
	default:
		return "unknown"
	}
}

// Next cycles off -> context -> track -> off.
func (r RepeatState) Next() RepeatState {
	switch r {
	case RepeatOff:
		return RepeatContext
	case RepeatContext:
		return RepeatTrack
	default:
		return RepeatOff
	}
}
