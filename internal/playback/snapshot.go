package playback

import "time"

// Snapshot is the last playback state reported by the playback service.
type Snapshot struct {
	IsPlaying bool
	Repeat    RepeatState
	// FakeTrackRepeat is set when track repeat is emulated client-side while
	// the service itself reports context repeat.
	FakeTrackRepeat bool
	Shuffle         bool
	Volume          *int
	// MutedVolume holds the volume before muting. Non-nil means muted.
	MutedVolume *int
	Device      string
	Progress    time.Duration
	Item        Item
}

// Muted reports whether playback is muted.
func (s *Snapshot) Muted() bool {
	return s.MutedVolume != nil
}

// EffectiveVolume returns the volume to display: the pre-mute volume while
// muted, otherwise the current volume, or 0 when unknown.
func (s *Snapshot) EffectiveVolume() int {
	switch {
	case s.MutedVolume != nil:
		return *s.MutedVolume
	case s.Volume != nil:
		return *s.Volume
	default:
		return 0
	}
}

// Duration returns the length of the playing item, or 0 without an item.
func (s *Snapshot) Duration() time.Duration {
	if s.Item == nil {
		return 0
	}
	return s.Item.Length()
}

// CoverURL returns the cover URL of the playing item, or "".
func (s *Snapshot) CoverURL() string {
	if s.Item == nil {
		return ""
	}
	return s.Item.CoverURL()
}

// Clone returns a copy that shares no pointers with s.
func (s *Snapshot) Clone() *Snapshot {
	c := *s
	if s.Volume != nil {
		v := *s.Volume
		c.Volume = &v
	}
	if s.MutedVolume != nil {
		v := *s.MutedVolume
		c.MutedVolume = &v
	}
	return &c
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
