package playback

// ChangeKind identifies what part of the store changed.
type ChangeKind int

const (
	// ChangePlayback is emitted when the snapshot is replaced or cleared.
	ChangePlayback ChangeKind = iota
	// ChangeLiked is emitted when a track is liked or unliked.
	ChangeLiked
	// ChangeImage is emitted when a decoded cover image is stored.
	ChangeImage
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePlayback:
		return "playback"
	case ChangeLiked:
		return "liked"
	case ChangeImage:
		return "image"
	default:
		return "unknown"
	}
}

// Change is emitted on every store mutation.
//
// URI is set for ChangeLiked and ChangeImage (track URI or image URL), and
// for ChangePlayback when the playing item changed.
type Change struct {
	Kind ChangeKind
	URI  string
	// ItemChanged is set on ChangePlayback when the playing item differs
	// from the previous snapshot.
	ItemChanged bool
}
