package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play      string
	Pause     string
	Liked     string
	Shuffle   string
	RepeatAll string
	RepeatOne string
	Device    string
}

var (
	nerdIcons = Icons{
		Play:      "\uf04b", // nf-fa-play
		Pause:     "\uf04c", // nf-fa-pause
		Liked:     "󰣐",      // nf-md-heart
		Shuffle:   "󰒟",      // nf-md-shuffle
		RepeatAll: "󰑖",      // nf-md-repeat
		RepeatOne: "󰑘",      // nf-md-repeat_once
		Device:    "󰓃",      // nf-md-speaker
	}

	unicodeIcons = Icons{
		Play:      "▶",
		Pause:     "▌▌",
		Liked:     "♥",
		Shuffle:   "🔀",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
		Device:    "🔈",
	}

	noneIcons = Icons{
		Play:      ">",
		Pause:     "||",
		Liked:     "*",
		Shuffle:   "[S]",
		RepeatAll: "[R]",
		RepeatOne: "[1]",
		Device:    "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	current = ForStyle(style)
}

// ForStyle returns the icon set for style without activating it.
// Unknown styles get the plain ASCII set.
func ForStyle(style string) Icons {
	switch Style(style) {
	case StyleNerd:
		return nerdIcons
	case StyleUnicode:
		return unicodeIcons
	default:
		return noneIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

// Play returns the icon shown while playing.
func Play() string {
	return current.Play
}

// Pause returns the icon shown while paused.
func Pause() string {
	return current.Pause
}

// Liked returns the icon marking a liked track.
func Liked() string {
	return current.Liked
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// RepeatAll returns the repeat all icon.
func RepeatAll() string {
	return current.RepeatAll
}

// RepeatOne returns the repeat one icon.
func RepeatOne() string {
	return current.RepeatOne
}
