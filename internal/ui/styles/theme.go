package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - focused items, active states
	Secondary lipgloss.Color // Gold/orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase lipgloss.Color // Application background

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Status colors
	Success lipgloss.Color // Green - playing
	Error   lipgloss.Color // Red - errors, liked
	Warning lipgloss.Color // Yellow/orange - warnings

	// Progress gradient end points
	GradientFrom lipgloss.Color
	GradientTo   lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	App    lipgloss.Style // Blank application cells
	Base   lipgloss.Style // Default text
	Muted  lipgloss.Style // Dimmed text
	Subtle lipgloss.Style // Very dim text
	Title  lipgloss.Style // Bold, bright

	BlockTitle lipgloss.Style
	Border     lipgloss.Style

	PlaybackStatus   lipgloss.Style
	PlaybackTrack    lipgloss.Style
	PlaybackArtists  lipgloss.Style
	PlaybackAlbum    lipgloss.Style
	PlaybackMetadata lipgloss.Style
	Like             lipgloss.Style

	ProgressFilled   lipgloss.Style
	ProgressUnfilled lipgloss.Style
	ProgressLabel    lipgloss.Style

	Error lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase: lipgloss.Color("#1a1a1a"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	// Status
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),

	GradientFrom: lipgloss.Color("#a78bfa"),
	GradientTo:   lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		App:    lipgloss.NewStyle(),
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),

		BlockTitle: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Border:     lipgloss.NewStyle().Foreground(t.Border),

		PlaybackStatus:   lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		PlaybackTrack:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		PlaybackArtists:  lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		PlaybackAlbum:    lipgloss.NewStyle().Foreground(t.FgBase),
		PlaybackMetadata: lipgloss.NewStyle().Foreground(t.FgMuted),
		Like:             lipgloss.NewStyle().Foreground(t.Error),

		ProgressFilled:   lipgloss.NewStyle().Foreground(t.Primary).Background(t.Primary),
		ProgressUnfilled: lipgloss.NewStyle().Foreground(t.FgSubtle),
		ProgressLabel:    base.Bold(true),

		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
