package nowplaying

import (
	"github.com/llehouerou/nowplaying/internal/playback"
	"github.com/llehouerou/nowplaying/internal/ui/albumart"
	"github.com/llehouerou/nowplaying/internal/ui/frame"
	"github.com/llehouerou/nowplaying/internal/ui/layout"
	"github.com/llehouerou/nowplaying/internal/ui/render"
	"github.com/llehouerou/nowplaying/internal/ui/styles"
)

// Title is drawn into the top border of the playback window.
const Title = "Playback"

// NoPlaybackText is shown when nothing is playing.
const NoPlaybackText = "No playback found. Please start a new playback.\n" +
	"Make sure a playback device is running and connected."

// Config holds the panel settings.
type Config struct {
	Format         string
	MetadataFields []string
	PlayIcon       string
	PauseIcon      string
	LikedIcon      string
	Bar            BarKind
	Gradient       bool
	Layout         layout.PlaybackOpts
}

// Panel draws the playback window. The zero value is not usable; use New.
type Panel struct {
	cfg      Config
	theme    *styles.Theme
	renderer *albumart.Renderer

	// ProgressRect is where the progress bar was last drawn, for mouse
	// seeking. It is empty when no bar was drawn.
	ProgressRect frame.Rect
}

// New creates a panel. renderer may be nil, in which case no cover is drawn
// and no room is reserved for it.
func New(cfg Config, theme *styles.Theme, renderer *albumart.Renderer) *Panel {
	if theme == nil {
		theme = styles.T()
	}
	cfg.Layout.CoverEnabled = cfg.Layout.CoverEnabled && renderer != nil
	return &Panel{cfg: cfg, theme: theme, renderer: renderer}
}

// SetConfig replaces the panel settings, for config reloads.
func (p *Panel) SetConfig(cfg Config) {
	cfg.Layout.CoverEnabled = cfg.Layout.CoverEnabled && p.renderer != nil
	p.cfg = cfg
}

// Config returns the effective panel settings.
func (p *Panel) Config() Config {
	return p.cfg
}

// Render draws the playback window into area and returns the space left for
// the rest of the application. The store is read-locked while drawing.
func (p *Panel) Render(buf *frame.Buffer, area frame.Rect, store *playback.Store) frame.Rect {
	window, rest := layout.SplitPlaybackWindow(area, p.cfg.Layout)
	st := p.theme.S()
	inner := frame.DrawBlock(buf, window, Title, st.Border, st.BlockTitle)
	p.ProgressRect = frame.Rect{}

	store.Read(func(v playback.View) {
		snap := v.Playback()
		if snap == nil || snap.Item == nil {
			p.renderer.Reset(buf)
			frame.DrawParagraph(buf, inner, NoPlaybackText, st.Base)
			return
		}

		pl := layout.SplitPanel(inner, p.cfg.Layout)
		if p.cfg.Layout.CoverEnabled {
			p.renderer.Render(buf, snap.CoverURL(), pl.Cover, v.Image)
		} else {
			p.renderer.Reset(buf)
		}

		text := Compile(p.cfg.Format, snap, v.ItemLiked(snap.Item), p.formatOptions())
		frame.DrawText(buf, pl.Metadata, text)

		duration := snap.Duration()
		progress := min(snap.Progress, duration)
		p.ProgressRect = RenderProgressBar(buf, pl.Progress, progress, duration, p.cfg.Bar, p.barStyles())
	})

	return rest
}

// Text compiles the format for the current playback without drawing it.
func (p *Panel) Text(store *playback.Store) render.Text {
	var text render.Text
	store.Read(func(v playback.View) {
		snap := v.Playback()
		if snap == nil || snap.Item == nil {
			return
		}
		text = Compile(p.cfg.Format, snap, v.ItemLiked(snap.Item), p.formatOptions())
	})
	return text
}

func (p *Panel) formatOptions() FormatOptions {
	st := p.theme.S()
	return FormatOptions{
		PlayIcon:       p.cfg.PlayIcon,
		PauseIcon:      p.cfg.PauseIcon,
		LikedIcon:      p.cfg.LikedIcon,
		MetadataFields: p.cfg.MetadataFields,
		Styles: FormatStyles{
			Status:   st.PlaybackStatus,
			Liked:    st.Like,
			Track:    st.PlaybackTrack,
			Artists:  st.PlaybackArtists,
			Album:    st.PlaybackAlbum,
			Metadata: st.PlaybackMetadata,
		},
	}
}

func (p *Panel) barStyles() BarStyles {
	st := p.theme.S()
	bs := BarStyles{
		Filled:   st.ProgressFilled,
		Unfilled: st.ProgressUnfilled,
		Label:    st.ProgressLabel,
	}
	if p.cfg.Gradient {
		bs.GradientFrom = p.theme.GradientFrom
		bs.GradientTo = p.theme.GradientTo
	}
	return bs
}
