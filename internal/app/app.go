package app

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/nowplaying/internal/config"
	"github.com/llehouerou/nowplaying/internal/errmsg"
	"github.com/llehouerou/nowplaying/internal/icons"
	"github.com/llehouerou/nowplaying/internal/keymap"
	"github.com/llehouerou/nowplaying/internal/logger"
	"github.com/llehouerou/nowplaying/internal/playback"
	"github.com/llehouerou/nowplaying/internal/ui/albumart"
	"github.com/llehouerou/nowplaying/internal/ui/layout"
	"github.com/llehouerou/nowplaying/internal/ui/nowplaying"
	"github.com/llehouerou/nowplaying/internal/ui/styles"
)

// Options configures New.
type Options struct {
	Config *config.Config
	// ConfigPath is the explicit --config path, reused on reload.
	ConfigPath string
	// Protocol overrides cover_image.protocol and the environment.
	Protocol string
	// CoverFile replaces the first demo cover with an image file.
	CoverFile string
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
	// Painter replaces the painter chosen from the environment.
	Painter albumart.Painter
	// CacheDir defaults to the XDG cache home.
	CacheDir string
}

// Model is the root application model.
type Model struct {
	Config   *config.Config
	Store    *playback.Store
	Panel    *nowplaying.Panel
	Renderer *albumart.Renderer
	Keys     *keymap.Resolver
	Help     help.Model
	ShowHelp bool
	ErrorMsg string
	Width    int
	Height   int

	configPath string
	queue      *queue
	imgOut     *bytes.Buffer
	sub        *playback.Subscription
	watcher    *config.Watcher
}

// New creates the application model and starts playing the demo queue.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	var status string
	imgOut := &bytes.Buffer{}
	renderer, err := newRenderer(cfg, opts, getenv, imgOut)
	if err != nil {
		logger.Warn("open cover cache", "error", err)
		status = errmsg.Format(errmsg.OpCoverCache, err)
	}

	store := playback.NewStore()
	q := &queue{items: demoItems()}
	for i, item := range q.items {
		store.PutImage(item.CoverURL(), demoCover(i+1))
	}
	if opts.CoverFile != "" {
		if err := useCoverFile(store, q, opts.CoverFile); err != nil {
			return Model{}, fmt.Errorf("cover file: %w", err)
		}
	}
	store.SetPlayback(&playback.Snapshot{
		IsPlaying: true,
		Repeat:    playback.RepeatContext,
		Volume:    playback.IntPtr(65),
		Device:    "Living Room",
		Item:      q.current(),
	})
	store.SetLiked("spotify:track:demo2", true)

	var watcher *config.Watcher
	if cfg.Path != "" {
		watcher, err = config.Watch(cfg.Path)
		if err != nil {
			logger.Warn("watch config", "path", cfg.Path, "error", err)
			status = errmsg.Format(errmsg.OpConfigWatch, err)
			watcher = nil
		}
	}

	return Model{
		Config:     cfg,
		Store:      store,
		Panel:      nowplaying.New(PanelConfig(cfg), styles.T(), renderer),
		Renderer:   renderer,
		Keys:       keymap.NewResolver(keymap.All),
		Help:       help.New(),
		ErrorMsg:   status,
		configPath: opts.ConfigPath,
		queue:      q,
		imgOut:     imgOut,
		sub:        store.Subscribe(),
		watcher:    watcher,
	}, nil
}

// newRenderer builds the cover renderer. A cache error is returned alongside
// a working renderer that runs without a cache.
func newRenderer(cfg *config.Config, opts Options, getenv func(string) string, out *bytes.Buffer) (*albumart.Renderer, error) {
	caps := albumart.ProbeEnv(getenv)
	caps.Sixel = cfg.CoverImage.Sixel

	override := firstNonEmpty(opts.Protocol, getenv(albumart.OverrideEnv), cfg.CoverImage.Protocol)
	choice := albumart.Select(override, caps)
	logger.Info("image protocol",
		"choice", choice.String(),
		"override", override,
		"tmux", caps.InTmux,
		"remote", caps.Remote,
	)

	cache, err := albumart.NewCache(opts.CacheDir)
	if err != nil {
		cache = nil
	}
	ro := albumart.Options{ClearStyle: styles.T().S().App, Cache: cache}

	if opts.Painter != nil {
		return albumart.NewWithPainter(choice, opts.Painter, out, ro), err
	}
	return albumart.New(choice, out, albumart.PainterOptions{InTmux: caps.InTmux, Remote: caps.Remote}, ro), err
}

func useCoverFile(store *playback.Store, q *queue, path string) error {
	img, url, err := loadCover(path)
	if err != nil {
		return err
	}
	track, ok := q.items[0].(*playback.Track)
	if !ok {
		return fmt.Errorf("first demo item is not a track")
	}
	track.Album.Images = []playback.Image{{
		URL:    url,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}}
	store.PutImage(url, img)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// PanelConfig converts the loaded configuration to panel settings.
func PanelConfig(cfg *config.Config) nowplaying.Config {
	return nowplaying.Config{
		Format:         cfg.Playback.Format,
		MetadataFields: cfg.Playback.MetadataFields,
		PlayIcon:       cfg.Playback.PlayIcon,
		PauseIcon:      cfg.Playback.PauseIcon,
		LikedIcon:      cfg.Playback.LikedIcon,
		Bar:            nowplaying.ParseBarKind(cfg.Playback.ProgressBar),
		Gradient:       cfg.Playback.ProgressGradient,
		Layout: layout.PlaybackOpts{
			Height:       cfg.Layout.PlaybackWindowHeight,
			Position:     layout.ParsePosition(cfg.Layout.PlaybackWindowPosition),
			CoverEnabled: cfg.CoverImage.Enabled,
			CoverWidth:   cfg.CoverImage.Width,
			CoverHeight:  cfg.CoverImage.Height,
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		TickCmd(),
		WaitForChange(m.sub),
		WaitForConfig(m.watcher),
		RedrawCmd(),
	)
}

// Close releases the store subscription and the config watcher.
func (m Model) Close() error {
	var err error
	if m.watcher != nil {
		err = m.watcher.Close()
	}
	if cerr := m.Store.Close(); err == nil {
		err = cerr
	}
	return err
}

// applyConfig switches to a freshly loaded configuration.
func (m *Model) applyConfig(cfg *config.Config) {
	m.Config = cfg
	icons.Init(cfg.Icons)
	m.Panel.SetConfig(PanelConfig(cfg))
}
