package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/nowplaying/internal/icons"
)

// AppName names the config, cache and state directories.
const AppName = "nowplaying"

// Defaults for the playback panel.
const (
	DefaultFormat         = "{status} {track} • {artists} {liked}\n{album}\n{metadata}"
	DefaultProgressBar    = "rectangle"
	DefaultWindowHeight   = 6
	DefaultWindowPosition = "top"
	DefaultCoverWidth     = 5
	DefaultCoverHeight    = 9
	DefaultIcons          = "unicode"
)

// DefaultMetadataFields is the default content of {metadata}.
var DefaultMetadataFields = []string{"repeat", "shuffle", "volume", "device"}

type Config struct {
	Icons   string `koanf:"icons"`    // "nerd", "unicode", or "none"
	LogFile string `koanf:"log_file"` // empty means a dated file in the state dir

	Playback   PlaybackConfig   `koanf:"playback"`
	Layout     LayoutConfig     `koanf:"layout"`
	CoverImage CoverImageConfig `koanf:"cover_image"`

	// Path is the last config file that was loaded, or "" when none exists.
	Path string `koanf:"-"`
}

// PlaybackConfig holds the playback panel text and progress bar settings.
type PlaybackConfig struct {
	Format           string   `koanf:"format"`
	MetadataFields   []string `koanf:"metadata_fields"` // any of repeat, shuffle, volume, device
	PlayIcon         string   `koanf:"play_icon"`       // defaults to the icon style's play icon
	PauseIcon        string   `koanf:"pause_icon"`
	LikedIcon        string   `koanf:"liked_icon"`
	ProgressBar      string   `koanf:"progress_bar"` // "line" or "rectangle"
	ProgressGradient bool     `koanf:"progress_gradient"`
}

// LayoutConfig holds the playback window geometry.
type LayoutConfig struct {
	PlaybackWindowHeight   int    `koanf:"playback_window_height"`   // content rows, without borders
	PlaybackWindowPosition string `koanf:"playback_window_position"` // "top" or "bottom"
}

// CoverImageConfig holds the cover image settings.
type CoverImageConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Width    int    `koanf:"width"`    // cells
	Height   int    `koanf:"height"`   // maximum cells
	Protocol string `koanf:"protocol"` // "kitty", "iterm", "sixel"; empty auto-detects
	Sixel    bool   `koanf:"sixel"`    // allow sixel output
}

// Load reads the config files in order of priority, the last one winning:
// the xdg config file, ./config.toml, then explicit when not empty. An
// explicit path that does not exist is an error; the others are optional.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	cfg := defaults()

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		cfg.Path = path
	}

	if explicit != "" {
		path := expandPath(explicit)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		cfg.Path = path
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if !k.Exists("playback.metadata_fields") {
		cfg.resetMetadataFields()
	}
	cfg.applyDefaults()

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Icons: DefaultIcons,
		Playback: PlaybackConfig{
			Format:      DefaultFormat,
			ProgressBar: DefaultProgressBar,
		},
		Layout: LayoutConfig{
			PlaybackWindowHeight:   DefaultWindowHeight,
			PlaybackWindowPosition: DefaultWindowPosition,
		},
		CoverImage: CoverImageConfig{
			Enabled: true,
			Width:   DefaultCoverWidth,
			Height:  DefaultCoverHeight,
			Sixel:   true,
		},
	}
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := defaults()
	cfg.resetMetadataFields()
	cfg.applyDefaults()
	return cfg
}

// resetMetadataFields resets the metadata fields to DefaultMetadataFields.
func (c *Config) resetMetadataFields() {
	c.Playback.MetadataFields = append([]string(nil), DefaultMetadataFields...)
}

// applyDefaults fills values that were left empty or set out of range.
func (c *Config) applyDefaults() {
	if c.Icons == "" {
		c.Icons = DefaultIcons
	}

	set := icons.ForStyle(c.Icons)
	if c.Playback.PlayIcon == "" {
		c.Playback.PlayIcon = set.Play
	}
	if c.Playback.PauseIcon == "" {
		c.Playback.PauseIcon = set.Pause
	}
	if c.Playback.LikedIcon == "" {
		c.Playback.LikedIcon = set.Liked
	}

	if c.Playback.ProgressBar != "line" && c.Playback.ProgressBar != "rectangle" {
		c.Playback.ProgressBar = DefaultProgressBar
	}
	if c.Layout.PlaybackWindowHeight < 0 {
		c.Layout.PlaybackWindowHeight = DefaultWindowHeight
	}
	if c.Layout.PlaybackWindowPosition != "top" && c.Layout.PlaybackWindowPosition != "bottom" {
		c.Layout.PlaybackWindowPosition = DefaultWindowPosition
	}
	if c.CoverImage.Width <= 0 {
		c.CoverImage.Width = DefaultCoverWidth
	}
	if c.CoverImage.Height <= 0 {
		c.CoverImage.Height = DefaultCoverHeight
	}
}

// Dir returns the directory of the xdg config file.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/nowplaying/config.toml
		filepath.Join(Dir(), "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
