package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/nowplaying/internal/app"
	"github.com/llehouerou/nowplaying/internal/config"
	"github.com/llehouerou/nowplaying/internal/errmsg"
	"github.com/llehouerou/nowplaying/internal/icons"
	"github.com/llehouerou/nowplaying/internal/logger"
)

var (
	configPath string
	protocol   string
	coverFile  string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "nowplaying",
	Short: "Terminal now playing panel with cover art",
	Long: `nowplaying renders a now playing panel for a demo queue: a status text
built from a format string, a progress bar and the cover image painted with
the kitty, iTerm2 or Sixel graphics protocol.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/nowplaying/config.toml)")
	rootCmd.Flags().StringVarP(&protocol, "protocol", "p", "", "force the image protocol: kitty, iterm or sixel")
	rootCmd.Flags().StringVar(&coverFile, "cover", "", "image file shown as the first track's cover")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if err := logger.Init(logger.Options{Enabled: true, File: cfg.LogFile, Level: level}); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLogInit, err))
	}
	defer logger.Close()

	icons.Init(cfg.Icons)

	m, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: configPath,
		Protocol:   protocol,
		CoverFile:  coverFile,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		return err
	}
	return nil
}
