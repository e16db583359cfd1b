// imgprobe reports which image protocol nowplaying would pick in the current
// terminal and can paint one image with it.
package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/nowplaying/internal/errmsg"
	"github.com/llehouerou/nowplaying/internal/ui/albumart"
	"github.com/llehouerou/nowplaying/internal/ui/frame"
)

var (
	protocol string
	noSixel  bool
	paint    string
	col      int
	row      int
	width    int
	height   int
	sweep    bool
	tempDir  string
)

var rootCmd = &cobra.Command{
	Use:          "imgprobe",
	Short:        "Show the detected image protocol and optionally paint an image",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&protocol, "protocol", "p", "", "protocol override: kitty, iterm or sixel")
	rootCmd.Flags().BoolVar(&noSixel, "no-sixel", false, "disable sixel support")
	rootCmd.Flags().StringVar(&paint, "paint", "", "image file to paint")
	rootCmd.Flags().IntVar(&col, "col", 0, "column of the image (0-based)")
	rootCmd.Flags().IntVar(&row, "row", 0, "row of the image (0-based)")
	rootCmd.Flags().IntVar(&width, "width", 10, "image width in cells")
	rootCmd.Flags().IntVar(&height, "height", 5, "image height in cells")
	rootCmd.Flags().BoolVar(&sweep, "sweep", false, "remove leftover graphics temp files")
	rootCmd.Flags().StringVar(&tempDir, "temp-dir", "", "directory swept for temp files (default os.TempDir)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	caps := albumart.ProbeEnv(os.Getenv)
	caps.Sixel = !noSixel

	override := protocol
	if override == "" {
		override = os.Getenv(albumart.OverrideEnv)
	}
	choice := albumart.Select(override, caps)

	fmt.Printf("TERM=%q TERM_PROGRAM=%q tmux=%v remote=%v ghostty=%v sixel=%v\n",
		caps.Term, caps.TermProgram, caps.InTmux, caps.Remote, caps.Ghostty(), caps.Sixel)
	fmt.Printf("override=%q protocol=%s\n", override, choice)

	painter := albumart.NewPainter(choice, albumart.PainterOptions{InTmux: caps.InTmux, Remote: caps.Remote})

	if sweep {
		marker := albumart.KittyTempMarker
		if painter != nil && painter.TempMarker() != "" {
			marker = painter.TempMarker()
		}
		stats, err := albumart.Janitor{Dir: tempDir, Marker: marker}.Sweep()
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpTempSweep, err))
		}
		fmt.Printf("removed %d files (%s)\n", stats.Removed, humanize.Bytes(uint64(stats.Bytes))) //nolint:gosec // sizes are non-negative
	}

	if paint == "" {
		return nil
	}
	if painter == nil {
		return errors.New("no image protocol available in this terminal")
	}
	return paintFile(painter, paint, frame.Rect{X: col, Y: row, Width: width, Height: height})
}

func paintFile(p albumart.Painter, path string, area frame.Rect) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpCoverLoad, path, err))
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpCoverLoad, path, err))
	}

	pw, ph := p.PixelSize(area)
	fmt.Printf("image %s %dx%d -> %dx%d px over %dx%d cells\n",
		format, img.Bounds().Dx(), img.Bounds().Dy(), pw, ph, area.Width, area.Height)

	start := time.Now()
	scaled := albumart.Fit(albumart.CropSquare(img), pw, ph)
	fmt.Print(ansi.EraseEntireScreen)
	if err := p.Paint(os.Stdout, scaled, area); err != nil {
		return errors.New(errmsg.Format(errmsg.OpCoverPaint, err))
	}
	fmt.Print(ansi.CursorPosition(1, area.Bottom()+2))
	fmt.Printf("painted in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
