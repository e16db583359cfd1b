package albumart

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/ansi/kitty"

	"github.com/llehouerou/nowplaying/internal/ui/frame"
)

// KittyTempMarker is the substring the Kitty graphics protocol requires in
// the name of temp files used for transmission.
const KittyTempMarker = "tty-graphics-protocol"

// Fixed ids: painting again replaces the previous cover instead of
// stacking a new image on top of it.
const (
	kittyImageID     = 1
	kittyPlacementID = 1
)

// KittyPainter paints with the Kitty graphics protocol. Locally the image
// is handed over through a temp file; over SSH it is sent inline in chunks.
type KittyPainter struct {
	InTmux   bool
	Remote   bool
	cellSize func() (int, int)
}

func (p *KittyPainter) TempMarker() string {
	if p.Remote {
		return ""
	}
	return KittyTempMarker
}

func (p *KittyPainter) PixelSize(area frame.Rect) (width, height int) {
	return pixelBox(area, p.cellSize)
}

func (p *KittyPainter) Paint(w io.Writer, img image.Image, area frame.Rect) error {
	opts := &kitty.Options{
		Action:          kitty.TransmitAndPut,
		Quite:           2,
		ID:              kittyImageID,
		PlacementID:     kittyPlacementID,
		Format:          kitty.PNG,
		Transmission:    kitty.TempFile,
		Columns:         area.Width,
		Rows:            area.Height,
		DoNotMoveCursor: true,
	}
	if p.Remote {
		opts.Transmission = kitty.Direct
		opts.Chunk = true
	}

	var seq bytes.Buffer
	if err := kitty.EncodeGraphics(&seq, img, opts); err != nil {
		return fmt.Errorf("encode kitty graphics: %w", err)
	}

	_, err := io.WriteString(w, placed(area, p.wrap(seq.String())))
	return err
}

// Erase deletes the image and frees its data in the terminal.
func (p *KittyPainter) Erase(w io.Writer) error {
	opts := &kitty.Options{
		Action:          kitty.Delete,
		Delete:          kitty.DeleteID,
		DeleteResources: true,
		ID:              kittyImageID,
		Quite:           2,
	}
	_, err := io.WriteString(w, p.wrap(ansi.KittyGraphics(nil, opts.Options()...)))
	return err
}

func (p *KittyPainter) wrap(seq string) string {
	if p.InTmux {
		return tmuxWrap(seq)
	}
	return seq
}
