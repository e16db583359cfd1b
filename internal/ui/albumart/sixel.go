package albumart

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-sixel"

	"github.com/llehouerou/nowplaying/internal/ui/frame"
)

// sixelBand is the pixel height of one sixel row.
const sixelBand = 6

// SixelPainter paints with the Sixel graphics protocol.
type SixelPainter struct {
	InTmux   bool
	cellSize func() (int, int)
}

func (p *SixelPainter) TempMarker() string { return "" }

// PixelSize rounds the height down to whole sixel bands so the image never
// spills into the row below the area.
func (p *SixelPainter) PixelSize(area frame.Rect) (width, height int) {
	width, height = pixelBox(area, p.cellSize)
	return width, height - height%sixelBand
}

func (p *SixelPainter) Paint(w io.Writer, img image.Image, area frame.Rect) error {
	var data bytes.Buffer
	enc := sixel.NewEncoder(&data)
	enc.Dither = true
	if err := enc.Encode(img); err != nil {
		return fmt.Errorf("encode sixel: %w", err)
	}

	seq := data.String()
	if p.InTmux {
		seq = ansi.TmuxPassthrough(seq)
	}

	_, err := io.WriteString(w, placed(area, seq))
	return err
}
