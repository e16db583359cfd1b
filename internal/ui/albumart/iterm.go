package albumart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/ansi/iterm2"

	"github.com/llehouerou/nowplaying/internal/ui/frame"
)

// ITermPainter paints with the iTerm2 inline image protocol (OSC 1337).
type ITermPainter struct {
	InTmux   bool
	cellSize func() (int, int)
}

func (p *ITermPainter) TempMarker() string { return "" }

func (p *ITermPainter) PixelSize(area frame.Rect) (width, height int) {
	return pixelBox(area, p.cellSize)
}

func (p *ITermPainter) Paint(w io.Writer, img image.Image, area frame.Rect) error {
	var data bytes.Buffer
	if err := png.Encode(&data, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	seq := ansi.ITerm2(iterm2.File{
		Size:            int64(data.Len()),
		Width:           iterm2.Cells(area.Width),
		Height:          iterm2.Cells(area.Height),
		Inline:          true,
		DoNotMoveCursor: true,
		Content:         []byte(base64.StdEncoding.EncodeToString(data.Bytes())),
	})
	if p.InTmux {
		seq = ansi.TmuxPassthrough(seq)
	}

	_, err := io.WriteString(w, placed(area, seq))
	return err
}
