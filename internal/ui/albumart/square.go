package albumart

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

const (
	defaultCellWidth  = 8
	defaultCellHeight = 16
)

// CropSquare returns the centred square of img whose side is the shorter
// of its two dimensions.
func CropSquare(img image.Image) image.Image {
	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	if b.Dx() == b.Dy() || side <= 0 {
		return img
	}

	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	r := image.Rect(x0, y0, x0+side, y0+side)

	if s, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return s.SubImage(r)
	}

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}

// Fit scales img down to fit a width x height pixel box, keeping its
// aspect ratio.
func Fit(img image.Image, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return img
	}
	//nolint:gosec // dimensions are small, no overflow risk
	return resize.Thumbnail(uint(width), uint(height), img, resize.Lanczos3)
}
