package app

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"
	"path/filepath"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/nowplaying/internal/playback"
)

const demoCoverSize = 256

// demoItems returns the items played by the demo queue.
func demoItems() []playback.Item {
	cover := func(i int) []playback.Image {
		return []playback.Image{{
			URL:    fmt.Sprintf("demo://cover/%d", i),
			Width:  demoCoverSize,
			Height: demoCoverSize,
		}}
	}
	return []playback.Item{
		&playback.Track{
			URI:      "spotify:track:demo1",
			Name:     "Midnight Transit",
			Artists:  []playback.Artist{{ID: "a1", Name: "Low Orbit"}},
			Album:    playback.Album{ID: "al1", Name: "Night Lines", Images: cover(1)},
			Duration: 3*time.Minute + 41*time.Second,
		},
		&playback.Track{
			URI:      "spotify:track:demo2",
			Name:     "Paper Lanterns",
			Explicit: true,
			Artists: []playback.Artist{
				{ID: "a2", Name: "Mira Vale"},
				{ID: "a3", Name: "The Quiet Hours"},
			},
			Album:    playback.Album{ID: "al2", Name: "Lanterns", Images: cover(2)},
			Duration: 4*time.Minute + 5*time.Second,
		},
		&playback.Track{
			URI:      "spotify:track:demo3",
			Name:     "שיר ערש",
			Artists:  []playback.Artist{{ID: "a4", Name: "נועה"}},
			Album:    playback.Album{ID: "al3", Name: "Lullabies", Images: cover(3)},
			Duration: 2*time.Minute + 58*time.Second,
		},
		&playback.Episode{
			URI:      "spotify:episode:demo4",
			Name:     "Ep. 42: Terminal Graphics",
			Show:     playback.Show{ID: "s1", Name: "Late Night Shell", Publisher: "Pipe Media", Images: cover(4)},
			Duration: 52 * time.Minute,
		},
	}
}

// demoCover draws a diagonal gradient cover for the demo item n.
func demoCover(n int) image.Image {
	from := colorful.Hcl(float64(n*67%360), 0.6, 0.55)
	to := colorful.Hcl(float64((n*67+140)%360), 0.5, 0.3)

	img := image.NewRGBA(image.Rect(0, 0, demoCoverSize, demoCoverSize))
	for y := range demoCoverSize {
		for x := range demoCoverSize {
			t := float64(x+y) / float64(2*(demoCoverSize-1))
			r, g, b := from.BlendHcl(to, t).Clamped().RGB255()
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// loadCover decodes the image at path.
func loadCover(path string) (image.Image, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, "file://" + abs, nil
}

// queue cycles through the demo items.
type queue struct {
	items []playback.Item
	index int
}

func (q *queue) current() playback.Item {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[q.index]
}

// next advances the queue. At the end it wraps when wrap is set and
// reports false otherwise.
func (q *queue) next(wrap bool) bool {
	if q.index+1 < len(q.items) {
		q.index++
		return true
	}
	if wrap && len(q.items) > 0 {
		q.index = 0
		return true
	}
	return false
}

func (q *queue) prev() {
	if q.index > 0 {
		q.index--
	}
}
