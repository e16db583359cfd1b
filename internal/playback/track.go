package playback

import "time"

// Image is a cover image reference. The largest image comes first.
type Image struct {
	URL    string
	Width  int
	Height int
}

// Artist is a track artist.
type Artist struct {
	ID   string
	Name string
}

// Album is the album a track belongs to.
type Album struct {
	ID     string
	Name   string
	Images []Image
}

// Show is the podcast an episode belongs to.
type Show struct {
	ID        string
	Name      string
	Publisher string
	Images    []Image
}

// Item is the playable item of a playback: a *Track or an *Episode.
type Item interface {
	ItemURI() string
	DisplayName() string
	IsExplicit() bool
	Length() time.Duration
	// CoverURL returns the URL of the cover image, or "" if there is none.
	CoverURL() string
}

// Track is a music track.
type Track struct {
	URI      string
	Name     string
	Explicit bool
	Artists  []Artist
	Album    Album
	Duration time.Duration
}

func (t *Track) ItemURI() string { return t.URI }
func (t *Track) DisplayName() string { return t.Name }
func (t *Track) IsExplicit() bool { return t.Explicit }
func (t *Track) Length() time.Duration { return t.Duration }
func (t *Track) CoverURL() string { return firstImageURL(t.Album.Images) }
func (t *Track) ArtistNames() []string {
	names := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		names[i] = a.Name
	}
	return names
}

// Episode is a podcast episode.
type Episode struct {
	URI      string
	Name     string
	Explicit bool
	Show     Show
	Images   []Image
	Duration time.Duration
}

func (e *Episode) ItemURI() string { return e.URI }
func (e *Episode) DisplayName() string { return e.Name }
func (e *Episode) IsExplicit() bool { return e.Explicit }
func (e *Episode) Length() time.Duration { return e.Duration }

// CoverURL prefers the show artwork and falls back to the episode's own.
func (e *Episode) CoverURL() string {
	if url := firstImageURL(e.Show.Images); url != "" {
		return url
	}
	return firstImageURL(e.Images)
}

func firstImageURL(images []Image) string {
	for _, img := range images {
		if img.URL != "" {
			return img.URL
		}
	}
	return ""
}

var (
	_ Item = (*Track)(nil)
	_ Item = (*Episode)(nil)
)
