package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrack_CoverURL(t *testing.T) {
	assert.Equal(t, "https://img/large", testTrack().CoverURL())
	assert.Empty(t, (&Track{}).CoverURL())
}

func TestTrack_ArtistNames(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, testTrack().ArtistNames())
}

func TestEpisode_CoverURL(t *testing.T) {
	tests := []struct {
		name string
		ep   Episode
		want string
	}{
		{"show artwork first", Episode{Show: Show{Images: []Image{{URL: "show"}}}, Images: []Image{{URL: "ep"}}}, "show"},
		{"episode fallback", Episode{Images: []Image{{URL: "ep"}}}, "ep"},
		{"none", Episode{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ep.CoverURL())
		})
	}
}

func TestSnapshot_Volume(t *testing.T) {
	tests := []struct {
		name  string
		snap  Snapshot
		want  int
		muted bool
	}{
		{"unknown", Snapshot{}, 0, false},
		{"set", Snapshot{Volume: IntPtr(50)}, 50, false},
		{"muted", Snapshot{Volume: IntPtr(0), MutedVolume: IntPtr(70)}, 70, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snap.EffectiveVolume())
			assert.Equal(t, tt.muted, tt.snap.Muted())
		})
	}
}
