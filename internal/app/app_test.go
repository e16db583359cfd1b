package app

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/nowplaying/internal/config"
	"github.com/llehouerou/nowplaying/internal/playback"
	"github.com/llehouerou/nowplaying/internal/ui/albumart"
	"github.com/llehouerou/nowplaying/internal/ui/frame"
	"github.com/llehouerou/nowplaying/internal/ui/layout"
	"github.com/llehouerou/nowplaying/internal/ui/nowplaying"
	"github.com/llehouerou/nowplaying/internal/ui/testutil"
)

type stubPainter struct {
	paints int
}

func (p *stubPainter) Paint(w io.Writer, _ image.Image, _ frame.Rect) error {
	p.paints++
	_, err := io.WriteString(w, "<cover>")
	return err
}

func (p *stubPainter) PixelSize(area frame.Rect) (int, int) {
	return area.Width * 8, area.Height * 16
}

func (p *stubPainter) TempMarker() string { return "" }

func noEnv(string) string { return "" }

func newTestModel(t *testing.T, painter albumart.Painter) Model {
	t.Helper()
	m, err := New(Options{
		Config:   config.Default(),
		Getenv:   noEnv,
		Painter:  painter,
		CacheDir: t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 16})
	return updated.(Model)
}

func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(key)
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func current(t *testing.T, m Model) *playback.Snapshot {
	t.Helper()
	snap := m.Store.Snapshot()
	require.NotNil(t, snap)
	return snap
}

func TestNew_NoProtocol(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Nil(t, m.Renderer)
	assert.Equal(t, albumart.ChoiceNone, m.Renderer.Choice())
	assert.False(t, m.Panel.Config().Layout.CoverEnabled)
	assert.Equal(t, "Midnight Transit", current(t, m).Item.DisplayName())
}

func TestNew_ProtocolOverride(t *testing.T) {
	m, err := New(Options{
		Config:   config.Default(),
		Protocol: "sixel",
		Getenv:   noEnv,
		CacheDir: t.TempDir(),
	})
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, albumart.ChoiceSixel, m.Renderer.Choice())
}

func TestNew_SixelDisabledByConfig(t *testing.T) {
	cfg := config.Default()
	cfg.CoverImage.Sixel = false
	m, err := New(Options{Config: cfg, Protocol: "sixel", Getenv: noEnv, CacheDir: t.TempDir()})
	require.NoError(t, err)
	defer m.Close()

	assert.Nil(t, m.Renderer)
}

func TestNew_CacheErrorShownInStatus(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	m, err := New(Options{
		Config:   config.Default(),
		Getenv:   noEnv,
		Painter:  &stubPainter{},
		CacheDir: blocker,
	})
	require.NoError(t, err)
	defer m.Close()

	require.NotNil(t, m.Renderer)
	assert.Contains(t, m.ErrorMsg, "open cover cache")
}

func TestNew_CoverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	img.Set(1, 1, color.White)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	m, err := New(Options{Config: config.Default(), CoverFile: path, Getenv: noEnv, CacheDir: t.TempDir()})
	require.NoError(t, err)
	defer m.Close()

	url := current(t, m).CoverURL()
	assert.True(t, strings.HasPrefix(url, "file://"), url)
	m.Store.Read(func(v playback.View) {
		got, ok := v.Image(url)
		require.True(t, ok)
		assert.Equal(t, image.Pt(40, 30), got.Bounds().Size())
	})
}

func TestNew_CoverFileMissing(t *testing.T) {
	_, err := New(Options{
		Config:    config.Default(),
		CoverFile: filepath.Join(t.TempDir(), "missing.png"),
		Getenv:    noEnv,
		CacheDir:  t.TempDir(),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestView_PaintsCoverOnSecondFrame(t *testing.T) {
	painter := &stubPainter{}
	m := newTestModel(t, painter)

	first := m.View()
	assert.Contains(t, first, nowplaying.Title)
	assert.Contains(t, first, "Midnight Transit")
	assert.NotContains(t, first, "<cover>")
	assert.Equal(t, 0, painter.paints)

	second := m.View()
	assert.True(t, strings.HasSuffix(second, "<cover>"))
	assert.Equal(t, 1, painter.paints)

	third := m.View()
	assert.NotContains(t, third, "<cover>")
	assert.Equal(t, 1, painter.paints)
}

func TestView_ZeroSize(t *testing.T) {
	m, err := New(Options{Config: config.Default(), Getenv: noEnv, CacheDir: t.TempDir()})
	require.NoError(t, err)
	defer m.Close()

	assert.Empty(t, m.View())
}

func TestView_StatusAndHelp(t *testing.T) {
	m := newTestModel(t, nil)
	m.ErrorMsg = "Failed to load config: boom"

	view := m.View()

	assert.Contains(t, view, "cover: none")
	assert.Contains(t, view, "boom")
	assert.Contains(t, view, "play/pause")
}

func TestUpdate_PlayPause(t *testing.T) {
	m := newTestModel(t, nil)
	require.True(t, current(t, m).IsPlaying)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	assert.False(t, current(t, m).IsPlaying)
}

func TestUpdate_NextPrev(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, runes("n"))
	assert.Equal(t, "Paper Lanterns", current(t, m).Item.DisplayName())
	assert.Equal(t, time.Duration(0), current(t, m).Progress)

	m = press(t, m, runes("p"))
	m = press(t, m, runes("p"))
	assert.Equal(t, "Midnight Transit", current(t, m).Item.DisplayName())
}

func TestUpdate_Seek(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, time.Duration(0), current(t, m).Progress)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 5*time.Second, current(t, m).Progress)
}

func TestUpdate_VolumeAndMute(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, runes("+"))
	assert.Equal(t, 70, *current(t, m).Volume)

	m = press(t, m, runes("m"))
	snap := current(t, m)
	assert.True(t, snap.Muted())
	assert.Equal(t, 70, snap.EffectiveVolume())
	assert.Equal(t, "volume: 70% (muted)", nowplaying.Metadata(snap, []string{"volume"}))

	m = press(t, m, runes("m"))
	snap = current(t, m)
	assert.False(t, snap.Muted())
	assert.Equal(t, 70, *snap.Volume)
}

func TestUpdate_ToggleLike(t *testing.T) {
	m := newTestModel(t, nil)
	uri := current(t, m).Item.ItemURI()

	m = press(t, m, runes("L"))
	m.Store.Read(func(v playback.View) { assert.True(t, v.IsLiked(uri)) })

	m = press(t, m, runes("L"))
	m.Store.Read(func(v playback.View) { assert.False(t, v.IsLiked(uri)) })
}

func TestUpdate_DisplayToggles(t *testing.T) {
	m := newTestModel(t, &stubPainter{})
	require.True(t, m.Panel.Config().Layout.CoverEnabled)

	m = press(t, m, runes("c"))
	assert.False(t, m.Panel.Config().Layout.CoverEnabled)

	m = press(t, m, runes("b"))
	assert.Equal(t, nowplaying.BarLine, m.Panel.Config().Bar)

	m = press(t, m, runes("t"))
	assert.Equal(t, layout.PositionBottom, m.Panel.Config().Layout.Position)
	assert.Equal(t, "top", config.Default().Layout.PlaybackWindowPosition, "defaults untouched")
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_ConfigReloadError(t *testing.T) {
	m := newTestModel(t, nil)

	updated, _ := m.Update(ConfigReloadedMsg{Err: os.ErrPermission})
	m = updated.(Model)

	assert.Contains(t, m.ErrorMsg, "load config")

	cfg := config.Default()
	cfg.Playback.Format = "{album}"
	updated, _ = m.Update(ConfigReloadedMsg{Config: cfg})
	m = updated.(Model)

	assert.Empty(t, m.ErrorMsg)
	assert.Equal(t, "Night Lines", m.Panel.Text(m.Store).String())
}

func TestUpdate_MouseSeek(t *testing.T) {
	m := newTestModel(t, nil)
	m.View()
	r := m.Panel.ProgressRect
	require.False(t, r.Empty())

	updated, _ := m.Update(tea.MouseMsg{
		X:      r.X + r.Width/2,
		Y:      r.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = updated.(Model)

	snap := current(t, m)
	assert.InDelta(t, snap.Duration().Seconds()/2, snap.Progress.Seconds(), snap.Duration().Seconds()/float64(r.Width))
}

func TestAdvance(t *testing.T) {
	m := newTestModel(t, nil)
	length := current(t, m).Duration()

	m.advance(time.Second)
	assert.Equal(t, time.Second, current(t, m).Progress)

	m.advance(length)
	assert.Equal(t, "Paper Lanterns", current(t, m).Item.DisplayName())

	m.Store.Update(func(s *playback.Snapshot) { s.Repeat = playback.RepeatTrack })
	m.advance(time.Hour)
	snap := current(t, m)
	assert.Equal(t, "Paper Lanterns", snap.Item.DisplayName())
	assert.Equal(t, time.Duration(0), snap.Progress)
}

func TestAdvance_StopsAtEndWithoutRepeat(t *testing.T) {
	m := newTestModel(t, nil)
	m.Store.Update(func(s *playback.Snapshot) { s.Repeat = playback.RepeatOff })
	m.queue.index = len(m.queue.items) - 2
	m.skip(true)

	m.advance(time.Hour)

	snap := current(t, m)
	assert.False(t, snap.IsPlaying)
	assert.Equal(t, time.Duration(0), snap.Progress)
}

func TestCycleRepeat(t *testing.T) {
	track := &playback.Snapshot{Item: &playback.Track{}}
	episode := &playback.Snapshot{Item: &playback.Episode{}}

	cycleRepeat(track)
	assert.Equal(t, playback.RepeatContext, track.Repeat)
	cycleRepeat(track)
	assert.Equal(t, playback.RepeatTrack, track.Repeat)
	assert.False(t, track.FakeTrackRepeat)
	cycleRepeat(track)
	assert.Equal(t, playback.RepeatOff, track.Repeat)

	cycleRepeat(episode)
	cycleRepeat(episode)
	assert.Equal(t, playback.RepeatContext, episode.Repeat)
	assert.True(t, episode.FakeTrackRepeat)
	cycleRepeat(episode)
	assert.Equal(t, playback.RepeatOff, episode.Repeat)
	assert.False(t, episode.FakeTrackRepeat)
}

func TestPanelConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Playback.ProgressBar = "line"
	cfg.Layout.PlaybackWindowPosition = "bottom"

	pc := PanelConfig(cfg)

	assert.Equal(t, cfg.Playback.Format, pc.Format)
	assert.Equal(t, nowplaying.BarLine, pc.Bar)
	assert.Equal(t, layout.PositionBottom, pc.Layout.Position)
	assert.Equal(t, 5, pc.Layout.CoverWidth)
	assert.True(t, pc.Layout.CoverEnabled)
}

func TestQueue(t *testing.T) {
	q := &queue{items: demoItems()}

	q.prev()
	assert.Equal(t, 0, q.index)

	for q.next(false) {
	}
	assert.Equal(t, len(q.items)-1, q.index)

	assert.True(t, q.next(true))
	assert.Equal(t, 0, q.index)

	empty := &queue{}
	assert.Nil(t, empty.current())
	assert.False(t, empty.next(true))
}

func TestHarness_RedrawPaintsCover(t *testing.T) {
	painter := &stubPainter{}
	m, err := New(Options{Config: config.Default(), Getenv: noEnv, Painter: painter, CacheDir: t.TempDir()})
	require.NoError(t, err)
	defer m.Close()

	h := testutil.NewHarness(m)
	require.NotEmpty(t, h.Commands(), "Init schedules ticks and watchers")
	h.Resize(60, 16)

	assert.True(t, h.ViewContains("Midnight Transit"))
	h.SendMsg(RedrawMsg{})
	view := h.View()
	assert.Equal(t, 1, painter.paints)
	assert.NotEmpty(t, testutil.FindLine(testutil.StripANSI(view), "volume: 65%"))

	h.SendKey("n")
	assert.True(t, h.ViewContains("Paper Lanterns (E)"))
}
