package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/nowplaying/internal/errmsg"
	"github.com/llehouerou/nowplaying/internal/keymap"
	"github.com/llehouerou/nowplaying/internal/logger"
	"github.com/llehouerou/nowplaying/internal/playback"
)

const (
	seekStep   = 5 * time.Second
	volumeStep = 5
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, RedrawCmd()

	case TickMsg:
		m.advance(tickInterval)
		return m, TickCmd()

	case RedrawMsg:
		return m, nil

	case StoreChangedMsg:
		cmds := []tea.Cmd{WaitForChange(m.sub)}
		if msg.ItemChanged || msg.Kind == playback.ChangeImage {
			cmds = append(cmds, RedrawCmd())
		}
		return m, tea.Batch(cmds...)

	case StoreClosedMsg:
		return m, nil

	case ConfigChangedMsg:
		return m, tea.Batch(ReloadConfigCmd(m.configPath), WaitForConfig(m.watcher))

	case ConfigReloadedMsg:
		if msg.Err != nil {
			logger.Warn("reload config", "error", msg.Err)
			m.ErrorMsg = errmsg.Format(errmsg.OpConfigLoad, msg.Err)
			return m, nil
		}
		m.ErrorMsg = ""
		m.applyConfig(msg.Config)
		logger.Info("config reloaded", "path", msg.Config.Path)
		return m, RedrawCmd()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.Keys.Resolve(msg.String())
	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		m.Help.ShowAll = m.ShowHelp
	case keymap.ActionReloadConfig:
		return m, ReloadConfigCmd(m.configPath)

	case keymap.ActionPlayPause:
		m.Store.Update(func(s *playback.Snapshot) { s.IsPlaying = !s.IsPlaying })
	case keymap.ActionNextTrack:
		m.skip(true)
	case keymap.ActionPrevTrack:
		m.skip(false)
	case keymap.ActionSeekForward:
		m.seekBy(seekStep)
	case keymap.ActionSeekBack:
		m.seekBy(-seekStep)
	case keymap.ActionCycleRepeat:
		m.Store.Update(cycleRepeat)
	case keymap.ActionToggleShuffle:
		m.Store.Update(func(s *playback.Snapshot) { s.Shuffle = !s.Shuffle })
	case keymap.ActionToggleLike:
		m.toggleLike()
	case keymap.ActionVolumeUp:
		m.Store.Update(func(s *playback.Snapshot) { changeVolume(s, volumeStep) })
	case keymap.ActionVolumeDown:
		m.Store.Update(func(s *playback.Snapshot) { changeVolume(s, -volumeStep) })
	case keymap.ActionToggleMute:
		m.Store.Update(toggleMute)

	case keymap.ActionCycleProgressBar:
		cfg := *m.Config
		if cfg.Playback.ProgressBar == "line" {
			cfg.Playback.ProgressBar = "rectangle"
		} else {
			cfg.Playback.ProgressBar = "line"
		}
		m.applyConfig(&cfg)
	case keymap.ActionToggleCover:
		cfg := *m.Config
		cfg.CoverImage.Enabled = !cfg.CoverImage.Enabled
		m.applyConfig(&cfg)
		return m, RedrawCmd()
	case keymap.ActionTogglePosition:
		cfg := *m.Config
		if cfg.Layout.PlaybackWindowPosition == "bottom" {
			cfg.Layout.PlaybackWindowPosition = "top"
		} else {
			cfg.Layout.PlaybackWindowPosition = "bottom"
		}
		m.applyConfig(&cfg)
		return m, RedrawCmd()
	}
	return m, nil
}

// handleMouse seeks when the progress bar is clicked.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	r := m.Panel.ProgressRect
	if r.Empty() || !r.Contains(msg.X, msg.Y) {
		return m, nil
	}
	ratio := float64(msg.X-r.X) / float64(r.Width)
	m.Store.Update(func(s *playback.Snapshot) {
		s.Progress = time.Duration(ratio * float64(s.Duration()))
	})
	return m, nil
}

// advance moves playback forward by d, moving on to the next item at the
// end of the current one.
func (m Model) advance(d time.Duration) {
	var ended bool
	m.Store.Update(func(s *playback.Snapshot) {
		if !s.IsPlaying {
			return
		}
		s.Progress += d
		if s.Progress < s.Duration() {
			return
		}
		if s.Repeat == playback.RepeatTrack || s.FakeTrackRepeat {
			s.Progress = 0
			return
		}
		ended = true
	})
	if !ended {
		return
	}

	snap := m.Store.Snapshot()
	if snap == nil {
		return
	}
	if m.queue.next(snap.Repeat == playback.RepeatContext) {
		m.play(snap, m.queue.current())
		return
	}
	m.Store.Update(func(s *playback.Snapshot) {
		s.IsPlaying = false
		s.Progress = 0
	})
}

// skip moves to the next or previous item, keeping the playback settings.
func (m Model) skip(forward bool) {
	snap := m.Store.Snapshot()
	if snap == nil {
		return
	}
	if forward {
		if !m.queue.next(true) {
			return
		}
	} else {
		m.queue.prev()
	}
	m.play(snap, m.queue.current())
}

func (m Model) play(prev *playback.Snapshot, item playback.Item) {
	next := prev.Clone()
	next.Item = item
	next.Progress = 0
	next.IsPlaying = true
	if _, isEpisode := item.(*playback.Episode); !isEpisode && next.FakeTrackRepeat {
		next.FakeTrackRepeat = false
		next.Repeat = playback.RepeatTrack
	}
	m.Store.SetPlayback(next)
}

func (m Model) seekBy(d time.Duration) {
	m.Store.Update(func(s *playback.Snapshot) {
		s.Progress = min(max(s.Progress+d, 0), s.Duration())
	})
}

func (m Model) toggleLike() {
	snap := m.Store.Snapshot()
	if snap == nil {
		return
	}
	track, ok := snap.Item.(*playback.Track)
	if !ok {
		return
	}
	var liked bool
	m.Store.Read(func(v playback.View) { liked = v.IsLiked(track.URI) })
	m.Store.SetLiked(track.URI, !liked)
}

// cycleRepeat moves to the next repeat state. Episodes cannot repeat on
// their own, so track repeat is emulated on top of context repeat.
func cycleRepeat(s *playback.Snapshot) {
	current := s.Repeat
	if s.FakeTrackRepeat {
		current = playback.RepeatTrack
	}
	next := current.Next()

	s.FakeTrackRepeat = false
	s.Repeat = next
	if _, isEpisode := s.Item.(*playback.Episode); isEpisode && next == playback.RepeatTrack {
		s.Repeat = playback.RepeatContext
		s.FakeTrackRepeat = true
	}
}

// changeVolume adjusts the volume by delta, unmuting first.
func changeVolume(s *playback.Snapshot, delta int) {
	v := s.EffectiveVolume()
	s.MutedVolume = nil
	s.Volume = playback.IntPtr(min(max(v+delta, 0), 100))
}

func toggleMute(s *playback.Snapshot) {
	if s.Muted() {
		s.Volume = playback.IntPtr(*s.MutedVolume)
		s.MutedVolume = nil
		return
	}
	s.MutedVolume = playback.IntPtr(s.EffectiveVolume())
	s.Volume = playback.IntPtr(0)
}
