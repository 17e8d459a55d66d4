package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossroads/internal/config"
	"github.com/vovakirdan/tui-crossroads/internal/core"
)

func updateMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(MenuModel)
		require.True(t, ok)
	}
	return m, cmd
}

func TestMenuListsRegisteredScenes(t *testing.T) {
	m := NewMenuModel(testConfig())

	ids := make([]string, 0, len(m.items))
	for _, item := range m.items {
		ids = append(ids, item.SceneID)
	}
	assert.Equal(t, []string{"tui_stub_a", "tui_stub_b"}, ids)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "C R O S S R O A D S")
	assert.Contains(t, view, "> Stub tui_stub_a")
	assert.Contains(t, view, "  Stub tui_stub_b")
}

func TestMenuNavigationClamps(t *testing.T) {
	m := NewMenuModel(testConfig())

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m, _ = updateMenu(t, m, runeKey('j'), runeKey('j'), runeKey('j'))
	assert.Equal(t, 1, m.cursor)

	m, _ = updateMenu(t, m, runeKey('k'))
	assert.Equal(t, 0, m.cursor)
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testConfig())
	assert.Nil(t, m.Selected())

	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Selected())
	assert.Equal(t, "tui_stub_b", m.Selected().SceneID)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.False(t, m.IsQuitting())
}

func TestMenuQuitAndResize(t *testing.T) {
	m := NewMenuModel(testConfig())

	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 70, Height: 30})
	assert.Equal(t, 70, m.Config().ScreenW)
	assert.Equal(t, 30, m.Config().ScreenH)

	m, _ = updateMenu(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestSessionMenuSceneMenu(t *testing.T) {
	s := NewSessionModel(testConfig(), "", log.New(io.Discard))
	assert.NotEmpty(t, s.SessionID())
	assert.False(t, s.InScene())

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	require.True(t, s.InScene())
	assert.NotNil(t, cmd, "scene starts its tick loop")
	assert.Contains(t, ansi.Strip(s.View()), "stub frame")

	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	assert.Equal(t, uint64(1), s.scene.State().Tick)

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEscape})
	s = next.(SessionModel)
	assert.False(t, s.InScene())
	assert.Contains(t, ansi.Strip(s.View()), "Pick a scene")

	next, cmd = s.Update(runeKey('q'))
	s = next.(SessionModel)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, s.View())
}

func TestSessionKeepsSizeAcrossScenes(t *testing.T) {
	s := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, "fixed-id", log.New(io.Discard))
	assert.Equal(t, "fixed-id", s.SessionID())

	next, _ := s.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)

	require.True(t, s.InScene())
	cfg := s.scene.Config()
	assert.Equal(t, 120, cfg.ScreenW)
	assert.Equal(t, 50, cfg.ScreenH)
	assert.Equal(t, 30, cfg.TickRate)
	assert.NotZero(t, cfg.Seed)
}

func TestSessionKeepsRequestedSeed(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 42
	s := NewSessionModel(cfg, "", log.New(io.Discard))

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	require.True(t, s.InScene())
	assert.Equal(t, int64(42), s.scene.Config().Seed)

	// Back to the menu and into another scene: still the same seed
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEscape})
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	require.True(t, s.InScene())
	assert.Equal(t, int64(42), s.scene.Config().Seed)
}

func updatePreset(t *testing.T, m PresetModel, msgs ...tea.Msg) PresetModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(PresetModel)
		require.True(t, ok)
	}
	return m
}

func TestPresetPickerStartsOnNormal(t *testing.T) {
	m := NewPresetModel(80)
	assert.Nil(t, m.Selected())

	m = updatePreset(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Selected())
	assert.Equal(t, config.PresetNormal, *m.Selected())
}

func TestPresetPickerNavigation(t *testing.T) {
	m := NewPresetModel(80)
	m = updatePreset(t, m, runeKey('j'), runeKey('j'), runeKey('j'), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Selected())
	assert.Equal(t, config.PresetFixed, *m.Selected())

	m = NewPresetModel(80)
	m = updatePreset(t, m, runeKey('k'), runeKey('k'), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, config.PresetQuiet, *m.Selected())
}

func TestPresetPickerBackAndQuit(t *testing.T) {
	m := updatePreset(t, NewPresetModel(80), tea.KeyMsg{Type: tea.KeyEscape})
	assert.True(t, m.WantsBack())
	assert.Nil(t, m.Selected())

	m = updatePreset(t, NewPresetModel(80), runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestPresetDescriptions(t *testing.T) {
	view := ansi.Strip(NewPresetModel(100).View())
	assert.Contains(t, view, "> normal  up to 12 cars, 1.0% spawn chance per tick")
	assert.Contains(t, view, "rush    up to 24 cars, 4.0% spawn chance per tick")
	assert.Contains(t, view, "fixed   no new cars")
}
