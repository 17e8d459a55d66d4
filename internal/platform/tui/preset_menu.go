package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossroads/internal/config"
	"github.com/vovakirdan/tui-crossroads/internal/core"
)

// PresetModel lets users choose a traffic density before a scene starts.
type PresetModel struct {
	presets  []config.Preset
	cursor   int
	width    int
	keys     MenuKeyMap
	selected config.Preset
	choosing bool
	quitting bool
	back     bool
}

// NewPresetModel creates a preset picker with the cursor on "normal".
func NewPresetModel(width int) PresetModel {
	m := PresetModel{
		presets:  config.Presets,
		width:    width,
		keys:     DefaultMenuKeyMap(),
		choosing: true,
	}
	for i, p := range m.presets {
		if p == config.PresetNormal {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m PresetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case core.ActionConfirm:
		m.choosing = false
		m.selected = m.presets[m.cursor]
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m PresetModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		titleStyle.Render("T R A F F I C"),
		"",
		itemStyle.Render("Select density:"),
		"",
	}
	for i, p := range m.presets {
		line := fmt.Sprintf("  %-7s %s", p, describePreset(p))
		style := itemStyle
		if i == m.cursor {
			line = fmt.Sprintf("> %-7s %s", p, describePreset(p))
			style = selectedStyle
		}
		lines = append(lines, style.Render(line))
	}
	lines = append(lines, "", statusStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"))

	block := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block) + "\n"
}

// describePreset summarizes the spawn policy a preset gives the default config.
func describePreset(p config.Preset) string {
	cfg := config.DefaultTrafficConfig()
	config.ApplyPreset(&cfg, p)
	if cfg.Spawn.Probability == 0 {
		return "no new cars"
	}
	return fmt.Sprintf("up to %d cars, %.1f%% spawn chance per tick", cfg.Spawn.MaxVehicles, cfg.Spawn.Probability*100)
}

// Selected returns the chosen preset, or nil if still choosing.
func (m PresetModel) Selected() *config.Preset {
	if m.choosing {
		return nil
	}
	p := m.selected
	return &p
}

// IsQuitting returns true if user wants to quit.
func (m PresetModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PresetModel) WantsBack() bool {
	return m.back
}

// RunPresetSelector shows the preset picker. It returns nil when the user
// leaves without choosing.
func RunPresetSelector(cfg core.RuntimeConfig) (*config.Preset, error) {
	p := tea.NewProgram(
		NewPresetModel(cfg.ScreenW),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(PresetModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
