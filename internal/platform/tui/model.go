package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossroads/internal/core"
	"github.com/vovakirdan/tui-crossroads/internal/registry"
)

// Layout constants
const (
	footerHeight   = 1  // Help line below the scene
	inspectorWidth = 42 // Width of the vehicle table panel including border
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// Model is the Bubble Tea model that runs one scene at a fixed tick rate.
type Model struct {
	scene      registry.Scene
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	state      core.SceneState
	keys       SceneKeyMap
	help       help.Model
	inspector  table.Model
	logger     *log.Logger
	shotDir    string // Screenshot directory
	status     string // Transient message shown in the footer
	allowBack  bool   // Whether esc/b returns to a menu
	quitting   bool
	backToMenu bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for platform events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithBackToMenu lets esc/b end the model with BackToMenu set.
func WithBackToMenu() ModelOption {
	return func(m *Model) {
		m.allowBack = true
	}
}

// WithScreenshotDir overrides where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// NewModel creates a new Bubble Tea model for the given scene.
// The scene is reset immediately so the first frame has something to draw.
func NewModel(scene registry.Scene, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		scene:      scene,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultSceneKeyMap(),
		help:       help.New(),
		logger:     log.New(io.Discard),
		shotDir:    defaultScreenshotDir(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.inspector = newInspectorTable(scene)
	m.screen = core.NewScreen(1, 1)
	m.layout()

	scene.Reset(m.config)
	m.state = scene.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.status = "saved " + path
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.allowBack {
			m.backToMenu = true
			return m, tea.Quit
		}

	case core.ActionRestart:
		m.config.Seed = time.Now().UnixNano()
		m.scene.Reset(m.config)
		m.state = m.scene.State()
		m.inputFrame.Clear()
		m.status = fmt.Sprintf("restarted with seed %d", m.config.Seed)
		m.logger.Info("scene restarted", "scene", m.scene.ID(), "seed", m.config.Seed)

	case core.ActionNone:

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one scene step with the actions gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	before := m.state
	result := m.scene.Step(m.inputFrame)
	m.state = result.State
	m.inputFrame.Clear()

	m.help.ShowAll = m.state.HelpOpen
	if m.state.Inspect != before.Inspect || m.state.HelpOpen != before.HelpOpen {
		m.layout()
	}
	if m.state.Inspect {
		m.refreshInspector()
	}

	return m, tickCmd(m.config.TickRate)
}

// layout sizes the scene buffer and the inspector to the terminal.
func (m *Model) layout() {
	w := m.config.ScreenW
	if m.state.Inspect {
		w -= inspectorWidth
	}
	h := m.config.ScreenH - footerHeight
	if m.help.ShowAll {
		h -= 2
	}
	m.screen.Resize(core.Max(w, 1), core.Max(h, 1))
	m.help.Width = m.config.ScreenW
	m.inspector.SetHeight(core.Max(h-4, 1))
}

// refreshInspector reloads the vehicle table from the scene.
func (m *Model) refreshInspector() {
	insp, ok := m.scene.(registry.Inspector)
	if !ok {
		return
	}
	rows := make([]table.Row, 0)
	for _, r := range insp.Rows() {
		rows = append(rows, table.Row(r))
	}
	m.inspector.SetRows(rows)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.scene.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.scene.ID(), timestamp))
	lines := make([]string, m.screen.Height())
	for y := range lines {
		lines[y] = strings.TrimRight(m.screen.Row(y), " ")
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the scene, the optional inspector and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Render(m.screen)
	body := RenderScreen(m.screen)

	if m.state.Inspect {
		panel := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf(" Vehicles (%d)", m.state.Active),
			m.inspector.View(),
		))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "  " + statusStyle.Render(m.status)
	}
	return body + "\n" + footer
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last scene state seen by the model.
func (m Model) State() core.SceneState {
	return m.state
}

// Config returns the current runtime config, including the active seed.
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// Run starts the Bubble Tea program for scene and blocks until it exits.
func Run(scene registry.Scene, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(scene, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// newInspectorTable builds the vehicle table for scenes that implement
// registry.Inspector. Other scenes get an empty table.
func newInspectorTable(scene registry.Scene) table.Model {
	var columns []table.Column
	if insp, ok := scene.(registry.Inspector); ok {
		names := insp.Columns()
		width := (inspectorWidth - 4) / core.Max(len(names), 1)
		for _, name := range names {
			columns = append(columns, table.Column{Title: name, Width: width})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

// defaultScreenshotDir returns ~/.crossroads/screenshots, or a relative
// directory when the home directory is unknown.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".crossroads", "screenshots")
	}
	return filepath.Join(home, ".crossroads", "screenshots")
}
