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
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/scene"
)

// helpHeight is the number of rows kept below the playfield for key help.
const helpHeight = 1

// Options configures the terminal front end.
type Options struct {
	Runtime    core.RuntimeConfig
	Field      core.Box      // world area mapped onto the terminal
	HoldWindow time.Duration // how long a key counts as held after its last repeat
	Clock      core.Clock
	Logger     *log.Logger

	// ScreenshotDir receives ctrl+s dumps. Empty means ~/.dimensions/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model driving the scene manager.
type Model struct {
	manager *scene.Manager
	screen  *core.Screen
	canvas  *core.Canvas
	opts    Options

	keys  KeyMap
	help  help.Model
	holds *holdTracker
	input core.InputFrame

	pointer    core.Vec2
	hasPointer bool
	clicked    bool

	quitting bool
}

// NewModel creates a new Bubble Tea model for the given scene manager.
func NewModel(manager *scene.Manager, opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}

	screen := core.NewScreen(opts.Runtime.ScreenW, playfieldRows(opts.Runtime.ScreenH))
	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		manager: manager,
		screen:  screen,
		canvas:  core.NewCanvas(screen, opts.Field),
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    h,
		holds:   newHoldTracker(opts.HoldWindow),
		input:   core.NewInputFrame(),
	}
}

func playfieldRows(height int) int {
	return max(height-helpHeight, 1)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.opts.Logger.Debug("frame loop started", "fps", m.opts.Runtime.TickRate, "scene", m.manager.Mode())
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.holds.release()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the actions a key maps to for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	now := m.opts.Clock.Now()
	for _, a := range m.keys.Actions(msg) {
		m.input.Set(a)
		m.holds.press(a, now)
	}
	return m, nil
}

// handleMouse tracks the pointer in world coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y >= m.screen.Height() {
		return m, nil
	}
	m.pointer = m.canvas.ToWorld(msg.X, msg.Y)
	m.hasPointer = true
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.clicked = true
	}
	return m, nil
}

// handleResize refits the playfield to the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.canvas = core.NewCanvas(m.screen, m.opts.Field)
	m.help.Width = msg.Width
	m.opts.Logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one frame of the scene manager.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.holds.apply(&m.input, m.opts.Clock.Now())
	if m.hasPointer {
		m.input.Mouse = &core.Mouse{Pos: m.pointer, Clicked: m.clicked}
	}

	m.manager.Update(m.input)

	m.input.Clear()
	m.clicked = false

	if m.manager.Exit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// frame draws the current scene into the screen buffer.
func (m Model) frame() {
	m.screen.Clear()
	m.manager.Draw(m.canvas)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.frame()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".dimensions", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.manager.Mode(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.frame()
	m.help.ShowAll = m.manager.Mode() == scene.Help
	footer := m.help.View(m.keys)

	// the full help overlaps the bottom of the playfield
	rows := strings.Split(RenderScreen(m.screen), "\n")
	keep := max(len(rows)+helpHeight-lipgloss.Height(footer), 0)
	return strings.Join(rows[:keep], "\n") + "\n" + footer
}

// Run starts the Bubble Tea program for the given scene manager.
func Run(manager *scene.Manager, opts Options) error {
	p := tea.NewProgram(
		NewModel(manager, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
