package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-flappy/internal/core"
	"github.com/vovakirdan/space-flappy/internal/games/flappy"
)

// helpRows is the number of terminal rows reserved below the play surface.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	raster     *core.Raster
	styles     styleCache
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	ticking    bool // Whether a tick is in flight
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game and terminal size.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, width, height int, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	screen := core.NewScreen(width, max(height-helpRows, 1))
	field := game.Config().Field
	h := help.New()
	h.Width = width

	return Model{
		game:       game,
		screen:     screen,
		raster:     core.NewRaster(screen, field.Width, field.Height),
		styles:     styleCache{},
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init shows the start overlay. Ticking begins with the first intent.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.record(MapMouse(msg, m.screen.Height(), m.gameState.Running()))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.logger.Debug("quit", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m.record(action)
}

// record stores an intent for the next tick, arming the tick loop if it is
// idle so a start or restart is picked up.
func (m Model) record(action core.Action) (tea.Model, tea.Cmd) {
	if action == core.ActionNone {
		return m, nil
	}
	m.inputFrame.Set(action)
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// handleResize processes window resize events. The play surface is
// rebuilt, which also regenerates the starfield.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := max(msg.Height-helpRows, 1)
	if m.screen.Resize(msg.Width, rows) {
		field := m.game.Config().Field
		m.raster = core.NewRaster(m.screen, field.Width, field.Height)
		m.logger.Debug("resize", "cols", msg.Width, "rows", rows)
	}
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = false

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Started {
		m.logger.Info("session started", "seed", m.config.Seed)
	}
	if result.Scored > 0 {
		m.logger.Debug("scored", "score", m.gameState.Score, "tick", m.game.Ticks())
	}
	if result.Ended {
		m.logger.Info("game over", "score", m.gameState.Score, "ticks", m.game.Ticks())
	}

	// Only a running session keeps the loop alive
	if !m.gameState.Running() {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.raster)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Error("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".spaceflappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.raster)

	return RenderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game *flappy.Game, cfg core.RuntimeConfig, width, height int, logger *log.Logger) error {
	model := NewModel(game, cfg, width, height, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	_, err := p.Run()
	return err
}
