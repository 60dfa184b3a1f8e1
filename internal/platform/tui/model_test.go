package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-flappy/internal/config"
	"github.com/vovakirdan/space-flappy/internal/core"
	"github.com/vovakirdan/space-flappy/internal/games/flappy"
)

func newTestModel(t *testing.T) (Model, *flappy.Game) {
	t.Helper()
	game := flappy.New(config.DefaultConfig())
	m := NewModel(game, core.RuntimeConfig{TickRate: 60, Seed: 7}, 80, 25, nil)
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestModelIdleUntilIntent(t *testing.T) {
	m, game := newTestModel(t)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should not start ticking")
	}
	if game.Lifecycle() != flappy.NotStarted {
		t.Errorf("lifecycle = %v, want NotStarted", game.Lifecycle())
	}
	if !strings.Contains(m.View(), "flap") {
		t.Error("View() should include the help line")
	}
}

func TestModelStartAndRun(t *testing.T) {
	m, game := newTestModel(t)

	m, cmd := update(t, m, spaceKey)
	if cmd == nil {
		t.Fatal("first intent should arm the tick loop")
	}
	if game.Lifecycle() != flappy.NotStarted {
		t.Fatal("intent should be consumed on the next tick, not immediately")
	}

	// A second intent while a tick is in flight does not double the loop
	m, cmd = update(t, m, spaceKey)
	if cmd != nil {
		t.Error("intent while ticking should not schedule another tick")
	}

	m, cmd = update(t, m, TickMsg{})
	if game.Lifecycle() != flappy.Running {
		t.Fatalf("lifecycle = %v, want Running", game.Lifecycle())
	}
	if cmd == nil {
		t.Fatal("running session should keep ticking")
	}
	if !m.gameState.Running() {
		t.Error("model state should be running")
	}
}

func TestModelStopsTickingWhenOver(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = update(t, m, enterKey)
	m, cmd := update(t, m, TickMsg{})

	for i := 0; cmd != nil && i < 1000; i++ {
		m, cmd = update(t, m, TickMsg{})
	}
	if cmd != nil {
		t.Fatal("tick loop did not stop")
	}
	if game.Lifecycle() != flappy.Over {
		t.Fatalf("lifecycle = %v, want Over", game.Lifecycle())
	}
	if game.Ticks() != 31 {
		t.Errorf("free fall ended after %d ticks, want 31", game.Ticks())
	}

	// Restart re-arms the loop
	m, cmd = update(t, m, enterKey)
	if cmd == nil {
		t.Fatal("restart should arm the tick loop")
	}
	update(t, m, TickMsg{})
	if game.Lifecycle() != flappy.Running {
		t.Errorf("lifecycle = %v, want Running after restart", game.Lifecycle())
	}
}

func TestModelMouseFlaps(t *testing.T) {
	m, game := newTestModel(t)

	click := tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, cmd := update(t, m, click)
	if cmd == nil {
		t.Fatal("click should arm the tick loop")
	}
	update(t, m, TickMsg{})
	if game.Lifecycle() != flappy.Running {
		t.Errorf("lifecycle = %v, want Running", game.Lifecycle())
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.screen.Width() != 40 || m.screen.Height() != 11 {
		t.Errorf("screen = %dx%d, want 40x11", m.screen.Width(), m.screen.Height())
	}
	if w, h := m.raster.Size(); w != 800 || h != 500 {
		t.Errorf("raster logical size = %vx%v, want 800x500", w, h)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	s := core.NewScreen(4, 1)
	for x := range 4 {
		s.SetCell(x, 0, core.Cell{Rune: 'a', FG: core.ColorText, BG: core.ColorSpace})
	}
	out := RenderScreen(s, styleCache{})
	if !strings.Contains(out, "aaaa") {
		t.Errorf("RenderScreen() = %q, want a single run of 4 cells", out)
	}
}

func TestModelClickStartsWithoutFlapStart(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Controls.FlapStarts = false
	game := flappy.New(cfg)
	m := NewModel(game, core.RuntimeConfig{TickRate: 60, Seed: 7}, 80, 25, nil)

	// Space alone does not start the game
	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, TickMsg{})
	if game.Lifecycle() != flappy.NotStarted {
		t.Fatalf("lifecycle after space = %v, want NotStarted", game.Lifecycle())
	}

	click := tea.MouseMsg{X: 40, Y: 13, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, cmd := update(t, m, click)
	if cmd == nil {
		t.Fatal("click should arm the tick loop")
	}
	m, cmd = update(t, m, TickMsg{})
	if game.Lifecycle() != flappy.Running {
		t.Fatalf("lifecycle after click = %v, want Running", game.Lifecycle())
	}

	for i := 0; cmd != nil && i < 1000; i++ {
		m, cmd = update(t, m, TickMsg{})
	}
	if game.Lifecycle() != flappy.Over {
		t.Fatalf("lifecycle = %v, want Over", game.Lifecycle())
	}

	// Click on the play-again button restarts
	m, _ = update(t, m, click)
	update(t, m, TickMsg{})
	if game.Lifecycle() != flappy.Running {
		t.Errorf("lifecycle after second click = %v, want Running", game.Lifecycle())
	}
}
