// Package window runs the game in a desktop or browser window with
// Ebitengine. Update is called once per display frame.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/space-flappy/internal/core"
	"github.com/vovakirdan/space-flappy/internal/games/flappy"
	"github.com/vovakirdan/space-flappy/internal/platform/device"
)

// Options controls the window.
type Options struct {
	Scale float64 // Window size relative to the field, default 1
	TPS   int     // Updates per second; 0 follows the display refresh rate
}

// Host implements ebiten.Game for a flappy game.
type Host struct {
	game     *flappy.Game
	canvas   *Canvas
	input    *Input
	detector *device.Detector
	logger   *log.Logger
	frame    core.InputFrame
	state    core.GameState
	outerW   int
}

// NewHost prepares a host and resets the game to its start overlay.
func NewHost(game *flappy.Game, rc core.RuntimeConfig, source *text.GoTextFaceSource, logger *log.Logger) *Host {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	detector := device.NewDetector(runtime.GOOS)
	rc.TouchPrimary = detector.TouchPrimary()
	game.Reset(rc)

	field := game.Config().Field
	return &Host{
		game:     game,
		canvas:   NewCanvas(field.Width, field.Height, source),
		input:    NewInput(int(field.Width), int(field.Height), detector),
		detector: detector,
		logger:   logger,
		frame:    core.NewInputFrame(),
		state:    game.State(),
	}
}

// Update polls input and advances the game by one tick.
func (h *Host) Update() error {
	if h.input.Poll(&h.frame, h.state.Running()) {
		h.touchChanged()
	}
	return h.step()
}

// step consumes the pending intents. Outside Running the game is only
// stepped when there is something to read.
func (h *Host) step() error {
	if h.frame.Has(core.ActionQuit) {
		h.logger.Debug("quit", "score", h.state.Score)
		return ebiten.Termination
	}
	if !h.state.Running() && h.frame.Empty() {
		return nil
	}

	result := h.game.Step(h.frame)
	h.frame.Clear()
	h.state = result.State

	if result.Started {
		h.logger.Info("session started")
	}
	if result.Ended {
		h.logger.Info("game over", "score", h.state.Score, "ticks", h.game.Ticks())
	}
	return nil
}

// Draw renders the current frame.
func (h *Host) Draw(screen *ebiten.Image) {
	h.canvas.Bind(screen)
	h.game.Render(h.canvas)
}

// Layout keeps the logical field size and feeds the outer width to the
// device detector.
func (h *Host) Layout(outsideWidth, _ int) (int, int) {
	if outsideWidth != h.outerW {
		h.outerW = outsideWidth
		h.logger.Debug("resize", "width", outsideWidth)
		if h.detector.Resize(outsideWidth) {
			h.touchChanged()
		}
	}
	field := h.game.Config().Field
	return int(field.Width), int(field.Height)
}

func (h *Host) touchChanged() {
	touch := h.detector.TouchPrimary()
	h.game.SetTouchPrimary(touch)
	h.logger.Debug("touch primary", "value", touch)
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(game *flappy.Game, rc core.RuntimeConfig, opts Options, logger *log.Logger) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("window: load font: %w", err)
	}

	host := NewHost(game, rc, source, logger)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	field := game.Config().Field
	ebiten.SetWindowSize(int(field.Width*scale), int(field.Height*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
