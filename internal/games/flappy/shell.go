package flappy

import (
	"fmt"

	"github.com/vovakirdan/space-flappy/internal/core"
)

// Copy shown by the presentation shell and the terminal frame.
const (
	Title         = "Space Flappy Bird"
	Tagline       = "Help the chick navigate through space!"
	GameOverTitle = "Game Over!"
	PlayAgain     = "Play Again"
)

// Start button geometry, relative to the field center.
const (
	buttonW = 220
	buttonH = 44
)

// RestartHint returns the restart prompt for the device type.
func RestartHint(touch bool) string {
	if touch {
		return "Tap to Restart"
	}
	return "Press Space to Restart"
}

// FlapHint returns the in-game control hint for the device type.
func FlapHint(touch bool) string {
	if touch {
		return "Tap on the game to flap"
	}
	return "Press SPACE or click to flap"
}

// StartHint returns the label of the start button.
func StartHint(touch, flapStarts bool) string {
	switch {
	case touch:
		return "Tap to Start"
	case flapStarts:
		return "Press Space to Start"
	default:
		return "Press Enter or Click to Start"
	}
}

// DrawShell draws the overlays around the simulation: the start screen,
// the running score with its hint, and the play-again button.
func DrawShell(dst core.Surface, s Scene) {
	cx, cy := s.Width/2, s.Height/2

	switch s.Lifecycle {
	case NotStarted:
		dst.FillRect(0, 0, s.Width, s.Height, core.ColorShade)
		dst.DrawText(cx, cy-50, Title, 30, core.ColorText)
		dst.DrawText(cx, cy-10, Tagline, 18, core.ColorText)
		drawButton(dst, cx, cy+42, StartHint(s.TouchPrimary, s.FlapStarts))

	case Running:
		dst.DrawText(cx, 24, fmt.Sprintf("Score: %d", s.Score), 22, core.ColorText)
		dst.DrawText(cx, s.Height-16, FlapHint(s.TouchPrimary), 14, core.ColorHint)

	case Over:
		drawButton(dst, cx, cy+102, PlayAgain)
	}
}

func drawButton(dst core.Surface, cx, cy float64, label string) {
	dst.FillRect(cx-buttonW/2, cy-buttonH/2, buttonW, buttonH, core.ColorButton)
	dst.DrawText(cx, cy, label, 20, core.ColorButtonText)
}
