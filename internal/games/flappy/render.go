package flappy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/space-flappy/internal/config"
	"github.com/vovakirdan/space-flappy/internal/core"
)

// Branch accents drawn on each obstacle, relative to its columns.
const (
	branchW = 15
	branchH = 5
)

// Star is a single background point.
type Star struct {
	X, Y, R float64
}

// NewStarfield scatters stars uniformly over a w×h area.
func NewStarfield(rng *rand.Rand, w, h float64, cfg config.StarfieldConfig) []Star {
	stars := make([]Star, cfg.Count)
	for i := range stars {
		stars[i] = Star{
			X: rng.Float64() * w,
			Y: rng.Float64() * h,
			R: cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius),
		}
	}
	return stars
}

// Renderer draws scenes. Apart from its starfield, which is fixed for the
// surface it was created for, it holds no state.
type Renderer struct {
	stars []Star
}

// NewRenderer creates a renderer with a freshly randomized starfield.
func NewRenderer(cfg config.GameConfig, rng *rand.Rand) *Renderer {
	return &Renderer{
		stars: NewStarfield(rng, cfg.Field.Width, cfg.Field.Height, cfg.Starfield),
	}
}

// Stars returns the starfield.
func (r *Renderer) Stars() []Star {
	return r.stars
}

// Draw renders background, obstacles and actor, then the terminal frame
// overlay if the game is over.
func (r *Renderer) Draw(dst core.Surface, s Scene) {
	r.drawBackground(dst, s)
	for _, o := range s.Obstacles {
		drawObstacle(dst, s, o)
	}
	drawActor(dst, s)

	if s.Lifecycle == Over {
		drawTerminalFrame(dst, s)
	}
}

func (r *Renderer) drawBackground(dst core.Surface, s Scene) {
	dst.FillRect(0, 0, s.Width, s.Height, core.ColorSpace)
	for _, st := range r.stars {
		dst.FillCircle(st.X, st.Y, st.R, core.ColorStar)
	}
}

// drawObstacle draws the top and bottom columns around the gap plus
// branch-like accents.
func drawObstacle(dst core.Surface, s Scene, o Obstacle) {
	w := s.ObstacleWidth
	bottom := o.GapBottom(s.GapHeight)

	dst.FillRect(o.X, bottom, w, s.Height-bottom, core.ColorObstacle)
	dst.FillRect(o.X, 0, w, o.GapTop, core.ColorObstacle)

	dst.FillRect(o.X-branchW, o.GapTop-20, branchW, branchH, core.ColorBranch)
	dst.FillRect(o.X+w, o.GapTop-40, branchW, branchH, core.ColorBranch)
	dst.FillRect(o.X-branchW, bottom+30, branchW, branchH, core.ColorBranch)
	dst.FillRect(o.X+w, bottom+50, branchW, branchH, core.ColorBranch)
}

// drawActor draws the chick: body, outline, then beak and eye turned by
// the velocity tilt.
func drawActor(dst core.Surface, s Scene) {
	x, y := s.ActorX, s.Actor.Y
	r := s.ActorSize / 2
	tilt := s.Actor.Tilt()

	dst.FillCircle(x, y, r, core.ColorActor)
	dst.StrokeCircle(x, y, r, 2, core.ColorActorEdge)

	dst.FillCircle(x+math.Cos(tilt)*r, y+math.Sin(tilt)*r, s.ActorSize*0.15, core.ColorBeak)
	eye := tilt - 0.6
	dst.FillCircle(x+math.Cos(eye)*r*0.5, y+math.Sin(eye)*r*0.5, s.ActorSize*0.08, core.ColorEye)
}

// drawTerminalFrame overlays the final score and restart hint.
func drawTerminalFrame(dst core.Surface, s Scene) {
	cx, cy := s.Width/2, s.Height/2

	dst.FillRect(0, 0, s.Width, s.Height, core.ColorShade)
	dst.DrawText(cx, cy-30, GameOverTitle, 30, core.ColorText)
	dst.DrawText(cx, cy+10, fmt.Sprintf("Score: %d", s.Score), 30, core.ColorText)
	dst.DrawText(cx, cy+50, RestartHint(s.TouchPrimary), 20, core.ColorText)
}
