// Package flappy implements Space Flappy, a Flappy Bird-style game.
// The player keeps a chick airborne through gaps in scrolling obstacles.
//
// Game owns all mutable simulation state. Hosts call Step once per display
// refresh with the intents recorded since the previous call, then Render.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/space-flappy/internal/config"
	"github.com/vovakirdan/space-flappy/internal/core"
)

// Lifecycle is the session state machine: NotStarted -> Running -> Over.
type Lifecycle int

const (
	NotStarted Lifecycle = iota
	Running
	Over
)

// String returns the lifecycle name.
func (l Lifecycle) String() string {
	switch l {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Game implements the Space Flappy simulation.
type Game struct {
	cfg       config.GameConfig
	runtime   core.RuntimeConfig
	lifecycle Lifecycle
	actor     Actor
	obstacles *ObstacleField
	score     int
	tick      uint64 // Ticks since the current session started

	// Render state, tied to the surface it was built for.
	surface  core.Surface
	renderer *Renderer
	surfaces int64
}

// New creates a game with the given tunables. The config is assumed valid.
func New(cfg config.GameConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "spaceflappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Config returns the tunables the game was built with.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Reset prepares a fresh, not yet started session with the given runtime
// values. The actor is parked at the vertical center as a preview.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.lifecycle = NotStarted
	g.score = 0
	g.tick = 0
	g.actor = Actor{Y: g.cfg.Field.Height / 2}

	if g.obstacles == nil {
		g.obstacles = NewObstacleField(rc.Seed, g.cfg)
	} else {
		g.obstacles.Reseed(rc.Seed)
	}
	g.renderer = nil
	g.surface = nil
}

// SetTouchPrimary updates the device signal used for on-screen copy.
func (g *Game) SetTouchPrimary(touch bool) {
	g.runtime.TouchPrimary = touch
}

// Start moves the game into Running from any state, resetting the actor,
// obstacles and score.
func (g *Game) Start() {
	g.lifecycle = Running
	g.actor = Actor{Y: g.cfg.Field.Height / 2}
	g.obstacles.Reset()
	g.score = 0
	g.tick = 0
}

// Jump applies the upward impulse. It only has an effect while Running.
func (g *Game) Jump() bool {
	if g.lifecycle != Running {
		return false
	}
	g.actor.Velocity = g.cfg.Physics.JumpImpulse
	return true
}

// Step consumes pending intents and advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.lifecycle != Running {
		if in.Has(core.ActionStart) || (g.cfg.Controls.FlapStarts && in.Has(core.ActionJump)) {
			g.Start()
			return core.StepResult{State: g.State(), Started: true}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.Jump()
	}

	scored, ended := g.advance()
	return core.StepResult{State: g.State(), Ended: ended, Scored: scored}
}

// advance runs one physics tick. Velocity is integrated before position.
func (g *Game) advance() (scored int, ended bool) {
	g.tick++
	g.actor.Integrate(g.cfg.Physics.Gravity)

	half := g.cfg.Actor.HitboxHalf()
	if g.actor.Y-half <= 0 || g.actor.Y+half >= g.cfg.Field.Height {
		g.lifecycle = Over
		return 0, true
	}

	g.obstacles.MaybeSpawn()

	collided, passed := g.obstacles.Advance(g.hitbox(), g.cfg.Actor.X)
	g.score += passed
	if collided {
		g.lifecycle = Over
		return passed, true
	}
	return passed, false
}

// hitbox returns the actor's collision box.
func (g *Game) hitbox() core.Box {
	return g.actor.Hitbox(g.cfg.Actor.X, g.cfg.Actor.HitboxHalf())
}

// Lifecycle returns the current session state.
func (g *Game) Lifecycle() Lifecycle {
	return g.lifecycle
}

// Ticks returns the number of physics ticks in the current session.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// State returns the view observed by the presentation shell.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Started:  g.lifecycle != NotStarted,
		GameOver: g.lifecycle == Over,
	}
}

// Render draws the scene and the shell overlays onto dst. A nil surface is
// a no-op.
func (g *Game) Render(dst core.Surface) {
	if dst == nil {
		return
	}
	if g.renderer == nil || g.surface != dst {
		// New surface: regenerate the starfield for it.
		g.surfaces++
		rng := rand.New(rand.NewSource(g.runtime.Seed + g.surfaces)) //#nosec G404 -- cosmetic
		g.renderer = NewRenderer(g.cfg, rng)
		g.surface = dst
	}

	scene := g.Scene()
	g.renderer.Draw(dst, scene)
	DrawShell(dst, scene)
}
