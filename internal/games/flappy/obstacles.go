package flappy

import (
	"math/rand"

	"github.com/vovakirdan/space-flappy/internal/config"
	"github.com/vovakirdan/space-flappy/internal/core"
)

// Obstacle is a pair of columns with a gap for the actor to pass through.
type Obstacle struct {
	X      float64 // Left edge
	GapTop float64 // Y where the gap starts
	Scored bool    // Whether this obstacle already counted toward the score
}

// Right returns the trailing (right) edge.
func (o Obstacle) Right(width float64) float64 {
	return o.X + width
}

// GapBottom returns the Y where the gap ends.
func (o Obstacle) GapBottom(gapHeight float64) float64 {
	return o.GapTop + gapHeight
}

// Collides reports whether the hitbox overlaps the obstacle horizontally
// and sticks out of the gap vertically.
func (o Obstacle) Collides(hb core.Box, width, gapHeight float64) bool {
	if !hb.OverlapsX(o.X, o.Right(width)) {
		return false
	}
	return hb.MinY < o.GapTop || hb.MaxY > o.GapBottom(gapHeight)
}

// ObstacleField handles spawning, scrolling and removal of obstacles.
// Obstacles are kept in creation order, oldest (left-most) first.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	field     config.FieldConfig
	cfg       config.ObstacleConfig
	speed     float64
}

// NewObstacleField creates an empty field with the given RNG seed.
func NewObstacleField(seed int64, cfg config.GameConfig) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay, not crypto
		field:     cfg.Field,
		cfg:       cfg.Obstacles,
		speed:     cfg.Physics.ScrollSpeed,
	}
}

// Reset clears all obstacles. The RNG keeps its position so restarts
// produce a fresh layout.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
}

// Reseed clears all obstacles and restarts the RNG.
func (f *ObstacleField) Reseed(seed int64) {
	f.Reset()
	f.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay, not crypto
}

// MaybeSpawn appends a new obstacle at the right edge when the field is
// empty or the newest obstacle has scrolled past the spawn spacing.
func (f *ObstacleField) MaybeSpawn() bool {
	if n := len(f.obstacles); n > 0 && f.obstacles[n-1].X >= f.field.Width-f.cfg.SpawnSpacing {
		return false
	}
	f.obstacles = append(f.obstacles, Obstacle{
		X:      f.field.Width,
		GapTop: f.randomGapTop(),
	})
	return true
}

// randomGapTop draws uniformly from [min_gap_top, height-gap-bottom_margin).
func (f *ObstacleField) randomGapTop() float64 {
	lo := f.cfg.MinGapTop
	hi := f.field.Height - f.cfg.GapHeight - f.cfg.BottomMargin
	if hi <= lo {
		return lo
	}
	return lo + f.rng.Float64()*(hi-lo)
}

// Advance scrolls every obstacle, drops the ones that left the field, and
// tests each remaining one against the hitbox, oldest first.
// It stops at the first collision; obstacles after it are kept untouched.
// passed counts obstacles whose trailing edge cleared laneX for the first time.
func (f *ObstacleField) Advance(hb core.Box, laneX float64) (collided bool, passed int) {
	width := f.cfg.Width
	kept := f.obstacles[:0]

	for i := 0; i < len(f.obstacles); i++ {
		o := f.obstacles[i]
		o.X -= f.speed

		if o.Right(width) < 0 {
			continue
		}

		if o.Collides(hb, width, f.cfg.GapHeight) {
			kept = append(kept, o)
			kept = append(kept, f.obstacles[i+1:]...)
			f.obstacles = kept
			return true, passed
		}

		if !o.Scored && o.Right(width) < laneX {
			o.Scored = true
			passed++
		}
		kept = append(kept, o)
	}

	f.obstacles = kept
	return false, passed
}

// Obstacles returns the current obstacles, oldest first.
// The slice is owned by the field and must not be modified.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of active obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
