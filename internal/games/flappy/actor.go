package flappy

import "github.com/vovakirdan/space-flappy/internal/core"

// Actor is the flying sprite. Its horizontal lane is fixed by config.
type Actor struct {
	Y        float64 // Vertical center, pixels
	Velocity float64 // Pixels per tick, positive is down
}

// Integrate applies one tick of gravity: velocity first, then position.
func (a *Actor) Integrate(gravity float64) {
	a.Velocity += gravity
	a.Y += a.Velocity
}

// Hitbox returns the square collision box centered on the actor.
func (a Actor) Hitbox(x, half float64) core.Box {
	return core.BoxAround(x, a.Y, half)
}

// Tilt returns the sprite rotation in radians, nose up when rising.
func (a Actor) Tilt() float64 {
	return core.ClampF(a.Velocity*0.05, -0.5, 0.5)
}
