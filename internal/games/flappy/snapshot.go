package flappy

import "math"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Lifecycle Lifecycle
	Score     int
	ActorY    float64
	Velocity  float64
	Obstacles []Obstacle
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, g.obstacles.Len())
	copy(obstacles, g.obstacles.Obstacles())

	return Snapshot{
		Tick:      g.tick,
		Lifecycle: g.lifecycle,
		Score:     g.score,
		ActorY:    g.actor.Y,
		Velocity:  g.actor.Velocity,
		Obstacles: obstacles,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Lifecycle) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ActorY)
	h = h*31 + math.Float64bits(snap.Velocity)

	for _, o := range snap.Obstacles {
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + math.Float64bits(o.GapTop)
		if o.Scored {
			h = h*31 + 1
		}
	}
	return h
}
