package flappy

// Scene is an immutable view of everything the renderer and the shell draw.
type Scene struct {
	Width, Height float64
	ActorX        float64
	Actor         Actor
	ActorSize     float64
	Obstacles     []Obstacle
	ObstacleWidth float64
	GapHeight     float64
	Score         int
	Lifecycle     Lifecycle
	TouchPrimary  bool
	FlapStarts    bool
}

// Scene captures the current state for drawing.
func (g *Game) Scene() Scene {
	obstacles := make([]Obstacle, g.obstacles.Len())
	copy(obstacles, g.obstacles.Obstacles())

	return Scene{
		Width:         g.cfg.Field.Width,
		Height:        g.cfg.Field.Height,
		ActorX:        g.cfg.Actor.X,
		Actor:         g.actor,
		ActorSize:     g.cfg.Actor.Size,
		Obstacles:     obstacles,
		ObstacleWidth: g.cfg.Obstacles.Width,
		GapHeight:     g.cfg.Obstacles.GapHeight,
		Score:         g.score,
		Lifecycle:     g.lifecycle,
		TouchPrimary:  g.runtime.TouchPrimary,
		FlapStarts:    g.cfg.Controls.FlapStarts,
	}
}
