package core

// RuntimeConfig contains per-run values handed to the game by the host.
// Tunables live in the YAML config; this is what changes between runs.
type RuntimeConfig struct {
	TickRate     int   // Simulation ticks per second for hosts with their own timer (default 60)
	Seed         int64 // RNG seed for deterministic gameplay
	TouchPrimary bool  // Whether the device is touch-first (affects copy only)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the read-only view the presentation shell observes.
type GameState struct {
	Score    int  // Current score
	Started  bool // Whether a session has been started at least once
	GameOver bool // Whether the last session ended in a collision
}

// Running reports whether the simulation is advancing.
func (s GameState) Running() bool {
	return s.Started && !s.GameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Started is true on the tick a session was (re)started.
	Started bool
	// Ended is true on the tick the session transitioned to Over.
	Ended bool
	// Scored is the number of points gained this tick.
	Scored int
}
