package config

import (
	_ "embed"
)

//go:embed defaults/spaceflappy.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in Space Flappy configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 500,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -8,
			ScrollSpeed: 2,
		},
		Actor: ActorConfig{
			X:           100,
			Size:        30,
			HitboxScale: 0.6,
		},
		Obstacles: ObstacleConfig{
			Width:        50,
			GapHeight:    150,
			SpawnSpacing: 200,
			MinGapTop:    50,
			BottomMargin: 50,
		},
		Starfield: StarfieldConfig{
			Count:     100,
			MinRadius: 1,
			MaxRadius: 3,
		},
		Controls: ControlsConfig{
			FlapStarts: true,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
