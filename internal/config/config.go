// Package config provides YAML-based game configuration loading and
// validation.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all tunables for Space Flappy.
type GameConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Actor     ActorConfig     `yaml:"actor"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Controls  ControlsConfig  `yaml:"controls"`
}

// FieldConfig defines the logical play area in pixels.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick physics constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set by a jump (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"` // Obstacle movement per tick
}

// ActorConfig defines the flying sprite.
type ActorConfig struct {
	X           float64 `yaml:"x"`            // Fixed horizontal lane
	Size        float64 `yaml:"size"`         // Visual sprite size
	HitboxScale float64 `yaml:"hitbox_scale"` // Hitbox size as a fraction of Size
}

// HitboxHalf returns half the hitbox edge length.
func (a ActorConfig) HitboxHalf() float64 {
	return a.Size * a.HitboxScale / 2
}

// ObstacleConfig defines obstacle geometry and spawning.
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	GapHeight    float64 `yaml:"gap_height"`
	SpawnSpacing float64 `yaml:"spawn_spacing"` // Distance from the right edge before the next spawn
	MinGapTop    float64 `yaml:"min_gap_top"`   // Lowest allowed gap-top
	BottomMargin float64 `yaml:"bottom_margin"` // Space kept below the gap
}

// StarfieldConfig defines the background stars.
type StarfieldConfig struct {
	Count     int     `yaml:"count"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

// ControlsConfig defines input routing.
type ControlsConfig struct {
	// FlapStarts lets a flap start or restart the game when idle.
	// When false only the explicit start action does.
	FlapStarts bool `yaml:"flap_starts"`
}

// GapTopRange returns the interval gap-tops are drawn from.
func (c GameConfig) GapTopRange() (lo, hi float64) {
	return c.Obstacles.MinGapTop, c.Field.Height - c.Obstacles.GapHeight - c.Obstacles.BottomMargin
}

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must have positive size, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Physics.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.scroll_speed must be positive, got %g", c.Physics.ScrollSpeed))
	}
	if c.Actor.Size <= 0 {
		errs = append(errs, fmt.Errorf("actor.size must be positive, got %g", c.Actor.Size))
	}
	if c.Actor.HitboxScale <= 0 || c.Actor.HitboxScale > 1 {
		errs = append(errs, fmt.Errorf("actor.hitbox_scale must be in (0, 1], got %g", c.Actor.HitboxScale))
	}
	if c.Actor.X < 0 || c.Actor.X > c.Field.Width {
		errs = append(errs, fmt.Errorf("actor.x must be inside the field, got %g", c.Actor.X))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.width must be positive, got %g", c.Obstacles.Width))
	}
	if c.Obstacles.GapHeight <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.gap_height must be positive, got %g", c.Obstacles.GapHeight))
	}
	if c.Obstacles.SpawnSpacing <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_spacing must be positive, got %g", c.Obstacles.SpawnSpacing))
	}
	if lo, hi := c.GapTopRange(); hi < lo {
		errs = append(errs, fmt.Errorf("obstacle gap does not fit: gap-top range [%g, %g] is empty", lo, hi))
	}
	if c.Starfield.Count < 0 {
		errs = append(errs, fmt.Errorf("starfield.count must not be negative, got %d", c.Starfield.Count))
	}
	if c.Starfield.MinRadius <= 0 || c.Starfield.MaxRadius < c.Starfield.MinRadius {
		errs = append(errs, fmt.Errorf("starfield radius range [%g, %g] is invalid", c.Starfield.MinRadius, c.Starfield.MaxRadius))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
