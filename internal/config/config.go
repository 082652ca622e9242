// Package config provides YAML-based game configuration loading and
// validation for the simulation and its presentation layer.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of the game.
//
// Physics constants are authored per simulation tick (a ~1/60s frame), not in
// SI units. The integrator applies them once per fixed tick without scaling by
// wall-clock dt; converting them to per-second units would change the game
// feel unless every dependent constant were rescaled together.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Actor      ActorConfig      `yaml:"actor"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical canvas the simulation runs on.
// World units are independent of terminal cells; the renderer projects them.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Velocity gained per tick while falling
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Velocity set on flap (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
	BaseSpeed    float64 `yaml:"base_speed"`     // World scroll speed at round start
}

// ActorConfig defines the player-controlled actor.
type ActorConfig struct {
	X      float64 `yaml:"x"`      // Fixed horizontal position
	Radius float64 `yaml:"radius"` // Collision radius
}

// ObstaclesConfig defines obstacle geometry and spawning.
type ObstaclesConfig struct {
	Width     float64 `yaml:"width"`      // Horizontal extent of a pipe
	GapHeight float64 `yaml:"gap_height"` // Vertical size of the traversable gap
	Margin    float64 `yaml:"margin"`     // Minimum distance of the gap from world edges
	Spacing   float64 `yaml:"spacing"`    // Minimum horizontal distance between spawns
}

// DifficultyConfig defines the score-driven speed ramp.
// The difficulty factor grows by Step every Every points and is added to the
// base speed on each growth step.
type DifficultyConfig struct {
	Step  float64 `yaml:"step"`
	Every int     `yaml:"every"`
}

// Validate rejects configurations that would produce an unplayable or
// degenerate simulation. Called once at construction; failures are fatal.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Actor.Radius <= 0 {
		return errors.New("config: actor radius must be positive")
	}
	if c.World.Height < 2*c.Actor.Radius {
		return errors.New("config: world height cannot fit the actor")
	}
	if c.Obstacles.GapHeight+2*c.Obstacles.Margin > c.World.Height {
		return fmt.Errorf("config: world height %g cannot fit gap %g with margins %g",
			c.World.Height, c.Obstacles.GapHeight, c.Obstacles.Margin)
	}
	if c.Obstacles.GapHeight <= 2*c.Actor.Radius {
		return fmt.Errorf("config: gap height %g is not traversable by actor radius %g",
			c.Obstacles.GapHeight, c.Actor.Radius)
	}
	if c.Obstacles.Width <= 0 {
		return errors.New("config: obstacle width must be positive")
	}
	// Spacing must leave the actor enough travel time between gaps; require
	// at least one obstacle width plus a full gap height of clearance.
	if c.Obstacles.Spacing < c.Obstacles.Width+c.Obstacles.GapHeight {
		return fmt.Errorf("config: spacing %g too small for width %g and gap %g",
			c.Obstacles.Spacing, c.Obstacles.Width, c.Obstacles.GapHeight)
	}
	if c.Physics.Gravity <= 0 {
		return errors.New("config: gravity must be positive")
	}
	if c.Physics.JumpImpulse >= 0 {
		return errors.New("config: jump impulse must be negative (upward)")
	}
	if c.Physics.MaxFallSpeed <= 0 {
		return errors.New("config: max fall speed must be positive")
	}
	if c.Physics.BaseSpeed <= 0 {
		return errors.New("config: base speed must be positive")
	}
	if c.Actor.X-c.Actor.Radius < 0 || c.Actor.X+c.Actor.Radius > c.World.Width {
		return errors.New("config: actor x out of world bounds")
	}
	if c.Difficulty.Step < 0 {
		return errors.New("config: difficulty step cannot be negative")
	}
	if c.Difficulty.Every <= 0 {
		return errors.New("config: difficulty interval must be positive")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings map to the
// empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy", "normal", "hard", "fixed":
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset mutates the config according to a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.GapHeight = 200
		cfg.Obstacles.Spacing = 320
		cfg.Physics.BaseSpeed = 2.5
	case DifficultyHard:
		cfg.Obstacles.GapHeight = 140
		cfg.Physics.BaseSpeed = 3.5
	case DifficultyFixed:
		cfg.Difficulty.Step = 0 // Speed stays at base for the whole round
	}
}
