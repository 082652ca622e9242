package config

import (
	_ "embed"
)

//go:embed defaults/skyflap.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// Kept in sync with defaults/skyflap.yaml; used as the last-resort fallback
// if the embedded YAML fails to parse.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  720,
			Height: 480,
		},
		Physics: PhysicsConfig{
			Gravity:      0.35,
			JumpImpulse:  -6.5,
			MaxFallSpeed: 9.0,
			BaseSpeed:    3.0,
		},
		Actor: ActorConfig{
			X:      180,
			Radius: 15,
		},
		Obstacles: ObstaclesConfig{
			Width:     64,
			GapHeight: 170,
			Margin:    40,
			Spacing:   260,
		},
		Difficulty: DifficultyConfig{
			Step:  0.1,
			Every: 5,
		},
	}
}
