package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in tuning, matching the embedded YAML.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:        432,
			Height:       768,
			GroundHeight: 100,
		},
		Physics: PhysicsConfig{
			Gravity:      0.45,
			JumpImpulse:  -7.0,
			MaxFallSpeed: 12.0,
		},
		Pipes: PipesConfig{
			Width:          60,
			GapHeight:      200,
			Speed:          3.0,
			SpawnThreshold: 300,
			GraceOffset:    200,
			SeedCount:      3,
			TopMargin:      50,
			BottomMargin:   100,
		},
		Player: PlayerConfig{
			X:              120,
			VisualSize:     48,
			CollisionScale: 0.8,
			Tolerance:      6,
		},
	}
}
