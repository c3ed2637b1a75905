package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:        400,
			Height:       600,
			GroundHeight: 50,
		},
		Physics: FlappyPhysics{
			Gravity:     0.35,
			JumpImpulse: -7,
		},
		Player: FlappyPlayer{
			X:      50,
			Width:  40,
			Height: 30,
		},
		Obstacles: FlappyObstacles{
			Width:          70,
			SpawnMargin:    20,
			MinTopHeight:   120,
			TopHeightRange: 180,
		},
		Missiles: FlappyMissiles{
			Enabled:         true,
			Width:           15,
			Height:          8,
			Speed:           15,
			ExplosionStep:   3,
			ExplosionMax:    30,
			Cooldown:        20, // ~1/3 second at 60 FPS
			AwardEvery:      3,
			StartingAmmo:    0,
			TopHitMargin:    20,
			BottomHitMargin: 0,
		},
		Effects: FlappyEffects{
			HitDecayTicks: 15,
			WingFlapTicks: 5,
			Trail: TrailConfig{
				Enabled:    true,
				PerFlap:    3,
				MinSize:    2,
				SizeRange:  4,
				MinSpeed:   1,
				SpeedRange: 3,
				MinLife:    10,
				LifeRange:  10,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			StepEvery:     5,
			BaseSpeed:     3,
			SpeedCap:      8,
			SpeedPerPoint: 0.1,
			BaseGap:       180,
			GapFloor:      140,
			GapPerPoint:   0.5,
		},
	}
}

// DefaultFlappyYAML returns the embedded default YAML.
func DefaultFlappyYAML() []byte {
	return defaultFlappyYAML
}
