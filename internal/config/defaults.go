package config

import (
	_ "embed"
)

//go:embed defaults/antarctic.yaml
var defaultAntarcticYAML []byte

// DefaultAntarcticConfig returns the default Antarctic runner configuration.
func DefaultAntarcticConfig() AntarcticConfig {
	return AntarcticConfig{
		Screen: ScreenConfig{
			Width:            800,
			Height:           600,
			HorizonY:         250,
			PlayerBaseOffset: 60,
		},
		Projection: ProjectionConfig{
			Scale:    1.0,
			MinDepth: 0.1,
		},
		Player: PlayerConfig{
			Speed:        0.02,
			TrackSpan:    1.0 / 3.0,
			JumpVelocity: 20,
			Gravity:      1,
			Width:        40,
			Height:       50,
		},
		Objects: ObjectsConfig{
			SpawnDepth:       100,
			RemoveDepth:      0.1,
			LateralRange:     0.8,
			FishChance:       0.5,
			FishJumpDepth:    25,
			FishJumpVelocity: 10,
			FishGravity:      0.2,
			ObstacleWidth:    150,
			ObstacleHeight:   60,
			FishWidth:        60,
			FishHeight:       38,
		},
		Session: SessionConfig{
			ScrollSpeed:     0.3,
			SpawnInterval:   60,
			FirstSpawnDelay: 90, // 1.5 seconds at 60fps
			FishReward:      10,
			CollisionNear:   0.8,
			CollisionFar:    1.8,
		},
		Difficulty: DifficultyConfig{
			SpeedRamp: 0,
			MaxSpeed:  0,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAntarcticYAML
}
