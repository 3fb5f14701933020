// Package config provides YAML-based game configuration loading and
// the optional scroll-speed ramp for the game.
package config

import (
	"errors"
	"fmt"
)

// AntarcticConfig contains all configuration for the Antarctic runner.
// A loaded config is treated as immutable: the game copies it at construction.
type AntarcticConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Projection ProjectionConfig `yaml:"projection"`
	Player     PlayerConfig     `yaml:"player"`
	Objects    ObjectsConfig    `yaml:"objects"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// ScreenConfig defines the virtual pixel space the game simulates and draws in.
type ScreenConfig struct {
	Width            int `yaml:"width"`
	Height           int `yaml:"height"`
	HorizonY         int `yaml:"horizon_y"`
	PlayerBaseOffset int `yaml:"player_base_offset"` // Player's feet above the bottom edge
}

// ProjectionConfig defines the pinhole-camera approximation.
type ProjectionConfig struct {
	Scale    float64 `yaml:"scale"`     // K in scale = K / depth
	MinDepth float64 `yaml:"min_depth"` // Depths are clamped to this before dividing
}

// PlayerConfig defines the penguin's movement and jump arc.
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`         // Lateral step per tick while a direction is held
	TrackSpan    float64 `yaml:"track_span"`    // Fraction of the screen width covered by lateral position 1.0
	JumpVelocity float64 `yaml:"jump_velocity"` // Initial upward velocity in pixels per tick
	Gravity      float64 `yaml:"gravity"`       // Velocity lost per tick while airborne
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
}

// ObjectsConfig defines world object geometry and the fish leap.
type ObjectsConfig struct {
	SpawnDepth       float64 `yaml:"spawn_depth"`
	RemoveDepth      float64 `yaml:"remove_depth"`
	LateralRange     float64 `yaml:"lateral_range"` // Obstacles spawn uniformly in [-range, range]
	FishChance       float64 `yaml:"fish_chance"`
	FishJumpDepth    float64 `yaml:"fish_jump_depth"`
	FishJumpVelocity float64 `yaml:"fish_jump_velocity"`
	FishGravity      float64 `yaml:"fish_gravity"`
	ObstacleWidth    int     `yaml:"obstacle_width"`
	ObstacleHeight   int     `yaml:"obstacle_height"`
	FishWidth        int     `yaml:"fish_width"`
	FishHeight       int     `yaml:"fish_height"`
}

// SessionConfig defines pacing, spawning cadence and scoring.
type SessionConfig struct {
	ScrollSpeed     float64 `yaml:"scroll_speed"`
	SpawnInterval   float64 `yaml:"spawn_interval"`    // Ticks per spawn at speed ~1: threshold = interval / (speed + 0.1)
	FirstSpawnDelay float64 `yaml:"first_spawn_delay"` // Ticks until the first obstacle
	FishReward      int     `yaml:"fish_reward"`
	CollisionNear   float64 `yaml:"collision_near"` // Collision band is the open interval (near, far)
	CollisionFar    float64 `yaml:"collision_far"`
}

// DifficultyConfig holds the scroll-speed ramp hook. A zero ramp keeps speed constant.
type DifficultyConfig struct {
	SpeedRamp float64 `yaml:"speed_ramp"` // Speed added per simulated tick
	MaxSpeed  float64 `yaml:"max_speed"`  // Upper bound for the ramped speed; 0 means unbounded
}

// InputConfig tunes how the terminal turns key repeats into held keys.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a steering key stays held after its last press
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the invariants the simulation relies on.
func (c AntarcticConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	case c.Screen.HorizonY < 0 || c.Screen.HorizonY >= c.Screen.Height:
		return fmt.Errorf("%w: horizon_y %d outside screen height %d", ErrInvalidConfig, c.Screen.HorizonY, c.Screen.Height)
	case c.Projection.Scale <= 0:
		return fmt.Errorf("%w: projection scale must be positive", ErrInvalidConfig)
	case c.Projection.MinDepth <= 0:
		return fmt.Errorf("%w: projection min_depth must be positive", ErrInvalidConfig)
	case c.Objects.RemoveDepth <= 0 || c.Objects.RemoveDepth >= c.Objects.SpawnDepth:
		return fmt.Errorf("%w: need 0 < remove_depth < spawn_depth, got %g and %g",
			ErrInvalidConfig, c.Objects.RemoveDepth, c.Objects.SpawnDepth)
	case c.Session.CollisionNear >= c.Session.CollisionFar:
		return fmt.Errorf("%w: collision band (%g, %g) is empty",
			ErrInvalidConfig, c.Session.CollisionNear, c.Session.CollisionFar)
	case c.Session.ScrollSpeed < 0:
		return fmt.Errorf("%w: scroll_speed must not be negative", ErrInvalidConfig)
	case c.Objects.FishChance < 0 || c.Objects.FishChance > 1:
		return fmt.Errorf("%w: fish_chance %g outside [0, 1]", ErrInvalidConfig, c.Objects.FishChance)
	case c.Player.Gravity <= 0 || c.Objects.FishGravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive, got %dx%d", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	case c.Objects.ObstacleWidth <= 0 || c.Objects.ObstacleHeight <= 0:
		return fmt.Errorf("%w: obstacle size must be positive, got %dx%d",
			ErrInvalidConfig, c.Objects.ObstacleWidth, c.Objects.ObstacleHeight)
	case c.Objects.FishWidth <= 0 || c.Objects.FishHeight <= 0:
		return fmt.Errorf("%w: fish size must be positive, got %dx%d", ErrInvalidConfig, c.Objects.FishWidth, c.Objects.FishHeight)
	case c.Input.HoldTicks < 1:
		return fmt.Errorf("%w: hold_ticks must be at least 1, got %d", ErrInvalidConfig, c.Input.HoldTicks)
	}
	return nil
}
