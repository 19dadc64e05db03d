// Package config provides YAML-based configuration loading and presets
// for the road race.
package config

import (
	"errors"
	"fmt"
)

// RaceConfig contains all tunables for a road race session.
type RaceConfig struct {
	Physics  RacePhysics  `yaml:"physics"`
	Road     RaceRoad     `yaml:"road"`
	Obstacle RaceObstacle `yaml:"obstacle"`
	Player   RacePlayer   `yaml:"player"`
	Score    RaceScore    `yaml:"score"`
	Audio    RaceAudio    `yaml:"audio"`
}

// RacePhysics defines player motion and scroll speeds, in world units per second.
type RacePhysics struct {
	FallSpeed    float64 `yaml:"fall_speed"`
	RoadSpeed    float64 `yaml:"road_speed"`
	JumpHeight   float64 `yaml:"jump_height"`   // Peak height H of the jump arc
	JumpDuration float64 `yaml:"jump_duration"` // Total duration D in seconds
	GroundY      float64 `yaml:"ground_y"`

	// ResetJumpEachTick drops jump progress at the start of every tick,
	// so a jump only advances while the key is held.
	ResetJumpEachTick bool `yaml:"reset_jump_each_tick"`
}

// RaceRoad defines the decorative roadlines.
type RaceRoad struct {
	Lines        int     `yaml:"lines"`
	StartX       float64 `yaml:"start_x"`
	Spacing      float64 `yaml:"spacing"`
	Y            float64 `yaml:"y"`
	Scale        float64 `yaml:"scale"`
	ExitX        float64 `yaml:"exit_x"`        // Wrap when x < exit_x
	WrapDistance float64 `yaml:"wrap_distance"` // Added to x on wrap
}

// RaceObstacle defines the single obstacle.
type RaceObstacle struct {
	StartX     float64 `yaml:"start_x"`
	Y          float64 `yaml:"y"`
	ExitX      float64 `yaml:"exit_x"`
	RespawnMin float64 `yaml:"respawn_min"` // Inclusive
	RespawnMax float64 `yaml:"respawn_max"` // Exclusive
}

// RacePlayer defines the player sprite.
type RacePlayer struct {
	X      float64 `yaml:"x"`
	Health int     `yaml:"health"`
}

// Score accumulation modes.
const (
	ScoreCumulative = "cumulative" // Elapsed seconds re-added every tick
	ScoreElapsed    = "elapsed"    // Score equals elapsed seconds
)

// RaceScore defines how the score grows.
type RaceScore struct {
	Mode string `yaml:"mode"`
}

// RaceAudio defines music and effect volumes (0.0 to 1.0).
type RaceAudio struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"music_volume"`
	SfxVolume   float64 `yaml:"sfx_volume"`
}

// MaxHealth is the most health a run can start with.
const MaxHealth = 3

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("config: invalid race config")

// Validate checks values the tick logic depends on.
func (c RaceConfig) Validate() error {
	switch {
	case c.Physics.JumpDuration <= 0:
		return fmt.Errorf("%w: jump_duration must be positive", ErrInvalidConfig)
	case c.Physics.FallSpeed < 0 || c.Physics.RoadSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidConfig)
	case c.Physics.JumpHeight < 0:
		return fmt.Errorf("%w: jump_height must not be negative", ErrInvalidConfig)
	case c.Road.Lines < 0:
		return fmt.Errorf("%w: road lines must not be negative", ErrInvalidConfig)
	case c.Road.WrapDistance <= 0:
		return fmt.Errorf("%w: wrap_distance must be positive", ErrInvalidConfig)
	case c.Obstacle.RespawnMax <= c.Obstacle.RespawnMin:
		return fmt.Errorf("%w: respawn range [%g, %g) is empty", ErrInvalidConfig,
			c.Obstacle.RespawnMin, c.Obstacle.RespawnMax)
	case c.Player.Health <= 0 || c.Player.Health > MaxHealth:
		return fmt.Errorf("%w: health must be in 1..%d, got %d", ErrInvalidConfig, MaxHealth, c.Player.Health)
	case c.Score.Mode != ScoreCumulative && c.Score.Mode != ScoreElapsed:
		return fmt.Errorf("%w: unknown score mode %q", ErrInvalidConfig, c.Score.Mode)
	}
	return nil
}

// Preset represents a named tuning of the race.
type Preset string

const (
	PresetEasy    Preset = "easy"
	PresetNormal  Preset = "normal"
	PresetHard    Preset = "hard"
	PresetClassic Preset = "classic" // Reference constants and behaviours
)

// ParsePreset maps a CLI string to a preset. Empty means keep the config as loaded.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetEasy, PresetNormal, PresetHard, PresetClassic:
		return Preset(s), nil
	default:
		return "", fmt.Errorf("config: unknown preset %q", s)
	}
}
