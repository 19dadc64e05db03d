package config

import (
	_ "embed"
)

//go:embed defaults/race.yaml
var defaultRaceYAML []byte

// DefaultRaceConfig returns the default race configuration.
// Mirrors defaults/race.yaml for when the embedded file cannot be parsed.
func DefaultRaceConfig() RaceConfig {
	return RaceConfig{
		Physics: RacePhysics{
			FallSpeed:    300,
			RoadSpeed:    600,
			JumpHeight:   250,
			JumpDuration: 1.0,
			GroundY:      0,
		},
		Road: RaceRoad{
			Lines:        10,
			StartX:       -600,
			Spacing:      150,
			Y:            -25,
			Scale:        0.1,
			ExitX:        -675,
			WrapDistance: 1500,
		},
		Obstacle: RaceObstacle{
			StartX:     600,
			Y:          0,
			ExitX:      -800,
			RespawnMin: 400,
			RespawnMax: 800,
		},
		Player: RacePlayer{
			X:      -500,
			Health: 3,
		},
		Score: RaceScore{
			Mode: ScoreCumulative,
		},
		Audio: RaceAudio{
			Enabled:     true,
			MusicVolume: 0.2,
			SfxVolume:   0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `roadrace config`.
func DefaultYAML() []byte {
	return defaultRaceYAML
}
