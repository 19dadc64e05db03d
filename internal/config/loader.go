package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRace loads the race configuration.
// Search order: customPath -> ~/.roadrace/configs/race.yaml -> ./configs/race.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadRace(customPath string) (RaceConfig, error) {
	cfg := DefaultRaceConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("race.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	if c, ok := tryLoad(filepath.Join("configs", "race.yaml")); ok {
		return c, nil
	}

	var embedded RaceConfig
	if err := yaml.Unmarshal(defaultRaceYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultRaceConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (RaceConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RaceConfig{}, false
	}
	cfg := DefaultRaceConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RaceConfig{}, false
	}
	if cfg.Validate() != nil {
		return RaceConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roadrace", "configs", filename)
}

// ApplyRacePreset modifies the config based on a named preset.
func ApplyRacePreset(cfg *RaceConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Physics.RoadSpeed = 450
		cfg.Physics.JumpHeight = 280
		cfg.Physics.JumpDuration = 1.2
		cfg.Player.Health = 3
	case PresetNormal:
		cfg.Physics.RoadSpeed = 600
		cfg.Physics.JumpHeight = 250
		cfg.Physics.JumpDuration = 1.0
		cfg.Player.Health = 3
	case PresetHard:
		cfg.Physics.RoadSpeed = 800
		cfg.Physics.JumpHeight = 220
		cfg.Physics.JumpDuration = 0.8
		cfg.Player.Health = 2
	case PresetClassic:
		cfg.Physics.FallSpeed = 300
		cfg.Physics.RoadSpeed = 600
		cfg.Physics.JumpHeight = 1000
		cfg.Physics.JumpDuration = 3.0
		cfg.Physics.ResetJumpEachTick = true
		cfg.Player.Health = 3
		cfg.Score.Mode = ScoreCumulative
	}
}
