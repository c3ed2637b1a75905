package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the flappy configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseFlappy(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseFlappy(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		if cfg, err := ParseFlappy(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedFlappy(), nil
}

// ParseFlappy decodes YAML over the embedded defaults and validates the result.
func ParseFlappy(data []byte) (FlappyConfig, error) {
	cfg := embeddedFlappy()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// MarshalFlappy encodes a configuration as YAML.
func MarshalFlappy(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// embeddedFlappy decodes the embedded default YAML.
func embeddedFlappy() FlappyConfig {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	d := &cfg.Difficulty
	switch preset {
	case DifficultyFixed:
		d.Enabled = false
	case DifficultyEasy:
		d.Enabled = true
		d.BaseGap += 20
		d.GapFloor += 20
		d.SpeedCap = max(d.BaseSpeed, d.SpeedCap-2)
	case DifficultyNormal:
		d.Enabled = true
	case DifficultyHard:
		d.Enabled = true
		d.BaseSpeed = min(d.SpeedCap, d.BaseSpeed+1)
		d.GapFloor = min(d.BaseGap, max(cfg.Player.Height*3, d.GapFloor-20))
	}
}

// ClassicVariant strips the extended mechanics: no missiles, no difficulty
// scaling, no flap trail. Obstacles keep the base speed and gap for the whole run.
func ClassicVariant(cfg *FlappyConfig) {
	cfg.Missiles.Enabled = false
	cfg.Difficulty.Enabled = false
	cfg.Effects.Trail.Enabled = false
}
