package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHelix loads the game configuration and validates it.
// Search order: customPath -> ~/.helix/configs/helix.yaml -> ./configs/helix.yaml -> embedded default
//
// Every file is decoded on top of DefaultHelixConfig, so a file only needs
// the keys it changes.
func LoadHelix(customPath string) (HelixConfig, error) {
	cfg, err := loadHelixRaw(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadHelixRaw(customPath string) (HelixConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultHelixConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("helix.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/helix.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultHelixYAML)
	if err != nil {
		return DefaultHelixConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults.
func Parse(data []byte) (HelixConfig, error) {
	cfg := DefaultHelixConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultHelixConfig(), err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg HelixConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".helix", "configs", filename)
}

// ApplyHelixPreset modifies the config based on a difficulty preset.
func ApplyHelixPreset(cfg *HelixConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.StartLevel = 1
		cfg.Scoring.ComboWindow *= 1.5
		cfg.Input.MaxRotationSpeed *= 0.8
	case DifficultyNormal:
		cfg.Difficulty.StartLevel = 2
	case DifficultyHard:
		cfg.Difficulty.StartLevel = 5
		cfg.Scoring.ComboWindow *= 0.7
		cfg.Bounce.Min *= 0.9
	}
}
