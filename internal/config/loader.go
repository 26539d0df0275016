package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTable loads the table configuration.
// Search order: customPath -> ~/.casino/configs/table.yaml -> ./configs/table.yaml -> embedded default
func LoadTable(customPath string) (TableConfig, error) {
	var cfg TableConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("table.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/table.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTableYAML, &cfg); err != nil {
		return DefaultTableConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".casino", "configs", filename)
}

// ApplyTablePreset modifies the config based on a difficulty preset.
func ApplyTablePreset(cfg *TableConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.CaptureBias = CaptureBiasForPreset(preset)
	if preset == DifficultyEasy {
		cfg.Difficulty.BuildsEnabled = false
	}
}
