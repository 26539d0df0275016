package config

import (
	_ "embed"
)

//go:embed defaults/table.yaml
var defaultTableYAML []byte

// DefaultTableConfig returns the default table configuration.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		Card: CardDims{
			Width:  60,
			Height: 80,
		},
		Contact: ContactConfig{
			Threshold: 0.20,
		},
		Layout: LayoutConfig{
			Builds: RowLayout{
				BaseX:       200,
				Y:           50,
				Spacing:     100,
				WidthFactor: 1.5,
			},
			TempStacks: RowLayout{
				BaseX:       200,
				Y:           200,
				Spacing:     120,
				WidthFactor: 1.2,
			},
			LooseCards: RowLayout{
				BaseX:       50,
				Y:           100,
				Spacing:     80,
				WidthFactor: 1.0,
			},
		},
		Difficulty: DifficultyConfig{
			CaptureBias:   0.8,
			BuildsEnabled: true,
		},
	}
}

// GetDefaultYAML returns the embedded default table YAML.
func GetDefaultYAML() []byte {
	return defaultTableYAML
}
