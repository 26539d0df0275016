// Package config provides YAML-based table configuration loading and
// difficulty management for the casino platform.
package config

// TableConfig contains all tunable parameters for the table core:
// card dimensions, the contact threshold, and the row layout heuristics
// used to approximate entity bounds. Values are in table-local units.
type TableConfig struct {
	Card       CardDims         `yaml:"card"`
	Contact    ContactConfig    `yaml:"contact"`
	Layout     LayoutConfig     `yaml:"layout"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CardDims defines the base card size. Different device pixel densities
// may require recalibration, so these are configuration, not constants.
type CardDims struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ContactConfig defines contact detection parameters.
type ContactConfig struct {
	// Threshold is the minimum overlap percentage a dropped card must
	// strictly exceed to count as contact with a table entity.
	Threshold float64 `yaml:"threshold"`
}

// LayoutConfig defines the approximate row layout for each entity kind.
// Entities carry no authoritative screen coordinates; bounds are re-derived
// from ordinal position within the entity list using these rows.
type LayoutConfig struct {
	Builds     RowLayout `yaml:"builds"`
	TempStacks RowLayout `yaml:"temp_stacks"`
	LooseCards RowLayout `yaml:"loose_cards"`
}

// RowLayout places the Nth entity of a kind at (BaseX + N*Spacing, Y),
// with a width of WidthFactor times the base card width.
type RowLayout struct {
	BaseX       float64 `yaml:"base_x"`
	Y           float64 `yaml:"y"`
	Spacing     float64 `yaml:"spacing"`
	WidthFactor float64 `yaml:"width_factor"`
}

// DifficultyConfig defines CPU opponent behavior.
type DifficultyConfig struct {
	// CaptureBias in [0, 1]: probability the CPU prefers its best capture
	// over a safe trail when both are available.
	CaptureBias float64 `yaml:"capture_bias"`
	// BuildsEnabled controls whether the CPU creates builds of its own.
	BuildsEnabled bool `yaml:"builds_enabled"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// CaptureBiasForPreset returns the CPU capture bias for a difficulty preset.
func CaptureBiasForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyNormal:
		return 0.8
	case DifficultyHard:
		return 1.0
	default:
		return 0.8
	}
}
