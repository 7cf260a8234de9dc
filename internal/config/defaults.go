package config

import (
	_ "embed"
)

//go:embed defaults/watersort.yaml
var defaultWaterSortYAML []byte

// DefaultWaterSortConfig returns the built-in Water Sort configuration.
func DefaultWaterSortConfig() WaterSortConfig {
	return WaterSortConfig{
		Solver: SolverConfig{
			Strategy: "dfs",
			MaxNodes: 0,
		},
		Gameplay: GameplayConfig{
			LevelBonus:    1000,
			MovePenalty:   10,
			MinLevelScore: 100,
			HintsPerLevel: 3,
			SandboxVials:  14,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWaterSortYAML
}
