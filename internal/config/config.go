// Package config provides YAML-based configuration loading and difficulty
// presets for Water Sort.
package config

// WaterSortConfig contains all configuration for the Water Sort games.
type WaterSortConfig struct {
	Solver   SolverConfig   `yaml:"solver"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Levels   LevelsConfig   `yaml:"levels"`
}

// SolverConfig tunes the automatic solver.
type SolverConfig struct {
	Strategy string `yaml:"strategy" validate:"strategy"`
	MaxNodes int    `yaml:"max_nodes" validate:"gte=0"` // 0 = unbounded
}

// GameplayConfig defines scoring and assistance rules.
type GameplayConfig struct {
	LevelBonus    int `yaml:"level_bonus" validate:"gt=0"`
	MovePenalty   int `yaml:"move_penalty" validate:"gte=0"`
	MinLevelScore int `yaml:"min_level_score" validate:"gte=0,ltefield=LevelBonus"`
	HintsPerLevel int `yaml:"hints_per_level" validate:"gte=-1"` // -1 = unlimited
	SandboxVials  int `yaml:"sandbox_vials" validate:"oneof=9 11 14"`
}

// LevelsConfig locates campaign level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // empty = built-in levels
}

// LevelScore returns the points for finishing a level in moves pours.
func (g GameplayConfig) LevelScore(moves int, hinted bool) int {
	if hinted {
		return g.MinLevelScore
	}
	return max(g.MinLevelScore, g.LevelBonus-g.MovePenalty*moves)
}

// HintsAllowed reports whether another hint may be used after used hints.
func (g GameplayConfig) HintsAllowed(used int) bool {
	return g.HintsPerLevel < 0 || used < g.HintsPerLevel
}
