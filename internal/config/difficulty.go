package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value to a preset. Empty means fixed,
// which keeps the loaded config as is.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// HintsForPreset returns the solver hints per level for a preset.
// The second result is false for presets that do not override hints.
func HintsForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return -1, true
	case DifficultyNormal:
		return 3, true
	case DifficultyHard:
		return 0, true
	default:
		return 0, false
	}
}

// ApplyWaterSortPreset modifies the config based on a difficulty preset.
func ApplyWaterSortPreset(cfg *WaterSortConfig, preset DifficultyPreset) {
	if hints, ok := HintsForPreset(preset); ok {
		cfg.Gameplay.HintsPerLevel = hints
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MovePenalty = 5
	case DifficultyHard:
		cfg.Gameplay.MovePenalty = 20
	}
}
