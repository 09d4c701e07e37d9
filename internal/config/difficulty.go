package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a CLI flag value into a preset.
// An empty string means "no preset" and is not an error.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplySlingpuckPreset modifies the config based on a difficulty preset.
// Easy widens the gaps and slows the sweep; hard does the opposite.
func ApplySlingpuckPreset(cfg *SlingpuckConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Arena.GapWidth *= 1.35
		cfg.Arena.SweepSpeed *= 0.7
		cfg.Match.WinDelayMs *= 1.25
	case DifficultyHard:
		cfg.Arena.GapWidth *= 0.8
		cfg.Arena.SweepSpeed *= 1.5
		cfg.Arena.ObstacleRadius *= 1.25
	}
}
