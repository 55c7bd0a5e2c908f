package config

import (
	"fmt"
	"math"
)

// ParsePreset converts a CLI string into a preset. The empty string is
// accepted and means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Formation.MarchInterval *= 1.5
		cfg.Bolt.Rate += 3
		cfg.Difficulty.Enabled = true
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Formation.MarchInterval *= 0.6
		cfg.Bolt.Rate = max(1, cfg.Bolt.Rate-2)
		cfg.Difficulty.Enabled = true
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// MarchInterval returns the seconds between marches for the given 1-based
// wave. Each cleared wave multiplies the interval by the speed-up factor
// until it reaches the configured floor.
func MarchInterval(cfg InvadersConfig, wave int) float64 {
	base := cfg.Formation.MarchInterval
	if !cfg.Difficulty.Enabled || wave <= 1 {
		return base
	}
	interval := base * math.Pow(cfg.Difficulty.Speedup, float64(wave-1))
	return math.Max(interval, math.Min(base, cfg.Difficulty.MinMarchInterval))
}
