package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration. It mirrors the
// embedded YAML and backs it up if the embed cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Formation: FormationConfig{
			Rows:          5,
			Columns:       11,
			Ceiling:       2,
			HSep:          2,
			VSep:          1,
			HWalk:         1,
			VWalk:         1,
			MarchInterval: 0.6,
		},
		Alien: AlienConfig{
			Width:  3,
			Height: 1,
		},
		Ship: ShipConfig{
			Width:    5,
			Height:   1,
			Bottom:   1.5,
			Movement: 1,
		},
		Bolt: BoltConfig{
			Width:  0.2,
			Height: 0.5,
			Speed:  0.4,
			Rate:   5,
		},
		DefenseLine: 3,
		Gameplay: GameplayConfig{
			Lives:        3,
			Waves:        5,
			RespawnDelay: 1.5,
			Intermission: 2,
			Points:       []int{10, 20, 30},
		},
		Difficulty: DifficultyConfig{
			Enabled:          true,
			Speedup:          0.85,
			MinMarchInterval: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
