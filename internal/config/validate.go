package config

import "fmt"

// ValidationError describes why a configuration was rejected.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// minVariants is the number of alien variants that need a point value.
const minVariants = 3

// Validate checks that every constant is usable. Dimensions, speeds and
// counts must be positive; gaps and delays must not be negative.
func Validate(cfg InvadersConfig) error {
	positive := []struct {
		name  string
		value float64
	}{
		{"alien.width", cfg.Alien.Width},
		{"alien.height", cfg.Alien.Height},
		{"ship.width", cfg.Ship.Width},
		{"ship.height", cfg.Ship.Height},
		{"ship.bottom", cfg.Ship.Bottom},
		{"ship.movement", cfg.Ship.Movement},
		{"bolt.width", cfg.Bolt.Width},
		{"bolt.height", cfg.Bolt.Height},
		{"bolt.speed", cfg.Bolt.Speed},
		{"formation.h_walk", cfg.Formation.HWalk},
		{"formation.v_walk", cfg.Formation.VWalk},
		{"formation.march_interval", cfg.Formation.MarchInterval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return ValidationError{
				Code:    "NOT_POSITIVE",
				Message: fmt.Sprintf("%s must be > 0, got %v", p.name, p.value),
			}
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"world.width", cfg.World.Width},
		{"world.height", cfg.World.Height},
		{"formation.ceiling", cfg.Formation.Ceiling},
		{"formation.h_sep", cfg.Formation.HSep},
		{"formation.v_sep", cfg.Formation.VSep},
		{"defense_line", cfg.DefenseLine},
		{"gameplay.respawn_delay", cfg.Gameplay.RespawnDelay},
		{"gameplay.intermission", cfg.Gameplay.Intermission},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return ValidationError{
				Code:    "NEGATIVE",
				Message: fmt.Sprintf("%s must be >= 0, got %v", p.name, p.value),
			}
		}
	}

	if cfg.Formation.Rows <= 0 || cfg.Formation.Columns <= 0 {
		return ValidationError{
			Code: "EMPTY_FORMATION",
			Message: fmt.Sprintf("formation must have rows and columns, got %dx%d",
				cfg.Formation.Rows, cfg.Formation.Columns),
		}
	}
	if cfg.Bolt.Rate < 1 {
		return ValidationError{
			Code:    "BAD_BOLT_RATE",
			Message: fmt.Sprintf("bolt.rate must be >= 1, got %d", cfg.Bolt.Rate),
		}
	}
	if cfg.Gameplay.Lives < 1 || cfg.Gameplay.Waves < 1 {
		return ValidationError{
			Code: "BAD_GAMEPLAY",
			Message: fmt.Sprintf("gameplay needs at least one life and one wave, got lives=%d waves=%d",
				cfg.Gameplay.Lives, cfg.Gameplay.Waves),
		}
	}
	if len(cfg.Gameplay.Points) < minVariants {
		return ValidationError{
			Code:    "BAD_POINTS",
			Message: fmt.Sprintf("gameplay.points needs %d entries, got %d", minVariants, len(cfg.Gameplay.Points)),
		}
	}
	if cfg.Difficulty.Enabled {
		if cfg.Difficulty.Speedup <= 0 || cfg.Difficulty.Speedup > 1 {
			return ValidationError{
				Code:    "BAD_SPEEDUP",
				Message: fmt.Sprintf("difficulty.speedup must be in (0, 1], got %v", cfg.Difficulty.Speedup),
			}
		}
		if cfg.Difficulty.MinMarchInterval <= 0 {
			return ValidationError{
				Code:    "BAD_SPEEDUP",
				Message: fmt.Sprintf("difficulty.min_march_interval must be > 0, got %v", cfg.Difficulty.MinMarchInterval),
			}
		}
	}

	return nil
}
