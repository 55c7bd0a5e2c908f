package core

// RuntimeConfig is what the platform tells a game at Reset: the screen it
// draws on and the fixed tick it is stepped at. The same values, plus the
// game's own config, reproduce a session exactly.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters, HUD included
	TickRate int   // Simulation ticks per second; <= 0 means 60
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns the config for a classic 80x24 terminal at 60 ticks
// per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the session summary the platform reads after every step: it
// drives the help bar, replay saving and back-to-menu rules.
type GameState struct {
	Score    int
	Lives    int
	Wave     int  // 1-based
	GameOver bool // Lost or won
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
