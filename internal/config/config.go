// Package config provides YAML-based configuration loading, validation and
// difficulty presets for Alien Invaders.
package config

// InvadersConfig contains all tunable constants for one game session.
// Distances are in world units (one unit is one terminal cell), times in
// seconds, speeds in world units per tick.
type InvadersConfig struct {
	World       WorldConfig      `yaml:"world"`
	Formation   FormationConfig  `yaml:"formation"`
	Alien       AlienConfig      `yaml:"alien"`
	Ship        ShipConfig       `yaml:"ship"`
	Bolt        BoltConfig       `yaml:"bolt"`
	DefenseLine float64          `yaml:"defense_line"` // y of the line the formation must not cross
	Gameplay    GameplayConfig   `yaml:"gameplay"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig fixes the playfield size. Zero values mean "fit the terminal".
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FormationConfig describes the alien grid and how it marches.
type FormationConfig struct {
	Rows          int     `yaml:"rows"`
	Columns       int     `yaml:"columns"`
	Ceiling       float64 `yaml:"ceiling"`        // gap between the top row and the top of the world
	HSep          float64 `yaml:"h_sep"`          // horizontal gap between aliens and wall margin
	VSep          float64 `yaml:"v_sep"`          // vertical gap between rows
	HWalk         float64 `yaml:"h_walk"`         // horizontal step per march
	VWalk         float64 `yaml:"v_walk"`         // vertical step per descent
	MarchInterval float64 `yaml:"march_interval"` // seconds between marches on wave 1
}

// AlienConfig defines alien dimensions.
type AlienConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Bottom   float64 `yaml:"bottom"`   // y of the ship's centre
	Movement float64 `yaml:"movement"` // distance moved per input tick
}

// BoltConfig defines laser bolts.
type BoltConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Rate   int     `yaml:"rate"` // upper bound of marches between alien shots
}

// GameplayConfig controls the session around the waves.
type GameplayConfig struct {
	Lives        int     `yaml:"lives"`
	Waves        int     `yaml:"waves"`         // waves in campaign mode
	RespawnDelay float64 `yaml:"respawn_delay"` // seconds before a lost ship comes back
	Intermission float64 `yaml:"intermission"`  // seconds between waves
	Points       []int   `yaml:"points"`        // score per alien variant
}

// DifficultyConfig defines how the march speeds up from wave to wave.
type DifficultyConfig struct {
	Enabled          bool    `yaml:"enabled"`
	Speedup          float64 `yaml:"speedup"`            // march interval multiplier per cleared wave
	MinMarchInterval float64 `yaml:"min_march_interval"` // floor for the march interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
