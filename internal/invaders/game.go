package invaders

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Session states
const (
	StatePlaying      = "playing"      // Ship alive, wave running
	StateRespawn      = "respawn"      // Ship lost, waiting to respawn
	StateIntermission = "intermission" // Wave cleared, next one pending
	StatePaused       = "paused"
	StateGameOver     = "gameover"
	StateWin          = "win" // All waves cleared (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // A fixed number of waves, then win
	ModeEndless                  // Waves until the player loses
)

// hudRows is the number of screen rows above the world.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game is a full Alien Invaders session: successive waves, score, lives,
// respawns and intermissions.
type Game struct {
	mode GameMode

	// Fixed config; when nil, Reset loads from disk.
	fixedCfg *config.InvadersConfig

	cfg  config.InvadersConfig
	rt   core.RuntimeConfig
	rng  *rand.Rand
	wave *Wave

	state      string
	pausedFrom string
	waveNum    int
	score      int
	lives      int
	kills      int
	timer      float64 // Seconds left in respawn or intermission
	tickCount  uint64

	worldW, worldH float64
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithConfig creates a game that always uses cfg instead of loading
// config files. Replays use it to reproduce a recorded session.
func NewWithConfig(mode GameMode, cfg config.InvadersConfig) *Game {
	return &Game{mode: mode, fixedCfg: &cfg}
}

// ModeForID maps a registry ID back to its mode.
func ModeForID(id string) (GameMode, bool) {
	switch id {
	case "invaders":
		return ModeCampaign, true
	case "invaders_endless":
		return ModeEndless, true
	}
	return 0, false
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "invaders_endless"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Alien Invaders (Endless)"
	}
	return "Alien Invaders"
}

// Mode returns the game mode.
func (g *Game) Mode() GameMode {
	return g.mode
}

// Config returns the config the current session runs with.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// Reset starts a new session from wave 1.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	if g.rt.TickRate <= 0 {
		g.rt.TickRate = 60
	}

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadInvaders(configPath)
		if err != nil {
			cfg = config.DefaultInvadersConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.worldW = float64(rt.ScreenW)
	g.worldH = float64(rt.ScreenH - hudRows)

	g.state = StatePlaying
	g.pausedFrom = ""
	g.waveNum = 1
	g.score = 0
	g.kills = 0
	g.lives = g.cfg.Gameplay.Lives
	g.timer = 0
	g.tickCount = 0

	g.computeMinScreen()
	g.screenTooSmall = rt.ScreenW < g.minScreenW || rt.ScreenH < g.minScreenH
	if g.screenTooSmall {
		g.wave = nil
		return
	}
	if !g.startWave() {
		g.screenTooSmall = true
	}
}

// computeMinScreen derives the smallest terminal that fits a full
// formation above the defense line with room for the ship.
func (g *Game) computeMinScreen() {
	geo := GeometryFrom(g.cfg, g.worldW, g.worldH, 1)
	g.minScreenW = int(math.Ceil(geo.FormationWidth() + geo.HSep))
	g.minScreenH = int(math.Ceil(geo.FormationHeight()+geo.DefenseLine+geo.VWalk)) + hudRows
	if g.cfg.World.Width > 0 {
		g.minScreenW = int(math.Ceil(g.cfg.World.Width))
	}
	if g.cfg.World.Height > 0 {
		g.minScreenH = int(math.Ceil(g.cfg.World.Height)) + hudRows
	}
}

// startWave builds the wave for waveNum, carrying the remaining lives.
func (g *Game) startWave() bool {
	geo := GeometryFrom(g.cfg, g.worldW, g.worldH, g.waveNum)
	w, err := NewWave(geo, g.rng, g.lives)
	if err != nil {
		g.wave = nil
		return false
	}
	g.wave = w
	return true
}

// dt is the fixed simulation step in seconds.
func (g *Game) dt() float64 {
	return 1 / float64(g.rt.TickRate)
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.rt)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.pausedFrom
		case StatePlaying, StateRespawn, StateIntermission:
			g.pausedFrom = g.state
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.dt()

	if g.state == StateIntermission {
		g.timer -= dt
		if g.timer <= 0 {
			g.waveNum++
			if g.startWave() {
				g.state = StatePlaying
			} else {
				g.state = StateGameOver
			}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFire) {
		g.wave.RequestPlayerFire()
	}

	res := g.wave.Tick(in, dt)
	g.applyResult(res, dt)

	return core.StepResult{State: g.State()}
}

// applyResult scores kills and moves the session between states.
func (g *Game) applyResult(res TickResult, dt float64) {
	for _, k := range res.Kills {
		g.score += g.pointsFor(k.Variant)
		g.kills++
	}
	g.lives = g.wave.Lives()

	switch {
	case res.ShipHit && g.lives <= 0:
		g.state = StateGameOver
		return
	case res.ShipHit:
		g.state = StateRespawn
		g.timer = g.cfg.Gameplay.RespawnDelay
	case g.state == StateRespawn:
		g.timer -= dt
		if g.timer <= 0 && g.wave.RespawnShip() {
			g.state = StatePlaying
		}
	}

	if res.Breached {
		g.state = StateGameOver
		return
	}
	if res.Destroyed {
		if g.mode == ModeCampaign && g.waveNum >= g.cfg.Gameplay.Waves {
			g.state = StateWin
			return
		}
		g.state = StateIntermission
		g.timer = g.cfg.Gameplay.Intermission
	}
}

// pointsFor returns the score for destroying an alien of the given variant.
func (g *Game) pointsFor(variant int) int {
	points := g.cfg.Gameplay.Points
	if variant < 0 || variant >= len(points) {
		return 0
	}
	return points[variant]
}

// Wave returns the wave in play, or nil when the screen is too small.
func (g *Game) Wave() *Wave {
	return g.wave
}

// Outcome describes how the session ended, or "" while it is running.
func (g *Game) Outcome() string {
	switch {
	case g.state == StateWin:
		return "win"
	case g.state != StateGameOver:
		return ""
	case g.wave != nil && g.wave.Breached():
		return "breached"
	default:
		return "lives"
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Wave:     g.waveNum,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_endless", func() registry.Game {
		return NewEndless()
	})
}
