package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// stillConfig never marches, so tests control every collision.
func stillConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.Formation.MarchInterval = 1e9
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestGame(t *testing.T, mode GameMode, cfg config.InvadersConfig) *Game {
	t.Helper()
	g := NewWithConfig(mode, cfg)
	g.Reset(testRuntime(42))
	if g.Wave() == nil {
		t.Fatal("game should have a wave on an 80x24 screen")
	}
	return g
}

func stepN(g *Game, n int, actions ...core.Action) {
	for range n {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		g.Step(in)
	}
}

// hitShip queues an alien bolt inside the ship.
func hitShip(g *Game) {
	w := g.Wave()
	w.bolts = append(w.bolts, NewBolt(w.ship.X, w.ship.Y, 0.2, 0.5, 0, false))
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 < 15:
			inputs[i].Set(core.ActionLeft)
		case i%40 < 30:
			inputs[i].Set(core.ActionRight)
		}
		if i%9 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func() Snapshot {
		g := NewWithConfig(ModeEndless, config.DefaultInvadersConfig())
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, ModeCampaign, config.DefaultInvadersConfig())
	stepN(g, 120, core.ActionRight, core.ActionFire)

	g.Reset(testRuntime(42))

	if g.score != 0 || g.tickCount != 0 || g.waveNum != 1 {
		t.Errorf("Reset should clear progress: score=%d tick=%d wave=%d", g.score, g.tickCount, g.waveNum)
	}
	if g.state != StatePlaying {
		t.Errorf("Reset should set state to playing, got %s", g.state)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("Reset should restore lives, got %d", g.lives)
	}
}

func TestGameScoresKills(t *testing.T) {
	g := newTestGame(t, ModeCampaign, stillConfig())
	w := g.Wave()
	w.ship.X = w.formation.At(0, 3).X

	stepN(g, 1, core.ActionFire)
	stepN(g, 60)

	if g.score != g.cfg.Gameplay.Points[VariantForRow(0)] {
		t.Errorf("expected %d points for a bottom-row alien, got %d", g.cfg.Gameplay.Points[0], g.score)
	}
	if g.kills != 1 {
		t.Errorf("expected one kill, got %d", g.kills)
	}
}

func TestGameRespawnAfterDelay(t *testing.T) {
	cfg := stillConfig()
	cfg.Gameplay.RespawnDelay = 0.5
	g := newTestGame(t, ModeCampaign, cfg)
	hitShip(g)

	stepN(g, 1)
	if g.state != StateRespawn {
		t.Fatalf("expected respawn state after hit, got %s", g.state)
	}
	if g.State().Lives != cfg.Gameplay.Lives-1 {
		t.Errorf("expected %d lives, got %d", cfg.Gameplay.Lives-1, g.State().Lives)
	}

	stepN(g, 20)
	if _, ok := g.Wave().Ship(); ok {
		t.Fatal("ship should not respawn before the delay")
	}

	stepN(g, 20)
	if g.state != StatePlaying {
		t.Fatalf("expected playing after the delay, got %s", g.state)
	}
	if _, ok := g.Wave().Ship(); !ok {
		t.Error("ship should be back")
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	cfg := stillConfig()
	cfg.Gameplay.Lives = 1
	g := newTestGame(t, ModeCampaign, cfg)
	hitShip(g)

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("expected game over, got %+v", res.State)
	}
	if g.Outcome() != "lives" {
		t.Errorf("expected outcome lives, got %q", g.Outcome())
	}

	tick := g.tickCount
	stepN(g, 10)
	if g.tickCount != tick {
		t.Error("a finished game must not advance")
	}

	stepN(g, 1, core.ActionRestart)
	if g.state != StatePlaying || g.lives != 1 {
		t.Errorf("restart should start over, state=%s lives=%d", g.state, g.lives)
	}
}

func TestGameBreachEndsGame(t *testing.T) {
	g := newTestGame(t, ModeEndless, stillConfig())
	g.Wave().formation.Each(func(_, _ int, a *Alien) { a.MoveDown(15) })

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("breach should end the game")
	}
	if g.Outcome() != "breached" {
		t.Errorf("expected outcome breached, got %q", g.Outcome())
	}
}

func TestGameWaveProgression(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Gameplay.Waves = 2
	cfg.Gameplay.Intermission = 0.1
	g := newTestGame(t, ModeCampaign, cfg)

	firstInterval := g.Wave().Geometry().MarchInterval
	hitShip(g)
	stepN(g, 1)
	keepOnly(g.Wave().formation)
	stepN(g, 1)
	if g.state != StateIntermission {
		t.Fatalf("expected intermission after clearing the wave, got %s", g.state)
	}

	stepN(g, 10)
	if g.state != StatePlaying || g.waveNum != 2 {
		t.Fatalf("expected wave 2 in play, state=%s wave=%d", g.state, g.waveNum)
	}
	w := g.Wave()
	if len(w.Aliens()) != cfg.Formation.Rows*cfg.Formation.Columns {
		t.Error("new wave should start with a full formation")
	}
	if w.Lives() != cfg.Gameplay.Lives-1 {
		t.Errorf("lives should carry over, got %d", w.Lives())
	}
	if _, ok := w.Ship(); !ok {
		t.Error("new wave should start with a ship")
	}
	if w.Geometry().MarchInterval >= firstInterval {
		t.Errorf("wave 2 should march faster: %v >= %v", w.Geometry().MarchInterval, firstInterval)
	}

	keepOnly(w.formation)
	res := g.Step(core.NewInputFrame())
	if !res.State.Won || !res.State.GameOver {
		t.Errorf("clearing the last wave should win, got %+v", res.State)
	}
}

func TestEndlessNeverWins(t *testing.T) {
	cfg := stillConfig()
	cfg.Gameplay.Waves = 1
	g := newTestGame(t, ModeEndless, cfg)

	keepOnly(g.Wave().formation)
	stepN(g, 1)
	if g.state != StateIntermission {
		t.Errorf("endless mode should continue to the next wave, got %s", g.state)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(t, ModeCampaign, config.DefaultInvadersConfig())
	stepN(g, 5)

	stepN(g, 1, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	snap := g.Snapshot()
	stepN(g, 30, core.ActionRight)
	after := g.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("paused game must not change")
	}

	stepN(g, 1, core.ActionPause)
	if g.State().Paused || g.state != StatePlaying {
		t.Errorf("unpause should return to playing, got %s", g.state)
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := NewWithConfig(ModeCampaign, config.DefaultInvadersConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.screenTooSmall {
		t.Fatal("40x10 should be too small")
	}
	res := g.Step(core.NewInputFrame())
	if res.State.GameOver {
		t.Error("too-small screen is not game over")
	}

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, ModeCampaign, config.DefaultInvadersConfig())
	stepN(g, 1, core.ActionFire)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Wave: 1/") {
		t.Errorf("HUD missing wave: %q", screen.Row(0))
	}

	ship, _ := g.Wave().Ship()
	shipRow := screen.Row(g.cellRow(ship.Y))
	if !strings.Contains(shipRow, ShipGlyph) {
		t.Errorf("ship row should contain the ship sprite: %q", shipRow)
	}

	a := g.Wave().formation.At(0, 0)
	alienRow := screen.Row(g.cellRow(a.Y))
	if strings.Count(alienRow, AlienGlyphs[0]) != g.cfg.Formation.Columns {
		t.Errorf("bottom row should show %d aliens: %q", g.cfg.Formation.Columns, alienRow)
	}
	cell := screen.GetCell(spanStart(a.X, a.W), g.cellRow(a.Y))
	if cell.Color != AlienColors[0] {
		t.Errorf("alien color = %v, want %v", cell.Color, AlienColors[0])
	}
}

func TestModeForID(t *testing.T) {
	for _, g := range []*Game{New(), NewEndless()} {
		mode, ok := ModeForID(g.ID())
		if !ok || mode != g.Mode() {
			t.Errorf("ModeForID(%q) = %v, %v", g.ID(), mode, ok)
		}
	}
	if _, ok := ModeForID("breakout"); ok {
		t.Error("unknown id should not map to a mode")
	}
}
