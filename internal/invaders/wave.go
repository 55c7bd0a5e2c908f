package invaders

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrNoLives is returned when a wave is started without a life to play.
var ErrNoLives = errors.New("invaders: wave needs at least one life")

// Rand is the source of randomness for alien fire. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// AlienView is a read-only copy of an occupied formation slot.
type AlienView struct {
	Row, Col int
	Alien
}

// Kill records an alien destroyed during a tick.
type Kill struct {
	Row, Col int
	Variant  int
	X, Y     float64
}

// TickResult describes what happened during one Wave.Tick.
type TickResult struct {
	Kills      []Kill
	ShipHit    bool
	March      MarchAction // MarchNone when the formation did not move
	AlienFired bool
	Destroyed  bool
	Breached   bool
}

// Wave is one formation played from full strength until it is destroyed or
// crosses the defense line. It owns every entity in it; build a new Wave
// for each level.
type Wave struct {
	geo Geometry
	rng Rand

	ship      *Ship // nil while destroyed
	formation *Formation
	bolts     []*Bolt

	lives  int
	savedX float64 // Where the ship respawns

	marchTimer    float64
	march         MarchState
	fireSteps     int // Marches since the last alien shot
	fireThreshold int // Marches between alien shots, in [1, BoltRate]

	destroyed bool // Every alien is gone
	breached  bool // The formation crossed the defense line

	ticks uint64
}

// NewWave builds a wave with a full formation and the ship centred at the
// bottom of the world. It rejects unusable geometry instead of clamping it.
func NewWave(g Geometry, rng Rand, lives int) (*Wave, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if lives < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoLives, lives)
	}
	if rng == nil {
		return nil, errors.New("invaders: wave needs a random source")
	}

	w := &Wave{
		geo:       g,
		rng:       rng,
		ship:      NewShip(g.Width/2, g.ShipY, g.ShipW, g.ShipH),
		formation: NewFormation(g),
		bolts:     make([]*Bolt, 0, 8),
		lives:     lives,
		savedX:    g.Width / 2,
	}
	w.fireThreshold = w.sampleFireThreshold()
	return w, nil
}

// sampleFireThreshold draws uniformly from [1, BoltRate].
func (w *Wave) sampleFireThreshold() int {
	return 1 + w.rng.Intn(w.geo.BoltRate)
}

// Tick advances the wave by one frame of dt seconds.
//
// Order: move the ship, advance bolts (dropping those that left the world),
// resolve collisions for every advanced bolt, update the terminal flags, and
// finally march and fire if the wave is still undecided.
func (w *Wave) Tick(in core.InputFrame, dt float64) TickResult {
	if dt < 0 {
		panic(fmt.Sprintf("invaders: negative dt %v", dt))
	}
	w.ticks++
	var res TickResult

	if w.ship != nil {
		w.ship.Move(in.Has(core.ActionLeft), in.Has(core.ActionRight), w.geo.ShipStep, w.geo.Width, dt)
	}

	advanced := w.bolts
	live := make([]*Bolt, 0, len(advanced))
	for _, b := range advanced {
		b.Advance()
		if !b.Offscreen(w.geo.Height) {
			live = append(live, b)
		}
	}
	w.bolts = live
	// Bolts that just left the world still get one check at their exit position.
	for _, b := range advanced {
		w.resolveCollision(b, &res)
	}

	switch {
	case w.formation.Empty():
		w.destroyed = true
	case w.formation.BottomRowY()-w.geo.AlienH/2 < w.geo.DefenseLine:
		w.breached = true
	}

	if !w.destroyed && !w.breached {
		if w.marchTimer <= w.geo.MarchInterval {
			w.marchTimer += dt
		} else {
			res.March = w.march.Step(w.formation, w.geo)
			w.marchTimer = 0
			w.fireSteps++
			if w.fireSteps >= w.fireThreshold {
				w.fireSteps = 0
				w.spawnAlienBolt()
				res.AlienFired = true
				w.fireThreshold = w.sampleFireThreshold()
			}
		}
	}

	res.Destroyed = w.destroyed
	res.Breached = w.breached
	return res
}

// resolveCollision removes whatever b hit. Every occupied slot is checked,
// so overlapping aliens can all fall to one bolt.
func (w *Wave) resolveCollision(b *Bolt, res *TickResult) {
	hit := false
	w.formation.Each(func(row, col int, a *Alien) {
		if !a.Collides(b) {
			return
		}
		res.Kills = append(res.Kills, Kill{Row: row, Col: col, Variant: a.Variant, X: a.X, Y: a.Y})
		w.formation.Clear(row, col)
		hit = true
	})
	if hit {
		w.removeBolt(b)
	}

	if w.ship != nil && w.ship.Collides(b) {
		w.lives--
		w.removeBolt(b)
		w.savedX = w.ship.X
		w.ship = nil
		res.ShipHit = true
	}
}

// removeBolt rebuilds the live set without b.
func (w *Wave) removeBolt(b *Bolt) {
	kept := w.bolts[:0:0]
	for _, other := range w.bolts {
		if other != b {
			kept = append(kept, other)
		}
	}
	w.bolts = kept
}

// spawnAlienBolt fires from the lowest alien of a random non-empty column.
// Tick only calls it while aliens remain.
func (w *Wave) spawnAlienBolt() {
	cols := w.formation.OccupiedColumns()
	if len(cols) == 0 {
		panic("invaders: alien fire with no aliens left")
	}
	col := cols[w.rng.Intn(len(cols))]
	row, _ := w.formation.LowestInColumn(col)
	a := w.formation.At(row, col)

	y := a.Box().Bottom() - w.geo.BoltH/2
	w.bolts = append(w.bolts, NewBolt(a.X, y, w.geo.BoltW, w.geo.BoltH, -w.geo.BoltSpeed, false))
}

// RequestPlayerFire fires a bolt from the ship. Only one player bolt may be
// in flight; extra requests, and requests while the ship is destroyed, are
// ignored. It reports whether a bolt was fired.
func (w *Wave) RequestPlayerFire() bool {
	if w.ship == nil {
		return false
	}
	for _, b := range w.bolts {
		if b.PlayerOwned {
			return false
		}
	}
	y := w.ship.Box().Top() + w.geo.BoltH/2
	w.bolts = append(w.bolts, NewBolt(w.ship.X, y, w.geo.BoltW, w.geo.BoltH, w.geo.BoltSpeed, true))
	return true
}

// RespawnShip brings the ship back at the x where it was lost. It does
// nothing and reports false if the ship is alive or no lives remain.
func (w *Wave) RespawnShip() bool {
	if w.ship != nil || w.lives <= 0 {
		return false
	}
	w.ship = NewShip(w.savedX, w.geo.ShipY, w.geo.ShipW, w.geo.ShipH)
	w.ship.Move(false, false, 0, w.geo.Width, 0) // clamp into the world
	return true
}

// Ship returns a copy of the ship; ok is false while it is destroyed.
func (w *Wave) Ship() (ship Ship, ok bool) {
	if w.ship == nil {
		return Ship{}, false
	}
	return *w.ship, true
}

// Aliens returns copies of every remaining alien, bottom row first.
func (w *Wave) Aliens() []AlienView {
	views := make([]AlienView, 0, w.formation.Count())
	w.formation.Each(func(row, col int, a *Alien) {
		views = append(views, AlienView{Row: row, Col: col, Alien: *a})
	})
	return views
}

// Bolts returns copies of the live bolts.
func (w *Wave) Bolts() []Bolt {
	out := make([]Bolt, len(w.bolts))
	for i, b := range w.bolts {
		out[i] = *b
	}
	return out
}

// Lives returns the remaining lives.
func (w *Wave) Lives() int { return w.lives }

// Destroyed reports whether every alien has been shot.
func (w *Wave) Destroyed() bool { return w.destroyed }

// Breached reports whether the formation crossed the defense line.
func (w *Wave) Breached() bool { return w.breached }

// SavedX returns the x where the ship will respawn.
func (w *Wave) SavedX() float64 { return w.savedX }

// MarchState returns the formation's movement state.
func (w *Wave) MarchState() MarchState { return w.march }

// Geometry returns the constants the wave was built with.
func (w *Wave) Geometry() Geometry { return w.geo }

// Ticks returns the number of ticks simulated.
func (w *Wave) Ticks() uint64 { return w.ticks }
