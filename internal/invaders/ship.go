package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Ship is the player's unit. Its y never changes.
type Ship struct {
	X, Y float64
	W, H float64
}

// NewShip creates a ship centred at (x, y).
func NewShip(x, y, w, h float64) *Ship {
	return &Ship{X: x, Y: y, W: w, H: h}
}

// Box returns the ship's bounding box.
func (s *Ship) Box() core.Box {
	return core.NewBox(s.X, s.Y, s.W, s.H)
}

// Move shifts the ship by one step for each held direction and keeps its box
// inside [0, width]. The step is a fixed distance per call: dt is accepted
// but not applied, so ship speed depends on the tick rate while the march
// does not.
func (s *Ship) Move(left, right bool, step, width, dt float64) {
	if left {
		s.X -= step
	}
	if right {
		s.X += step
	}
	s.X = core.ClampF(s.X, s.W/2, width-s.W/2)
}

// Collides reports whether an alien bolt hit the ship. The ship's own bolts
// never hit it; a hit needs every corner of the bolt inside the ship.
func (s *Ship) Collides(b *Bolt) bool {
	if b.PlayerOwned {
		return false
	}
	return s.Box().ContainsCorners(b.Box())
}
