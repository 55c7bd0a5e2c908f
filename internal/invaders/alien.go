package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Variants is the number of distinct alien looks.
const Variants = 3

// Alien is one member of the formation. Only the march moves it.
type Alien struct {
	X, Y    float64
	W, H    float64
	Variant int
}

// NewAlien creates an alien centred at (x, y) whose look depends on its row.
func NewAlien(x, y, w, h float64, row int) *Alien {
	return &Alien{X: x, Y: y, W: w, H: h, Variant: VariantForRow(row)}
}

// VariantForRow cycles through the variants every two rows.
func VariantForRow(row int) int {
	return (row % (2 * Variants)) / 2
}

// Box returns the alien's bounding box.
func (a *Alien) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.W, a.H)
}

// MoveRight shifts the alien right by dx.
func (a *Alien) MoveRight(dx float64) {
	a.X += dx
}

// MoveLeft shifts the alien left by dx.
func (a *Alien) MoveLeft(dx float64) {
	a.X -= dx
}

// MoveDown lowers the alien by dy.
func (a *Alien) MoveDown(dy float64) {
	a.Y -= dy
}

// Collides reports whether a player bolt hit the alien. Alien bolts pass
// through aliens; a hit needs every corner of the bolt inside the alien.
func (a *Alien) Collides(b *Bolt) bool {
	if !b.PlayerOwned {
		return false
	}
	return a.Box().ContainsCorners(b.Box())
}
