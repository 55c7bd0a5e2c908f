package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Bolt is a laser bolt in flight. Only its position changes after creation.
type Bolt struct {
	X, Y        float64
	W, H        float64
	VY          float64 // Positive moves up
	PlayerOwned bool
}

// NewBolt creates a bolt centred at (x, y).
func NewBolt(x, y, w, h, vy float64, playerOwned bool) *Bolt {
	return &Bolt{X: x, Y: y, W: w, H: h, VY: vy, PlayerOwned: playerOwned}
}

// Advance moves the bolt by its velocity.
func (b *Bolt) Advance() {
	b.Y += b.VY
}

// Box returns the bolt's bounding box.
func (b *Bolt) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Offscreen reports whether the bolt has left the world vertically: its box
// is entirely above height, or its top edge has reached 0.
func (b *Bolt) Offscreen(height float64) bool {
	box := b.Box()
	return box.Bottom() > height || box.Top() <= 0
}
