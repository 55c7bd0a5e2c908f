package invaders

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// fixedRand returns values from a fixed sequence, repeating the last one.
type fixedRand struct {
	values []int
	calls  int
}

func (r *fixedRand) Intn(n int) int {
	v := 0
	if len(r.values) > 0 {
		i := min(r.calls, len(r.values)-1)
		v = r.values[i]
	}
	r.calls++
	return v % n
}

// testGeometry returns the default geometry on an 80x24 world.
func testGeometry() Geometry {
	return GeometryFrom(config.DefaultInvadersConfig(), 80, 24, 1)
}

// newTestWave builds a wave or fails the test.
func newTestWave(t *testing.T, g Geometry, rng Rand, lives int) *Wave {
	t.Helper()
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	w, err := NewWave(g, rng, lives)
	if err != nil {
		t.Fatalf("NewWave: %v", err)
	}
	return w
}

// keepOnly clears every slot except the listed ones.
func keepOnly(f *Formation, keep ...[2]int) {
	wanted := make(map[[2]int]bool, len(keep))
	for _, k := range keep {
		wanted[k] = true
	}
	for row := range f.Rows() {
		for col := range f.Columns() {
			if !wanted[[2]int{row, col}] {
				f.Clear(row, col)
			}
		}
	}
}
