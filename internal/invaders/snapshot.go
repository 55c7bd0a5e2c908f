package invaders

import "math"

// Snapshot is the observable session state, flattened to primitives for
// determinism checks and replay verification.
type Snapshot struct {
	Tick    uint64
	Mode    int // 0=Campaign, 1=Endless
	State   string
	Score   int
	Lives   int
	WaveNum int
	Kills   int
	Timer   float64

	ShipAlive bool
	ShipX     float64
	SavedX    float64

	MarchTimer    float64
	MarchPhase    int
	Heading       int
	Reversals     int
	Descents      int
	FireSteps     int
	FireThreshold int

	// Each alien is 4 values: row*cols+col, X, Y, Variant
	AlienData []float64

	// Each bolt is 4 values: X, Y, VY, PlayerOwned
	BoltData []float64
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tickCount,
		Mode:    int(g.mode),
		State:   g.state,
		Score:   g.score,
		Lives:   g.lives,
		WaveNum: g.waveNum,
		Kills:   g.kills,
		Timer:   g.timer,
	}
	if g.wave == nil {
		return snap
	}
	w := g.wave

	if w.ship != nil {
		snap.ShipAlive = true
		snap.ShipX = w.ship.X
	}
	snap.SavedX = w.savedX
	snap.MarchTimer = w.marchTimer
	snap.MarchPhase = int(w.march.Phase)
	snap.Heading = int(w.march.Heading)
	snap.Reversals = w.march.Reversals
	snap.Descents = w.march.Descents
	snap.FireSteps = w.fireSteps
	snap.FireThreshold = w.fireThreshold

	cols := w.formation.Columns()
	snap.AlienData = make([]float64, 0, w.formation.Count()*4)
	w.formation.Each(func(row, col int, a *Alien) {
		snap.AlienData = append(snap.AlienData, float64(row*cols+col), a.X, a.Y, float64(a.Variant))
	})

	snap.BoltData = make([]float64, 0, len(w.bolts)*4)
	for _, b := range w.bolts {
		owned := 0.0
		if b.PlayerOwned {
			owned = 1
		}
		snap.BoltData = append(snap.BoltData, b.X, b.Y, b.VY, owned)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Mode)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.WaveNum) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)   //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Timer)
	if snap.ShipAlive {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.ShipX)
	h = h*31 + math.Float64bits(snap.SavedX)
	h = h*31 + math.Float64bits(snap.MarchTimer)
	h = h*31 + uint64(snap.MarchPhase)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Heading)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Reversals)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Descents)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FireSteps)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FireThreshold) //#nosec G115 -- hash computation

	for _, v := range snap.AlienData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BoltData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
