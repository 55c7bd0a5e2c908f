// Package invaders implements the Alien Invaders wave simulation: a marching
// formation of aliens, the player's ship and the laser bolts between them,
// plus the multi-wave game session the terminal frontend runs.
package invaders

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// ErrInvalidGeometry is returned when a wave is constructed from unusable constants.
var ErrInvalidGeometry = errors.New("invaders: invalid geometry")

// Geometry holds every constant a wave needs. It is fixed for the lifetime
// of one Wave.
type Geometry struct {
	Width, Height float64 // World size; y grows upward from 0

	Rows, Columns int
	Ceiling       float64
	HSep, VSep    float64
	HWalk, VWalk  float64

	AlienW, AlienH float64

	ShipW, ShipH float64
	ShipY        float64 // Centre of the ship
	ShipStep     float64

	BoltW, BoltH float64
	BoltSpeed    float64
	BoltRate     int

	MarchInterval float64 // Seconds between marches
	DefenseLine   float64
}

// GeometryFrom builds the geometry for the given 1-based wave from config.
// World dimensions left at zero in config fall back to width and height.
func GeometryFrom(cfg config.InvadersConfig, width, height float64, wave int) Geometry {
	if cfg.World.Width > 0 {
		width = cfg.World.Width
	}
	if cfg.World.Height > 0 {
		height = cfg.World.Height
	}
	return Geometry{
		Width:         width,
		Height:        height,
		Rows:          cfg.Formation.Rows,
		Columns:       cfg.Formation.Columns,
		Ceiling:       cfg.Formation.Ceiling,
		HSep:          cfg.Formation.HSep,
		VSep:          cfg.Formation.VSep,
		HWalk:         cfg.Formation.HWalk,
		VWalk:         cfg.Formation.VWalk,
		AlienW:        cfg.Alien.Width,
		AlienH:        cfg.Alien.Height,
		ShipW:         cfg.Ship.Width,
		ShipH:         cfg.Ship.Height,
		ShipY:         cfg.Ship.Bottom,
		ShipStep:      cfg.Ship.Movement,
		BoltW:         cfg.Bolt.Width,
		BoltH:         cfg.Bolt.Height,
		BoltSpeed:     cfg.Bolt.Speed,
		BoltRate:      cfg.Bolt.Rate,
		MarchInterval: config.MarchInterval(cfg, wave),
		DefenseLine:   cfg.DefenseLine,
	}
}

// Validate reports the first unusable constant, wrapped in ErrInvalidGeometry.
func (g Geometry) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"width", g.Width},
		{"height", g.Height},
		{"alien width", g.AlienW},
		{"alien height", g.AlienH},
		{"ship width", g.ShipW},
		{"ship height", g.ShipH},
		{"ship step", g.ShipStep},
		{"bolt width", g.BoltW},
		{"bolt height", g.BoltH},
		{"bolt speed", g.BoltSpeed},
		{"horizontal walk", g.HWalk},
		{"vertical walk", g.VWalk},
		{"march interval", g.MarchInterval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidGeometry, p.name, p.value)
		}
	}
	if g.HSep < 0 || g.VSep < 0 || g.Ceiling < 0 || g.DefenseLine < 0 {
		return fmt.Errorf("%w: separations, ceiling and defense line must be >= 0", ErrInvalidGeometry)
	}
	if g.Rows <= 0 || g.Columns <= 0 {
		return fmt.Errorf("%w: formation must be at least 1x1, got %dx%d", ErrInvalidGeometry, g.Rows, g.Columns)
	}
	if g.BoltRate < 1 {
		return fmt.Errorf("%w: bolt rate must be >= 1, got %d", ErrInvalidGeometry, g.BoltRate)
	}
	if g.ShipW > g.Width {
		return fmt.Errorf("%w: ship (%v) wider than world (%v)", ErrInvalidGeometry, g.ShipW, g.Width)
	}
	return nil
}

// FormationWidth returns the width the initial formation spans, wall margins included.
func (g Geometry) FormationWidth() float64 {
	return g.HSep + float64(g.Columns)*(g.HSep+g.AlienW)
}

// FormationHeight returns the height from the top of the world to the
// bottom row of the initial formation.
func (g Geometry) FormationHeight() float64 {
	return g.Ceiling + float64(g.Rows)*g.AlienH + float64(g.Rows-1)*g.VSep
}
