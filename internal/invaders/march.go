package invaders

// Heading is the horizontal direction the formation travels in.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingLeft
)

func (h Heading) String() string {
	if h == HeadingLeft {
		return "left"
	}
	return "right"
}

// opposite returns the reversed heading.
func (h Heading) opposite() Heading {
	if h == HeadingLeft {
		return HeadingRight
	}
	return HeadingLeft
}

// MarchPhase is the state of the march state machine.
type MarchPhase int

const (
	PhaseMarchingRight MarchPhase = iota
	PhaseMarchingLeft
	PhaseJustDescended // The last march was a descent; the next one steps sideways unconditionally
)

func (p MarchPhase) String() string {
	switch p {
	case PhaseMarchingRight:
		return "marching-right"
	case PhaseMarchingLeft:
		return "marching-left"
	case PhaseJustDescended:
		return "just-descended"
	default:
		return "unknown"
	}
}

// MarchAction is what one march did to the formation.
type MarchAction int

const (
	MarchNone MarchAction = iota
	MarchRight
	MarchLeft
	MarchDown
)

func (a MarchAction) String() string {
	switch a {
	case MarchRight:
		return "right"
	case MarchLeft:
		return "left"
	case MarchDown:
		return "down"
	default:
		return "none"
	}
}

// MarchState carries the formation's movement between marches.
//
// Transitions:
//
//	JustDescended          -> step in heading, becomes Marching<heading>
//	Marching*, at a wall   -> step down, heading reverses, becomes JustDescended
//	MarchingRight          -> step right
//	MarchingLeft           -> step left
//
// Reversals and Descents count how often each transition fired. Heading is
// left exactly when Reversals is odd, and the phase is JustDescended exactly
// when Descents is odd.
type MarchState struct {
	Phase     MarchPhase
	Heading   Heading
	Reversals int
	Descents  int
}

// atWall reports whether the formation's outer edge is within one
// separation of either side of the world.
func atWall(f *Formation, g Geometry) bool {
	return f.RightmostX()+g.AlienW/2 > g.Width-g.HSep ||
		f.LeftmostX()-g.AlienW/2 < g.HSep
}

// Step performs exactly one march on f and returns what it did. Empty slots
// are never touched; an empty formation does not move.
func (m *MarchState) Step(f *Formation, g Geometry) MarchAction {
	if f.Empty() {
		return MarchNone
	}

	switch {
	case m.Phase == PhaseJustDescended:
		m.Descents++
		m.Phase = phaseFor(m.Heading)
		return shift(f, m.Heading, g.HWalk)

	case atWall(f, g):
		f.Each(func(_, _ int, a *Alien) { a.MoveDown(g.VWalk) })
		m.Heading = m.Heading.opposite()
		m.Reversals++
		m.Descents++
		m.Phase = PhaseJustDescended
		return MarchDown

	default:
		return shift(f, m.Heading, g.HWalk)
	}
}

// phaseFor returns the marching phase for a heading.
func phaseFor(h Heading) MarchPhase {
	if h == HeadingLeft {
		return PhaseMarchingLeft
	}
	return PhaseMarchingRight
}

// shift moves every alien one step sideways.
func shift(f *Formation, h Heading, dx float64) MarchAction {
	if h == HeadingLeft {
		f.Each(func(_, _ int, a *Alien) { a.MoveLeft(dx) })
		return MarchLeft
	}
	f.Each(func(_, _ int, a *Alien) { a.MoveRight(dx) })
	return MarchRight
}
