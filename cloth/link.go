package cloth

import "fmt"

// Link is an elastic rope between two particles. It only pulls: a link
// shorter than its rest length exerts no force.
type Link struct {
	A, B       ParticleID
	RestLength float64
	Stiffness  float64
	Active     bool

	// Tension is the force computed on the last evaluation, zero when slack.
	Tension float64
}

// NewLink creates an active link.
func NewLink(a, b ParticleID, rest, stiffness float64) (Link, error) {
	if a == b {
		return Link{}, fmt.Errorf("%w: %d", ErrSelfLink, a)
	}
	if !(rest > 0) {
		return Link{}, fmt.Errorf("%w: %v", ErrInvalidLength, rest)
	}
	if !(stiffness > 0) {
		return Link{}, fmt.Errorf("%w: %v", ErrInvalidStiffness, stiffness)
	}
	return Link{A: a, B: b, RestLength: rest, Stiffness: stiffness, Active: true}, nil
}

// Breakage says why a link stopped being active.
type Breakage uint8

const (
	Intact Breakage = iota
	Cut
	Torn
)

func (b Breakage) String() string {
	switch b {
	case Intact:
		return "intact"
	case Cut:
		return "cut"
	case Torn:
		return "torn"
	}
	return fmt.Sprintf("Breakage(%d)", uint8(b))
}

// Evaluate checks the link against the cut gesture and its own tension and,
// if it survives, applies equal and opposite spring forces to its ends.
// A link that breaks applies no force on the tick it breaks.
func (l *Link) Evaluate(ps []Particle, prm Params, cut CutStroke) Breakage {
	if !l.Active {
		return Intact
	}
	a, b := &ps[l.A], &ps[l.B]

	if cut.Active && SegmentsIntersect(
		toPixels(a.Pos, prm.Scale), toPixels(b.Pos, prm.Scale),
		cut.From, cut.To,
	) {
		l.Active = false
		l.Tension = 0
		return Cut
	}

	delta := a.Pos.Sub(b.Pos)
	d := delta.Len()
	if d <= l.RestLength {
		l.Tension = 0
		return Intact
	}

	f := (d - l.RestLength) * l.Stiffness / l.RestLength
	l.Tension = f
	if f > prm.BreakThreshold {
		l.Active = false
		return Torn
	}

	pull := delta.Mul(f / d)
	a.Force = a.Force.Sub(pull)
	b.Force = b.Force.Add(pull)
	return Intact
}

// Strain is the last tension relative to the break threshold, in [0, 1].
func (l *Link) Strain(threshold float64) float64 {
	if threshold <= 0 {
		return 0
	}
	s := l.Tension / threshold
	if s > 1 {
		return 1
	}
	return s
}
