package cloth

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func linkPair(t *testing.T, a, b mgl64.Vec3) ([]Particle, Link) {
	t.Helper()
	ps := []Particle{
		mustParticle(t, a, 0.02, Free),
		mustParticle(t, b, 0.02, Free),
	}
	l, err := NewLink(0, 1, 2, 70)
	if err != nil {
		t.Fatalf("NewLink: %v", err)
	}
	return ps, l
}

func TestNewLinkValidation(t *testing.T) {
	tests := []struct {
		name      string
		a, b      ParticleID
		rest, k   float64
		wantError error
	}{
		{"self", 1, 1, 2, 70, ErrSelfLink},
		{"zero rest", 0, 1, 0, 70, ErrInvalidLength},
		{"negative rest", 0, 1, -2, 70, ErrInvalidLength},
		{"zero stiffness", 0, 1, 2, 0, ErrInvalidStiffness},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLink(tt.a, tt.b, tt.rest, tt.k); !errors.Is(err, tt.wantError) {
				t.Fatalf("err = %v, want %v", err, tt.wantError)
			}
		})
	}
}

func TestLinkUnderTensionPullsTogether(t *testing.T) {
	prm := DefaultParams()
	ps, l := linkPair(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 0})

	if got := l.Evaluate(ps, prm, CutStroke{}); got != Intact {
		t.Fatalf("Evaluate = %v, want Intact", got)
	}
	if !l.Active {
		t.Fatal("link broke at tension 35")
	}
	if !approx(l.Tension, 35, 1e-12) {
		t.Fatalf("tension = %v, want 35", l.Tension)
	}
	if !approx(ps[0].Force.X(), 35, 1e-9) || !approx(ps[1].Force.X(), -35, 1e-9) {
		t.Fatalf("forces = %v, %v; want A pulled +x and B pulled -x by 35", ps[0].Force, ps[1].Force)
	}
}

func TestLinkForceSymmetry(t *testing.T) {
	prm := DefaultParams()
	ends := [][2]mgl64.Vec3{
		{{0, 0, 0}, {3, 0, 0}},
		{{1, 2, 3}, {2.5, 4, 3.5}},
		{{-4, 1, 0}, {-1, -1, 1}},
		{{10, 10, -2}, {11, 12, 0}},
	}
	for i, e := range ends {
		ps, l := linkPair(t, e[0], e[1])
		l.Evaluate(ps, prm, CutStroke{})
		if !l.Active {
			t.Fatalf("case %d: link broke", i)
		}
		if ps[0].Force != ps[1].Force.Mul(-1) {
			t.Fatalf("case %d: forces not opposite: %v vs %v", i, ps[0].Force, ps[1].Force)
		}
		if ps[0].Force == (mgl64.Vec3{}) {
			t.Fatalf("case %d: stretched link exerted no force", i)
		}
	}
}

func TestLinkSlackExertsNothing(t *testing.T) {
	prm := DefaultParams()
	ps, l := linkPair(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1.5, 0, 0})
	l.Evaluate(ps, prm, CutStroke{})
	if !l.Active || l.Tension != 0 {
		t.Fatalf("slack link: active=%v tension=%v", l.Active, l.Tension)
	}
	if ps[0].Force != (mgl64.Vec3{}) || ps[1].Force != (mgl64.Vec3{}) {
		t.Fatalf("slack link exerted force: %v %v", ps[0].Force, ps[1].Force)
	}
}

func TestLinkTearsAboveThreshold(t *testing.T) {
	prm := DefaultParams()
	// tension (5-2)*70/2 = 105 > 100
	ps, l := linkPair(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{5, 0, 0})
	if got := l.Evaluate(ps, prm, CutStroke{}); got != Torn {
		t.Fatalf("Evaluate = %v, want Torn", got)
	}
	if l.Active {
		t.Fatal("link survived tension 105")
	}
	if ps[0].Force != (mgl64.Vec3{}) || ps[1].Force != (mgl64.Vec3{}) {
		t.Fatalf("torn link exerted force: %v %v", ps[0].Force, ps[1].Force)
	}
}

func TestLinkCutByGesture(t *testing.T) {
	prm := DefaultParams()
	// stretched as well, so a missed cut would show up as force
	ps, l := linkPair(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 0})
	cut := CutStroke{Active: true, From: mgl64.Vec2{10, -10}, To: mgl64.Vec2{10, 10}}

	if got := l.Evaluate(ps, prm, cut); got != Cut {
		t.Fatalf("Evaluate = %v, want Cut", got)
	}
	if l.Active {
		t.Fatal("link survived the cut")
	}
	if ps[0].Force != (mgl64.Vec3{}) || ps[1].Force != (mgl64.Vec3{}) {
		t.Fatalf("cut link exerted force: %v %v", ps[0].Force, ps[1].Force)
	}
}

func TestLinkCutInactiveGestureIgnored(t *testing.T) {
	prm := DefaultParams()
	ps, l := linkPair(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 0})
	cut := CutStroke{Active: false, From: mgl64.Vec2{10, -10}, To: mgl64.Vec2{10, 10}}
	if got := l.Evaluate(ps, prm, cut); got != Intact || !l.Active {
		t.Fatalf("Evaluate = %v active=%v, want intact", got, l.Active)
	}
}

func TestLinkNeverReactivates(t *testing.T) {
	prm := DefaultParams()
	ps, l := linkPair(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{5, 0, 0})
	l.Evaluate(ps, prm, CutStroke{})
	if l.Active {
		t.Fatal("expected link to tear")
	}

	// bring the ends back to rest and keep evaluating
	ps[1].Pos = mgl64.Vec3{2.5, 0, 0}
	for i := 0; i < 100; i++ {
		ps[0].Force, ps[1].Force = mgl64.Vec3{}, mgl64.Vec3{}
		if got := l.Evaluate(ps, prm, CutStroke{}); got != Intact {
			t.Fatalf("inactive link reported %v", got)
		}
		if l.Active {
			t.Fatalf("link reactivated after %d evaluations", i)
		}
		if ps[0].Force != (mgl64.Vec3{}) {
			t.Fatal("inactive link exerted force")
		}
	}
}

func TestLinkStrain(t *testing.T) {
	l := Link{Tension: 50}
	if s := l.Strain(100); s != 0.5 {
		t.Fatalf("Strain = %v, want 0.5", s)
	}
	l.Tension = 250
	if s := l.Strain(100); s != 1 {
		t.Fatalf("Strain = %v, want 1", s)
	}
}
