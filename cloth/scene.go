package cloth

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Scene records the ids of the particles the builder created.
type Scene struct {
	Grid      [][]ParticleID // [row][column]
	Anchors   []ParticleID
	Attractor ParticleID
}

// BuildScene hangs a square cloth centred in the world's bounds, pins it at
// the two top corners and the top middle, and adds the pointer-following
// attractor at the pointer.
func BuildScene(w *World, cfg SceneConfig, in InputState) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.GridSize
	step := cfg.RestLength * cfg.Spacing
	span := float64(n) * step
	b := w.Bounds()
	xOff := b.Min.X() + roundHalfUp((b.Max.X()-b.Min.X()-span)/2)
	yOff := b.Min.Y() + roundHalfUp((b.Max.Y()-b.Min.Y()-span)/2)

	sc := &Scene{Grid: make([][]ParticleID, n)}
	for i := 0; i < n; i++ {
		sc.Grid[i] = make([]ParticleID, n)
		for j := 0; j < n; j++ {
			pos := mgl64.Vec3{float64(j)*step + xOff, float64(i)*step + yOff, 0}
			id, err := w.AddParticle(pos, cfg.ClothMass, 1, Free)
			if err != nil {
				return nil, fmt.Errorf("cloth particle %d,%d: %w", i, j, err)
			}
			sc.Grid[i][j] = id
		}
	}

	for _, col := range []int{0, n - 1, n / 2} {
		id := sc.Grid[0][col]
		if w.particles[id].Role == Anchored {
			continue
		}
		w.particles[id].Role = Anchored
		sc.Anchors = append(sc.Anchors, id)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i+1 < n {
				if _, err := w.Connect(sc.Grid[i][j], sc.Grid[i+1][j], cfg.RestLength, cfg.Stiffness); err != nil {
					return nil, err
				}
			}
			if j+1 < n {
				if _, err := w.Connect(sc.Grid[i][j], sc.Grid[i][j+1], cfg.RestLength, cfg.Stiffness); err != nil {
					return nil, err
				}
			}
		}
	}

	id, err := w.AddParticle(in.Target(w.params.Scale), cfg.AttractorMass, 1, Attractor)
	if err != nil {
		return nil, fmt.Errorf("attractor: %w", err)
	}
	sc.Attractor = id
	return sc, nil
}

// roundHalfUp rounds .5 toward +Inf.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// ThrowPolicy decides which way a spawned projectile flies.
type ThrowPolicy uint8

const (
	// ThrowFromCenter aims from the centre of the view through the pointer.
	// A pointer exactly at the centre throws along +x.
	ThrowFromCenter ThrowPolicy = iota
	// ThrowFromPointer aims from the pointer at itself. The direction is
	// degenerate and resolves to angle 0, so every throw goes along +x.
	ThrowFromPointer
)

func (p ThrowPolicy) String() string {
	switch p {
	case ThrowFromCenter:
		return "center"
	case ThrowFromPointer:
		return "pointer"
	}
	return fmt.Sprintf("ThrowPolicy(%d)", uint8(p))
}

// ParseThrowPolicy accepts the names returned by String.
func ParseThrowPolicy(s string) (ThrowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return ThrowFromCenter, nil
	case "pointer":
		return ThrowFromPointer, nil
	}
	return 0, fmt.Errorf("%w: throw policy %q", ErrInvalidParams, s)
}

// SpawnProjectile throws a heavy free particle from the pointer on the z = 0
// plane.
func SpawnProjectile(w *World, cfg SceneConfig, in InputState, policy ThrowPolicy) (ParticleID, error) {
	scale := w.params.Scale
	var dx, dy float64
	if policy == ThrowFromCenter {
		c := w.Bounds().Center().Mul(scale)
		dx, dy = in.X-c.X(), in.Y-c.Y()
	}
	// atan2(0, 0) is 0, which gives the +x fallback for both policies.
	angle := math.Atan2(dy, dx)

	id, err := w.AddParticle(mgl64.Vec3{in.X / scale, in.Y / scale, 0}, cfg.SpawnMass, 1, Free)
	if err != nil {
		return -1, err
	}
	w.particles[id].Vel = mgl64.Vec3{
		cfg.SpawnSpeed * math.Cos(angle),
		cfg.SpawnSpeed * math.Sin(angle),
		0,
	}
	return id, nil
}
