package cloth

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Role selects how a particle takes part in the simulation.
type Role uint8

const (
	// Free particles are fully simulated.
	Free Role = iota
	// Anchored particles never move.
	Anchored
	// Attractor particles are kinematic: they follow the pointer.
	Attractor
)

func (r Role) String() string {
	switch r {
	case Free:
		return "free"
	case Anchored:
		return "anchored"
	case Attractor:
		return "attractor"
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// ParticleID is a stable index into the world's particle arena.
type ParticleID int

// Particle is a point mass with a spherical collision radius.
type Particle struct {
	Pos   mgl64.Vec3
	Vel   mgl64.Vec3
	Force mgl64.Vec3

	Mass    float64
	Density float64
	Radius  float64

	Role Role
}

// NewParticle creates a particle at rest. The radius is that of a sphere of
// the given mass and density.
func NewParticle(pos mgl64.Vec3, mass, density float64, role Role) (Particle, error) {
	if !(mass > 0) {
		return Particle{}, fmt.Errorf("%w: %v", ErrInvalidMass, mass)
	}
	if !(density > 0) {
		return Particle{}, fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}
	return Particle{
		Pos:     pos,
		Mass:    mass,
		Density: density,
		Radius:  math.Cbrt(3 * mass / (4 * math.Pi * density)),
		Role:    role,
	}, nil
}

// IsProjectile reports whether the particle is heavy enough to collide.
func (p *Particle) IsProjectile(threshold float64) bool {
	return p.Role == Free && p.Mass > threshold
}

// DistanceTo is the 3D distance between two particles.
func (p *Particle) DistanceTo(o *Particle) float64 {
	return Distance(p.Pos, o.Pos)
}

// ResetForces replaces the accumulated force with gravity plus, while the
// pointer is held, attraction toward the pointer. wind may be nil.
func (p *Particle) ResetForces(prm Params, in InputState, wind *Wind, tick int) {
	p.Force = mgl64.Vec3{0, prm.Gravity * p.Mass, 0}
	if p.Role == Anchored {
		return
	}

	if in.Down {
		delta := in.Target(prm.Scale).Sub(p.Pos)
		d2 := delta.Dot(delta)
		if d := math.Sqrt(d2); d > 0 {
			f := prm.AttractK * p.Mass / (d2 + prm.AttractEpsilon)
			p.Force = p.Force.Add(delta.Mul(f / d))
		}
	}

	if wind.Enabled() {
		p.Force = p.Force.Add(wind.Force(p.Pos, p.Mass, tick))
	}
}

// Move integrates one tick with semi-implicit Euler, damps the velocity and
// bounces the particle off the bounds.
func (p *Particle) Move(dt float64, prm Params, b Bounds, in InputState) {
	if p.Role == Anchored {
		return
	}

	p.Vel = p.Vel.Add(p.Force.Mul(dt / p.Mass))
	p.Vel = p.Vel.Mul(1 - prm.Friction*dt)
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))

	for i := 0; i < 3; i++ {
		if p.Pos[i] < b.Min[i] || p.Pos[i] > b.Max[i] {
			p.Vel[i] *= -prm.Restitution
			p.Pos[i] = mgl64.Clamp(p.Pos[i], b.Min[i], b.Max[i])
		}
	}

	if p.Role == Attractor {
		p.Pos = in.Target(prm.Scale)
	}
}

// Opacity fades particles away from the z = 0 plane, never below 0.2.
func (p *Particle) Opacity(depthRange float64) float64 {
	return depthOpacity(p.Pos.Z(), depthRange)
}

func depthOpacity(z, depthRange float64) float64 {
	if depthRange <= 0 {
		return 1
	}
	return math.Max(0.2, 1-math.Abs(z/depthRange))
}
