package cloth

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// World owns every particle and link and advances them one tick at a time.
// It is not safe for concurrent use; feed it input through an InputState
// snapshot instead of sharing it between goroutines.
type World struct {
	params Params
	bounds Bounds
	wind   *Wind

	particles []Particle
	links     []Link

	tick  int
	frame Frame
}

// StepStats counts what happened during one tick.
type StepStats struct {
	Cut        int // links severed by the cut gesture
	Torn       int // links broken by tension
	Collisions int // projectile contacts resolved
	Pruned     int // inactive links removed
}

// NewWorld creates an empty world.
func NewWorld(p Params, b Bounds) (*World, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &World{params: p, bounds: b}, nil
}

// Params returns the physics constants the world was built with.
func (w *World) Params() Params { return w.params }

// Bounds returns the simulation volume.
func (w *World) Bounds() Bounds { return w.bounds }

// SetBounds resizes the simulation volume. Particles outside the new volume
// bounce back in on their next move.
func (w *World) SetBounds(b Bounds) { w.bounds = b }

// SetWind installs a wind field. nil disables wind.
func (w *World) SetWind(wind *Wind) { w.wind = wind }

// Tick is the number of completed steps.
func (w *World) Tick() int { return w.tick }

// Particles exposes the particle arena. Callers may read and adjust particles
// between steps but must not append to or shrink the slice.
func (w *World) Particles() []Particle { return w.particles }

// Particle returns the particle with the given id, or nil. The pointer
// aliases the arena and is only valid until the next AddParticle or
// SpawnProjectile, which may reallocate it.
func (w *World) Particle(id ParticleID) *Particle {
	if id < 0 || int(id) >= len(w.particles) {
		return nil
	}
	return &w.particles[id]
}

// Links exposes the live links. The slice is compacted at the end of every
// step, so indices are not stable across ticks.
func (w *World) Links() []Link { return w.links }

// AddParticle appends a particle and returns its id.
func (w *World) AddParticle(pos mgl64.Vec3, mass, density float64, role Role) (ParticleID, error) {
	p, err := NewParticle(pos, mass, density, role)
	if err != nil {
		return -1, err
	}
	w.particles = append(w.particles, p)
	return ParticleID(len(w.particles) - 1), nil
}

// Connect links two existing particles and returns a copy of the new link.
func (w *World) Connect(a, b ParticleID, rest, stiffness float64) (Link, error) {
	if w.Particle(a) == nil {
		return Link{}, fmt.Errorf("%w: %d", ErrUnknownParticle, a)
	}
	if w.Particle(b) == nil {
		return Link{}, fmt.Errorf("%w: %d", ErrUnknownParticle, b)
	}
	l, err := NewLink(a, b, rest, stiffness)
	if err != nil {
		return Link{}, err
	}
	w.links = append(w.links, l)
	return l, nil
}

// Step advances the world by dt seconds:
//
//  1. reset forces (gravity, pointer attraction, wind)
//  2. evaluate links (cut, tear, spring forces)
//  3. integrate particles
//  4. resolve projectile collisions
//  5. hand a frame to r, if non-nil
//  6. prune inactive links
//
// Links that break during the tick are still present in the frame.
func (w *World) Step(dt float64, in InputState, r Renderer) StepStats {
	var st StepStats

	for i := range w.particles {
		w.particles[i].ResetForces(w.params, in, w.wind, w.tick)
	}

	cut := in.Cut()
	for i := range w.links {
		switch w.links[i].Evaluate(w.particles, w.params, cut) {
		case Cut:
			st.Cut++
		case Torn:
			st.Torn++
		}
	}

	for i := range w.particles {
		w.particles[i].Move(dt, w.params, w.bounds, in)
	}

	st.Collisions = w.collide()

	w.tick++
	if r != nil {
		w.snapshot(&w.frame)
		r.RenderFrame(&w.frame)
	}

	st.Pruned = w.prune()
	return st
}

// prune drops inactive links in a single compacting pass.
func (w *World) prune() int {
	live := w.links[:0]
	for _, l := range w.links {
		if l.Active {
			live = append(live, l)
		}
	}
	n := len(w.links) - len(live)
	clear(w.links[len(live):])
	w.links = live
	return n
}
