package cloth

import "github.com/go-gl/mathgl/mgl64"

// Renderer receives the state of the world once per tick, after collisions
// and before inactive links are pruned.
type Renderer interface {
	RenderFrame(f *Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f *Frame)

func (fn RendererFunc) RenderFrame(f *Frame) { fn(f) }

// ParticleView is the drawable state of one particle.
type ParticleView struct {
	Pos        mgl64.Vec3
	Radius     float64
	Role       Role
	Projectile bool
	Opacity    float64
}

// LinkView is the drawable state of one link. Links that broke this tick are
// still listed, with Active false.
type LinkView struct {
	A, B    mgl64.Vec3
	Active  bool
	Strain  float64
	Opacity float64
}

// Frame is a copy of the world taken for drawing. The frame passed to a
// Renderer is reused on the next tick; Clone it to keep it longer.
type Frame struct {
	Tick      int
	Scale     float64
	Links     []LinkView
	Particles []ParticleView
}

// DepthRange is the z distance at which particles reach minimum opacity.
const DepthRange = 10.0

// snapshot fills f from the world, reusing f's slices.
func (w *World) snapshot(f *Frame) {
	f.Tick = w.tick
	f.Scale = w.params.Scale

	f.Links = f.Links[:0]
	for i := range w.links {
		l := &w.links[i]
		a, b := w.particles[l.A].Pos, w.particles[l.B].Pos
		f.Links = append(f.Links, LinkView{
			A:       a,
			B:       b,
			Active:  l.Active,
			Strain:  l.Strain(w.params.BreakThreshold),
			Opacity: depthOpacity((a.Z()+b.Z())/2, DepthRange),
		})
	}

	f.Particles = f.Particles[:0]
	for i := range w.particles {
		p := &w.particles[i]
		f.Particles = append(f.Particles, ParticleView{
			Pos:        p.Pos,
			Radius:     p.Radius,
			Role:       p.Role,
			Projectile: p.IsProjectile(w.params.ProjectileMass),
			Opacity:    p.Opacity(DepthRange),
		})
	}
}

// Snapshot returns a fresh frame of the current state.
func (w *World) Snapshot() *Frame {
	f := &Frame{}
	w.snapshot(f)
	return f
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	c := *f
	c.Links = append([]LinkView(nil), f.Links...)
	c.Particles = append([]ParticleView(nil), f.Particles...)
	return &c
}
