package cloth

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
)

// Wind is a gusting force field sampled from Perlin noise. A nil Wind, or
// one with zero strength, exerts nothing.
type Wind struct {
	Strength  float64 // peak force per unit mass
	SpaceFreq float64 // noise cycles per simulation unit
	TimeFreq  float64 // noise cycles per tick

	noise *perlin.Perlin
}

// NewWind builds a deterministic wind field from seed.
func NewWind(strength float64, seed int64) *Wind {
	return &Wind{
		Strength:  strength,
		SpaceFreq: 0.05,
		TimeFreq:  0.01,
		noise:     perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Enabled reports whether the field exerts any force.
func (w *Wind) Enabled() bool {
	return w != nil && w.noise != nil && w.Strength != 0
}

// Force is the wind force on a particle of the given mass at pos. Gusts blow
// along x and z; gravity owns y.
func (w *Wind) Force(pos mgl64.Vec3, mass float64, tick int) mgl64.Vec3 {
	if !w.Enabled() {
		return mgl64.Vec3{}
	}
	t := float64(tick) * w.TimeFreq
	x, y := pos.X()*w.SpaceFreq, pos.Y()*w.SpaceFreq
	gx := w.noise.Noise3D(x, y, t)
	gz := w.noise.Noise3D(x+31.7, y+17.3, t)
	return mgl64.Vec3{gx, 0, gz}.Mul(w.Strength * mass)
}
