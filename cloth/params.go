package cloth

import (
	"fmt"
	"math"
	"time"
)

// Params holds the tunable physics constants. The zero value is not usable,
// start from DefaultParams.
type Params struct {
	Gravity     float64 // acceleration along +y (down)
	Friction    float64 // velocity damping per second
	Restitution float64 // fraction of velocity kept when bouncing off a boundary

	BreakThreshold float64 // link tension above which a link tears

	AttractK       float64 // pointer attraction constant
	AttractEpsilon float64 // softening term added to d² in the attraction

	ProjectileMass float64 // Free particles heavier than this collide

	Scale float64 // pixels per simulation unit

	TickPeriod time.Duration
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Gravity:        9.8,
		Friction:       0.3,
		Restitution:    0.8,
		BreakThreshold: 100,
		AttractK:       1000,
		AttractEpsilon: 2,
		ProjectileMass: 0.05,
		Scale:          10,
		TickPeriod:     10 * time.Millisecond,
	}
}

// DT is the tick period in seconds.
func (p Params) DT() float64 {
	return p.TickPeriod.Seconds()
}

// Validate rejects parameter sets that would make the integrator unstable
// or divide by zero.
func (p Params) Validate() error {
	switch {
	case !(p.Scale > 0) || math.IsInf(p.Scale, 0):
		return fmt.Errorf("%w: scale %v", ErrInvalidParams, p.Scale)
	case p.TickPeriod <= 0:
		return fmt.Errorf("%w: tick period %v", ErrInvalidParams, p.TickPeriod)
	case !(p.Friction >= 0 && p.Friction*p.DT() < 1):
		// damping factor must stay in (0, 1] or velocities flip sign
		return fmt.Errorf("%w: friction %v at dt %v", ErrInvalidParams, p.Friction, p.DT())
	case !(p.Restitution >= 0 && p.Restitution <= 1):
		return fmt.Errorf("%w: restitution %v", ErrInvalidParams, p.Restitution)
	case !(p.BreakThreshold > 0):
		return fmt.Errorf("%w: break threshold %v", ErrInvalidParams, p.BreakThreshold)
	case !(p.AttractEpsilon > 0) || math.IsInf(p.AttractEpsilon, 0):
		return fmt.Errorf("%w: attraction epsilon %v", ErrInvalidParams, p.AttractEpsilon)
	case !isFinite(p.Gravity):
		return fmt.Errorf("%w: gravity %v", ErrInvalidParams, p.Gravity)
	case !isFinite(p.AttractK):
		return fmt.Errorf("%w: attraction constant %v", ErrInvalidParams, p.AttractK)
	case !(p.ProjectileMass >= 0) || math.IsInf(p.ProjectileMass, 0):
		return fmt.Errorf("%w: projectile mass %v", ErrInvalidParams, p.ProjectileMass)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// SceneConfig describes the initial cloth.
type SceneConfig struct {
	GridSize      int
	RestLength    float64
	Stiffness     float64
	Spacing       float64 // multiplier on RestLength between grid neighbours
	ClothMass     float64
	AttractorMass float64

	SpawnMass  float64
	SpawnSpeed float64
}

// DefaultSceneConfig returns a 30x30 cloth.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		GridSize:      30,
		RestLength:    2,
		Stiffness:     70,
		Spacing:       1.2,
		ClothMass:     0.02,
		AttractorMass: 1,
		SpawnMass:     0.5,
		SpawnSpeed:    20,
	}
}

// Validate checks the scene can be built.
func (c SceneConfig) Validate() error {
	switch {
	case c.GridSize < 1:
		return fmt.Errorf("%w: grid size %d", ErrInvalidParams, c.GridSize)
	case !(c.RestLength > 0) || math.IsInf(c.RestLength, 0):
		return fmt.Errorf("%w: %v", ErrInvalidLength, c.RestLength)
	case !(c.Stiffness > 0) || math.IsInf(c.Stiffness, 0):
		return fmt.Errorf("%w: %v", ErrInvalidStiffness, c.Stiffness)
	case !(c.Spacing > 0) || math.IsInf(c.Spacing, 0):
		return fmt.Errorf("%w: spacing %v", ErrInvalidParams, c.Spacing)
	case !(c.ClothMass > 0), !(c.AttractorMass > 0), !(c.SpawnMass > 0):
		return ErrInvalidMass
	case !isFinite(c.SpawnSpeed):
		return fmt.Errorf("%w: spawn speed %v", ErrInvalidParams, c.SpawnSpeed)
	}
	return nil
}
