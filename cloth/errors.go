package cloth

import "errors"

// Precondition errors returned when building particles, links and worlds.
var (
	ErrInvalidMass      = errors.New("cloth: mass must be positive")
	ErrInvalidDensity   = errors.New("cloth: density must be positive")
	ErrInvalidLength    = errors.New("cloth: rest length must be positive")
	ErrInvalidStiffness = errors.New("cloth: stiffness must be positive")
	ErrUnknownParticle  = errors.New("cloth: unknown particle")
	ErrSelfLink         = errors.New("cloth: cannot link a particle to itself")
	ErrInvalidParams    = errors.New("cloth: invalid parameters")
)
