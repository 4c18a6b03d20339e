package cloth

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// InputState is the pointer state the world reads during a tick. Positions
// are in pixels; Depth is a pixel-equivalent distance along z.
type InputState struct {
	X, Y  float64
	Depth float64

	Down         bool
	DownX, DownY float64 // pointer position when the button went down
}

// Target is the pointer position in simulation space.
func (in InputState) Target(scale float64) mgl64.Vec3 {
	return toSim(in.X, in.Y, in.Depth, scale)
}

// Cut returns the cut gesture described by this input.
func (in InputState) Cut() CutStroke {
	return CutStroke{
		Active: in.Down,
		From:   mgl64.Vec2{in.DownX, in.DownY},
		To:     mgl64.Vec2{in.X, in.Y},
	}
}

// CutStroke is a knife stroke in pixel space.
type CutStroke struct {
	Active   bool
	From, To mgl64.Vec2
}

// SharedInput holds input written by event handlers and read by the tick
// loop. All methods are safe for concurrent use.
type SharedInput struct {
	mu    sync.Mutex
	state InputState
}

// NewSharedInput starts with the pointer at (x, y) and the button released.
func NewSharedInput(x, y float64) *SharedInput {
	return &SharedInput{state: InputState{X: x, Y: y}}
}

// MoveTo records a new pointer position.
func (s *SharedInput) MoveTo(x, y float64) {
	s.mu.Lock()
	s.state.X, s.state.Y = x, y
	s.mu.Unlock()
}

// Press marks the button held and captures the press origin. Pressing while
// already held keeps the first origin.
func (s *SharedInput) Press(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.X, s.state.Y = x, y
	if s.state.Down {
		return
	}
	s.state.Down = true
	s.state.DownX, s.state.DownY = x, y
}

// Release marks the button up.
func (s *SharedInput) Release() {
	s.mu.Lock()
	s.state.Down = false
	s.mu.Unlock()
}

// AdjustDepth shifts the depth control by delta.
func (s *SharedInput) AdjustDepth(delta float64) {
	s.mu.Lock()
	s.state.Depth += delta
	s.mu.Unlock()
}

// Snapshot returns a consistent copy of the current state.
func (s *SharedInput) Snapshot() InputState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
