// Package cloth simulates a tearable cloth of point masses joined by elastic
// links, projectiles that collide with it and a pointer-driven attractor.
//
// A World is advanced with Step, one fixed tick at a time. Pointer state is
// passed in explicitly as an InputState, so a tick is a pure function of the
// world and its input and can be reproduced in tests.
package cloth
