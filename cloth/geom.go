package cloth

import "github.com/go-gl/mathgl/mgl64"

// Distance is the Euclidean distance between two points in simulation space.
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// orientation classifies the turn p -> q -> r: 0 collinear, 1 clockwise,
// 2 counter-clockwise.
func orientation(p, q, r mgl64.Vec2) int {
	val := (q.Y()-p.Y())*(r.X()-q.X()) - (q.X()-p.X())*(r.Y()-q.Y())
	switch {
	case val == 0:
		return 0
	case val > 0:
		return 1
	default:
		return 2
	}
}

// SegmentsIntersect reports whether segment p1-q1 crosses segment p2-q2.
// Only the general case is detected: collinear overlaps are not reported,
// and neither is anything involving a zero-length segment.
func SegmentsIntersect(p1, q1, p2, q2 mgl64.Vec2) bool {
	if p1 == q1 || p2 == q2 {
		return false
	}
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)
	return o1 != o2 && o3 != o4
}

// toPixels projects a simulation-space point onto the screen plane.
func toPixels(v mgl64.Vec3, scale float64) mgl64.Vec2 {
	return mgl64.Vec2{v.X() * scale, v.Y() * scale}
}

// toSim lifts a pixel-space point and depth into simulation space.
func toSim(x, y, depth, scale float64) mgl64.Vec3 {
	return mgl64.Vec3{x / scale, y / scale, depth / scale}
}

// Bounds is the axis-aligned simulation volume particles bounce inside.
type Bounds struct {
	Min, Max mgl64.Vec3
}

// ScreenBounds returns the volume covering a width x height pixel screen,
// with depth limited to ±depth simulation units.
func ScreenBounds(width, height, scale, depth float64) Bounds {
	return Bounds{
		Min: mgl64.Vec3{0, 0, -depth},
		Max: mgl64.Vec3{width / scale, height / scale, depth},
	}
}

// Center is the midpoint of the volume.
func (b Bounds) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}
