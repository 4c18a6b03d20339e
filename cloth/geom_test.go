package cloth

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, q1, p2, q2 mgl64.Vec2
		want           bool
	}{
		{"crossing", mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10}, mgl64.Vec2{0, 10}, mgl64.Vec2{10, 0}, true},
		{"perpendicular", mgl64.Vec2{0, 5}, mgl64.Vec2{10, 5}, mgl64.Vec2{5, 0}, mgl64.Vec2{5, 10}, true},
		{"parallel", mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{0, 5}, mgl64.Vec2{10, 5}, false},
		{"short of each other", mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1}, mgl64.Vec2{5, 0}, mgl64.Vec2{6, -3}, false},
		{"collinear overlap", mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{5, 0}, mgl64.Vec2{15, 0}, false},
		{"zero length cut", mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10}, mgl64.Vec2{5, 5}, mgl64.Vec2{5, 5}, false},
		{"zero length link", mgl64.Vec2{5, 5}, mgl64.Vec2{5, 5}, mgl64.Vec2{0, 10}, mgl64.Vec2{10, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.p1, tt.q1, tt.p2, tt.q2); got != tt.want {
				t.Errorf("SegmentsIntersect = %v, want %v", got, tt.want)
			}
			// the test is symmetric in the two segments
			if got := SegmentsIntersect(tt.p2, tt.q2, tt.p1, tt.q1); got != tt.want {
				t.Errorf("swapped SegmentsIntersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 2, 2}); d != 3 {
		t.Fatalf("Distance = %v, want 3", d)
	}
}

func TestScreenBounds(t *testing.T) {
	b := ScreenBounds(800, 600, 10, 10)
	want := Bounds{Min: mgl64.Vec3{0, 0, -10}, Max: mgl64.Vec3{80, 60, 10}}
	if b != want {
		t.Fatalf("ScreenBounds = %v, want %v", b, want)
	}
	if c := b.Center(); c != (mgl64.Vec3{40, 30, 0}) {
		t.Fatalf("Center = %v", c)
	}
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
