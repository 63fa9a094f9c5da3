// Package vec2 provides 2D vector arithmetic and generic interpolation
// helpers shared by the Bézier, patch, and rasterization packages.
package vec2

// Vec2 is a 2D vector. It is used both as canvas-space geometry and as a
// unit-square [0,1]^2 UV coordinate, depending on context.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Midpoint returns the midpoint of a and b.
func Midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Mean returns the average of an ordered sequence of points.
// Returns the zero vector for an empty sequence.
func Mean(points []Vec2) Vec2 {
	if len(points) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// Lerp returns (1-t)*a + t*b.
func Lerp(t float64, a, b Vec2) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Clamp saturates x to the closed interval [lo, hi].
func Clamp(lo, hi, x float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// DistanceSq returns the squared distance between a and b. Used by the FFD
// step-count estimator, which only ever compares distances and so never
// needs the square root.
func DistanceSq(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
