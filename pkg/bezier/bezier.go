// Package bezier implements cubic Bézier curve primitives: De Casteljau
// subdivision, straight-line construction, and control-point reversal.
package bezier

import "github.com/lucidcoons/meshgrad/pkg/vec2"

// Cubic is an ordered 4-tuple of control points [P0, P1, P2, P3].
type Cubic [4]vec2.Vec2

// StraightLine builds the cubic Bézier that traces the straight segment
// from p0 to p1. P1 is Lerp(1/3, p1, p0), the 2/3 mark measured from p0,
// and P2 is Lerp(2/3, p1, p0), the 1/3 mark, so the inner control points
// sit in reverse order along the segment.
func StraightLine(p0, p1 vec2.Vec2) Cubic {
	return Cubic{
		p0,
		vec2.Lerp(1.0/3, p1, p0),
		vec2.Lerp(2.0/3, p1, p0),
		p1,
	}
}

// Inverse reverses the control-point order, turning a curve from P0->P3
// into one running P3->P0 along the same path.
func Inverse(c Cubic) Cubic {
	return Cubic{c[3], c[2], c[1], c[0]}
}

// DivideCubic splits c at t=0.5 via De Casteljau's algorithm, returning the
// left and right halves. left[3] == right[0] == the curve's midpoint.
func DivideCubic(c Cubic) (left, right Cubic) {
	p01 := vec2.Midpoint(c[0], c[1])
	p12 := vec2.Midpoint(c[1], c[2])
	p23 := vec2.Midpoint(c[2], c[3])

	p012 := vec2.Midpoint(p01, p12)
	p123 := vec2.Midpoint(p12, p23)

	p0123 := vec2.Midpoint(p012, p123)

	left = Cubic{c[0], p01, p012, p0123}
	right = Cubic{p0123, p123, p23, c[3]}
	return left, right
}

// Eval evaluates c at parameter t in [0,1] using direct De Casteljau
// interpolation (not FFD — used for overlay tessellation and tests where a
// single-point evaluation is cheaper than standing up FFD state).
func Eval(c Cubic, t float64) vec2.Vec2 {
	a := vec2.Lerp(t, c[0], c[1])
	b := vec2.Lerp(t, c[1], c[2])
	d := vec2.Lerp(t, c[2], c[3])
	ab := vec2.Lerp(t, a, b)
	bd := vec2.Lerp(t, b, d)
	return vec2.Lerp(t, ab, bd)
}
