// Package ffd implements the Fast Forward Differencing kernel used by the
// CPU rasterizer: representing a cubic polynomial by its forward-difference
// coefficients and advancing it by repeated addition instead of repeated
// evaluation.
package ffd

import (
	"math"

	"github.com/lucidcoons/meshgrad/pkg/bezier"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

// Coefficient holds the (A,B,C) forward-difference triple for one axis of a
// cubic polynomial. Stepping applies A,B,C <- A+B, B+C, C; the running
// value accumulates A at each step.
type Coefficient struct {
	A, B, C float64
}

// Step advances the coefficient by one unit step and returns the delta to
// apply to the running value.
func (c *Coefficient) Step() float64 {
	delta := c.A
	c.A += c.B
	c.B += c.C
	return delta
}

// Halve transforms the coefficient to represent half the original step
// size, per the standard FFD step-halving identity.
func (c Coefficient) Halve() Coefficient {
	cp := c.C / 8
	bp := c.B/4 - cp
	ap := (c.A - bp) / 2
	return Coefficient{A: ap, B: bp, C: cp}
}

// AxisPair carries the per-axis (x, y) forward-difference coefficients for
// one cubic curve.
type AxisPair struct {
	X, Y Coefficient
}

// Step advances both axes by one unit step and returns the (dx, dy) delta.
func (p *AxisPair) Step() vec2.Vec2 {
	return vec2.Vec2{X: p.X.Step(), Y: p.Y.Step()}
}

// Halve halves both axes' step size.
func (p AxisPair) Halve() AxisPair {
	return AxisPair{X: p.X.Halve(), Y: p.Y.Halve()}
}

// FromCubic converts a cubic Bézier into its forward-difference
// coefficients, evaluated over the full [0,1] parameter range (one unit
// step covers the whole curve; Halve is applied afterward to reach the
// desired step count).
func FromCubic(c bezier.Cubic) AxisPair {
	return AxisPair{
		X: axisCoefficient(c[0].X, c[1].X, c[2].X, c[3].X),
		Y: axisCoefficient(c[0].Y, c[1].Y, c[2].Y, c[3].Y),
	}
}

func axisCoefficient(p0, p1, p2, p3 float64) Coefficient {
	return Coefficient{
		A: p3 - p0,
		B: 6 * (p3 - 2*p2 + p1),
		C: 6 * (p3 - 3*p2 + 3*p1 - p0),
	}
}

// HalveN halves the coefficient shiftStep times, producing the
// per-(1/2^shiftStep)-step delta coefficients.
func HalveN(p AxisPair, shiftStep int) AxisPair {
	for i := 0; i < shiftStep; i++ {
		p = p.Halve()
	}
	return p
}

// EstimateStepCount computes the shiftStep exponent for a curve: the
// number of per-step halvings such that walking 2^shiftStep unit steps
// stays visually smooth. Based on the squared chord/diagonal distances of
// the control polygon.
func EstimateStepCount(c bezier.Cubic) int {
	d1 := vec2.DistanceSq(c[0], c[1])
	d2 := vec2.DistanceSq(c[2], c[3])
	d3 := vec2.DistanceSq(c[0], c[2]) / 4
	d4 := vec2.DistanceSq(c[1], c[3]) / 4

	maxD := d1
	if d2 > maxD {
		maxD = d2
	}
	if d3 > maxD {
		maxD = d3
	}
	if d4 > maxD {
		maxD = d4
	}

	// math.Frexp normalizes the mantissa to [0.5,1); the estimate uses the
	// exponent of the [1,2) normalization, one lower, so a degenerate curve
	// (max(1, 18*d) == 1) estimates 0.
	_, exponent := math.Frexp(math.Max(1, 18*maxD))
	exponent--
	steps := (exponent + 1) / 2
	if steps < 0 {
		steps = 0
	}
	return steps
}
