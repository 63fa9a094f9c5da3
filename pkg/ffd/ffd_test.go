package ffd

import (
	"math"
	"testing"

	"github.com/lucidcoons/meshgrad/pkg/bezier"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

func TestStepReconstructsEndpoints(t *testing.T) {
	curve := bezier.Cubic{vec2.V2(0, 0), vec2.V2(10, 80), vec2.V2(60, 80), vec2.V2(100, 0)}

	const shiftStep = 6
	maxSteps := 1 << shiftStep

	coeff := HalveN(FromCubic(curve), shiftStep)
	point := curve[0]
	for s := 0; s < maxSteps; s++ {
		delta := coeff.Step()
		point = point.Add(delta)
	}

	const eps = 1e-9
	if math.Abs(point.X-curve[3].X) > eps || math.Abs(point.Y-curve[3].Y) > eps {
		t.Errorf("reconstructed endpoint = %v, want %v", point, curve[3])
	}
}

func TestEstimateStepCountDegenerate(t *testing.T) {
	p := vec2.V2(50, 50)
	curve := bezier.Cubic{p, p, p, p}
	if got := EstimateStepCount(curve); got != 0 {
		t.Errorf("EstimateStepCount(degenerate) = %v, want 0", got)
	}
}

func TestEstimateStepCountGrowsWithSize(t *testing.T) {
	small := bezier.Cubic{vec2.V2(0, 0), vec2.V2(1, 1), vec2.V2(2, 1), vec2.V2(3, 0)}
	large := bezier.Cubic{vec2.V2(0, 0), vec2.V2(100, 400), vec2.V2(400, 400), vec2.V2(500, 0)}

	if EstimateStepCount(large) <= EstimateStepCount(small) {
		t.Error("a larger curve should need more subdivision steps than a smaller one")
	}
}

func TestHalveSplitsOneStepIntoTwo(t *testing.T) {
	curve := bezier.Cubic{vec2.V2(0, 0), vec2.V2(10, 80), vec2.V2(60, 80), vec2.V2(100, 0)}
	full := FromCubic(curve)
	halved := full.Halve()

	// Walking 2 half-steps should reconstruct the same endpoint as 1 full step.
	p1 := curve[0]
	p1 = p1.Add(full.Step())

	p2 := curve[0]
	h := halved
	p2 = p2.Add(h.Step())
	p2 = p2.Add(h.Step())

	const eps = 1e-9
	if math.Abs(p1.X-p2.X) > eps || math.Abs(p1.Y-p2.Y) > eps {
		t.Errorf("two half-steps = %v, want one full step = %v", p2, p1)
	}
}
