package ffd

import (
	"testing"

	"github.com/lucidcoons/meshgrad/pkg/bezier"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

func BenchmarkFromCubic(b *testing.B) {
	curve := bezier.Cubic{vec2.V2(0, 0), vec2.V2(10, 80), vec2.V2(60, 80), vec2.V2(100, 0)}

	for b.Loop() {
		_ = FromCubic(curve)
	}
}

func BenchmarkEstimateStepCount(b *testing.B) {
	curve := bezier.Cubic{vec2.V2(0, 0), vec2.V2(10, 80), vec2.V2(60, 80), vec2.V2(100, 0)}

	for b.Loop() {
		_ = EstimateStepCount(curve)
	}
}

func BenchmarkHalveN(b *testing.B) {
	curve := bezier.Cubic{vec2.V2(0, 0), vec2.V2(10, 80), vec2.V2(60, 80), vec2.V2(100, 0)}
	p := FromCubic(curve)

	for b.Loop() {
		_ = HalveN(p, 7)
	}
}

func BenchmarkCoefficientStep(b *testing.B) {
	curve := bezier.Cubic{vec2.V2(0, 0), vec2.V2(10, 80), vec2.V2(60, 80), vec2.V2(100, 0)}
	coeff := HalveN(FromCubic(curve), 7)

	for b.Loop() {
		_ = coeff.Step()
	}
}
