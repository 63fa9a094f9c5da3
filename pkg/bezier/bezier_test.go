package bezier

import (
	"math"
	"testing"

	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

func TestStraightLine(t *testing.T) {
	p0, p1 := vec2.V2(0, 0), vec2.V2(9, 0)
	c := StraightLine(p0, p1)
	if c[0] != p0 || c[3] != p1 {
		t.Fatalf("endpoints = %v,%v want %v,%v", c[0], c[3], p0, p1)
	}
	if c[1] != vec2.V2(6, 0) || c[2] != vec2.V2(3, 0) {
		t.Errorf("control points = %v,%v want (6,0),(3,0)", c[1], c[2])
	}
}

func TestInverse(t *testing.T) {
	c := Cubic{vec2.V2(0, 0), vec2.V2(1, 1), vec2.V2(2, 2), vec2.V2(3, 3)}
	inv := Inverse(c)
	for i := 0; i < 4; i++ {
		if inv[i] != c[3-i] {
			t.Errorf("Inverse[%d] = %v, want %v", i, inv[i], c[3-i])
		}
	}
	if Inverse(inv) != c {
		t.Error("Inverse is not its own inverse")
	}
}

func TestDivideCubic(t *testing.T) {
	c := Cubic{vec2.V2(0, 0), vec2.V2(10, 50), vec2.V2(40, 50), vec2.V2(50, 0)}
	left, right := DivideCubic(c)

	if left[3] != right[0] {
		t.Errorf("left[3]=%v != right[0]=%v", left[3], right[0])
	}
	if left[0] != c[0] {
		t.Errorf("left[0]=%v != c[0]=%v", left[0], c[0])
	}
	if right[3] != c[3] {
		t.Errorf("right[3]=%v != c[3]=%v", right[3], c[3])
	}

	const eps = 1e-12
	if d := dist(Eval(left, 0), c[0]); d > eps {
		t.Errorf("left at t=0 diverges from original by %v", d)
	}
	if d := dist(Eval(right, 1), c[3]); d > eps {
		t.Errorf("right at t=1 diverges from original by %v", d)
	}
	if d := dist(Eval(left, 1), Eval(c, 0.5)); d > eps {
		t.Errorf("left at t=1 diverges from original midpoint by %v", d)
	}
	if d := dist(Eval(right, 0), Eval(c, 0.5)); d > eps {
		t.Errorf("right at t=0 diverges from original midpoint by %v", d)
	}
}

func TestEvalEndpoints(t *testing.T) {
	c := Cubic{vec2.V2(1, 2), vec2.V2(3, 4), vec2.V2(5, 6), vec2.V2(7, 8)}
	if Eval(c, 0) != c[0] {
		t.Errorf("Eval(0) = %v, want %v", Eval(c, 0), c[0])
	}
	if Eval(c, 1) != c[3] {
		t.Errorf("Eval(1) = %v, want %v", Eval(c, 1), c[3])
	}
}

func dist(a, b vec2.Vec2) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Hypot(dx, dy)
}
