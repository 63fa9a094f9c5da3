package vec2

import "testing"

func TestArithmetic(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, 5)

	if got := a.Add(b); got != (Vec2{4, 7}) {
		t.Errorf("Add = %v, want {4 7}", got)
	}
	if got := b.Sub(a); got != (Vec2{2, 3}) {
		t.Errorf("Sub = %v, want {2 3}", got)
	}
	if got := a.Scale(2); got != (Vec2{2, 4}) {
		t.Errorf("Scale = %v, want {2 4}", got)
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(V2(0, 0), V2(10, 20))
	if got != (Vec2{5, 10}) {
		t.Errorf("Midpoint = %v, want {5 10}", got)
	}
}

func TestMean(t *testing.T) {
	if got := Mean(nil); got != (Vec2{}) {
		t.Errorf("Mean(nil) = %v, want zero vector", got)
	}
	got := Mean([]Vec2{V2(0, 0), V2(10, 0), V2(5, 30)})
	want := V2(5, 10)
	if got != want {
		t.Errorf("Mean = %v, want %v", got, want)
	}
}

func TestLerp(t *testing.T) {
	a, b := V2(0, 0), V2(10, 20)
	if got := Lerp(0, a, b); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := Lerp(1, a, b); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := Lerp(0.5, a, b); got != (Vec2{5, 10}) {
		t.Errorf("Lerp(0.5) = %v, want {5 10}", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		lo, hi, x, want float64
	}{
		{0, 1, -5, 0},
		{0, 1, 5, 1},
		{0, 1, 0.5, 0.5},
	}
	for _, tc := range tests {
		if got := Clamp(tc.lo, tc.hi, tc.x); got != tc.want {
			t.Errorf("Clamp(%v,%v,%v) = %v, want %v", tc.lo, tc.hi, tc.x, got, tc.want)
		}
	}
}

func TestDistanceSq(t *testing.T) {
	if got := DistanceSq(V2(0, 0), V2(3, 4)); got != 25 {
		t.Errorf("DistanceSq = %v, want 25", got)
	}
}
