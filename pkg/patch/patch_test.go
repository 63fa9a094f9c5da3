package patch

import (
	"testing"

	"github.com/lucidcoons/meshgrad/pkg/bezier"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

func rectCoons(t *testing.T) Coons[int] {
	t.Helper()
	nw, ne, se, sw := vec2.V2(0, 0), vec2.V2(10, 0), vec2.V2(10, 10), vec2.V2(0, 10)
	return Coons[int]{
		North: bezier.StraightLine(nw, ne),
		East:  bezier.StraightLine(ne, se),
		South: bezier.StraightLine(se, sw),
		West:  bezier.StraightLine(sw, nw),
		Values: vec2.ParametricValues[int]{North: 1, East: 2, South: 3, West: 4},
	}
}

func TestCheckCornersValid(t *testing.T) {
	if err := CheckCorners(rectCoons(t)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckCornersInvalid(t *testing.T) {
	c := rectCoons(t)
	c.East[0] = vec2.V2(999, 999)
	if err := CheckCorners(c); err == nil {
		t.Error("expected a corner-mismatch error")
	}
}

func TestCoonsToTensorCornersPassThrough(t *testing.T) {
	c := rectCoons(t)
	tensor := CoonsToTensor(c)

	if tensor.Curve0[0] != c.North[0] {
		t.Errorf("NW = %v, want %v", tensor.Curve0[0], c.North[0])
	}
	if tensor.Curve0[3] != c.North[3] {
		t.Errorf("NE = %v, want %v", tensor.Curve0[3], c.North[3])
	}
	if tensor.Curve3[0] != c.South[3] {
		t.Errorf("SW = %v, want %v", tensor.Curve3[0], c.South[3])
	}
	if tensor.Curve3[3] != c.South[0] {
		t.Errorf("SE = %v, want %v", tensor.Curve3[3], c.South[0])
	}
	if tensor.Values != c.Values {
		t.Errorf("corner values = %+v, want %+v", tensor.Values, c.Values)
	}
}

func TestCoonsToTensorDeterministic(t *testing.T) {
	c := rectCoons(t)
	a := CoonsToTensor(c)
	b := CoonsToTensor(c)
	if a != b {
		t.Error("CoonsToTensor is not bit-identical across calls with the same input")
	}
}

func TestTransposeSwapsEastWest(t *testing.T) {
	c := rectCoons(t)
	tensor := CoonsToTensor(c)
	transposed := Transpose(tensor)

	if transposed.Values.North != tensor.Values.North {
		t.Error("North should be unchanged by Transpose")
	}
	if transposed.Values.South != tensor.Values.South {
		t.Error("South should be unchanged by Transpose")
	}
	if transposed.Values.East != tensor.Values.West || transposed.Values.West != tensor.Values.East {
		t.Error("Transpose should swap East and West")
	}
	if Transpose(transposed) != tensor {
		t.Error("Transpose should be its own inverse")
	}
}

func TestHorizontalSubdivideCorners(t *testing.T) {
	c := rectCoons(t)
	tensor := CoonsToTensor(c)
	west, east := HorizontalSubdivide(tensor, lerpInt)

	if west.Values.North != tensor.Values.North {
		t.Error("west.North should equal original North")
	}
	if east.Values.East != tensor.Values.East {
		t.Error("east.East should equal original East")
	}
	if west.Values.East != east.Values.North || west.Values.South != east.Values.West {
		t.Error("the shared midpoint column should match between west and east halves")
	}
	if west.Curve0[3] != east.Curve0[0] {
		t.Error("west and east halves should meet at the split point")
	}
}

func TestSubdivideProducesFourQuadrants(t *testing.T) {
	c := rectCoons(t)
	tensor := CoonsToTensor(c)
	quads := Subdivide(tensor, lerpInt)

	// Screen-space union of the four leaves should reproduce the original
	// patch's bounding quad (the outer corners of the 2x2 split).
	if quads.NW.Curve0[0] != tensor.Curve0[0] {
		t.Errorf("NW origin corner = %v, want %v", quads.NW.Curve0[0], tensor.Curve0[0])
	}
	if quads.NE.Curve0[3] != tensor.Curve0[3] {
		t.Errorf("NE corner = %v, want %v", quads.NE.Curve0[3], tensor.Curve0[3])
	}
	if quads.SW.Curve3[0] != tensor.Curve3[0] {
		t.Errorf("SW corner = %v, want %v", quads.SW.Curve3[0], tensor.Curve3[0])
	}
	if quads.SE.Curve3[3] != tensor.Curve3[3] {
		t.Errorf("SE corner = %v, want %v", quads.SE.Curve3[3], tensor.Curve3[3])
	}
}

func TestCoonsSubdivideMeetsAtCenter(t *testing.T) {
	c := rectCoons(t)
	quads := CoonsSubdivide(c, lerpInt)

	// All four sub-patches' corner colors should agree on the shared
	// center vertex: NW's South corner, NE's West corner, SW's East
	// corner, and SE's North corner all sit at the same lattice position.
	center := quads.NW.Values.South
	if quads.NE.Values.West != center || quads.SW.Values.East != center || quads.SE.Values.North != center {
		t.Error("sub-patches do not agree on the center grid vertex color")
	}
}

func lerpInt(t float64, a, b int) int {
	return int(float64(a) + (float64(b)-float64(a))*t)
}
