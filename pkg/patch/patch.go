// Package patch implements Coons-patch and tensor-product-patch algebra:
// constructing Coons patches, converting them to tensor form, and the
// quad-tree subdivision used by both rasterizers.
package patch

import (
	"fmt"

	"github.com/lucidcoons/meshgrad/pkg/bezier"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

// Coons is a Coons patch: four boundary curves plus one value (typically a
// color) at each of its four corners. North[0]==West[3] (NW), North[3]==
// East[0] (NE), East[3]==South[0] (SE), South[3]==West[0] (SW).
type Coons[T any] struct {
	North, East, South, West bezier.Cubic
	Values                   vec2.ParametricValues[T]
}

// CheckCorners reports an error identifying which corner fails to meet if
// the boundary curves of c don't share endpoints at the compass corners.
func CheckCorners[T any](c Coons[T]) error {
	const eps = 1e-9
	if dist(c.North[0], c.West[3]) > eps {
		return fmt.Errorf("patch: NW corner mismatch: north[0]=%v west[3]=%v", c.North[0], c.West[3])
	}
	if dist(c.North[3], c.East[0]) > eps {
		return fmt.Errorf("patch: NE corner mismatch: north[3]=%v east[0]=%v", c.North[3], c.East[0])
	}
	if dist(c.East[3], c.South[0]) > eps {
		return fmt.Errorf("patch: SE corner mismatch: east[3]=%v south[0]=%v", c.East[3], c.South[0])
	}
	if dist(c.South[3], c.West[0]) > eps {
		return fmt.Errorf("patch: SW corner mismatch: south[3]=%v west[0]=%v", c.South[3], c.West[0])
	}
	return nil
}

func dist(a, b vec2.Vec2) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Tensor is a tensor-product Bézier patch: four parallel cubic curves,
// conceptually the rows of a 4x4 control-point grid. Curve0 is the north
// boundary; Curve3 is the south boundary REVERSED, so its P0 is the SW
// corner. This orientation is load-bearing for every consumer and must
// not be "corrected".
type Tensor[T any] struct {
	Curve0, Curve1, Curve2, Curve3 bezier.Cubic
	Values                         vec2.ParametricValues[T]
}

// grid returns the 4x4 control-point grid with rows in Curve0..Curve3
// order, each row running west (column 0) to east (column 3).
func (t Tensor[T]) grid() [4]bezier.Cubic {
	return [4]bezier.Cubic{t.Curve0, t.Curve1, t.Curve2, t.Curve3}
}

func fromGrid[T any](g [4]bezier.Cubic, values vec2.ParametricValues[T]) Tensor[T] {
	return Tensor[T]{Curve0: g[0], Curve1: g[1], Curve2: g[2], Curve3: g[3], Values: values}
}

// CoonsToTensor converts a Coons patch to its tensor-product equivalent.
// Boundary rows/columns copy directly from north, reversed south, reversed
// west, and east; the four interior control points are computed by the
// classical Coons-to-Bézier interior-point formula (four symmetric
// rotations of the same weighted combination of boundary points). Corner
// values pass through unchanged.
func CoonsToTensor[T any](c Coons[T]) Tensor[T] {
	var p [4][4]vec2.Vec2

	for j := 0; j < 4; j++ {
		p[0][j] = c.North[j]
	}
	southRev := bezier.Inverse(c.South)
	for j := 0; j < 4; j++ {
		p[3][j] = southRev[j]
	}
	westRev := bezier.Inverse(c.West)
	p[1][0] = westRev[1]
	p[2][0] = westRev[2]
	p[1][3] = c.East[1]
	p[2][3] = c.East[2]

	for _, rc := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		r, col := rc[0], rc[1]
		rNear, rFar := 0, 3
		if r == 2 {
			rNear, rFar = 3, 0
		}
		cNear, cFar := 0, 3
		if col == 2 {
			cNear, cFar = 3, 0
		}
		a := p[rNear][cNear]
		b := p[rNear][col]
		cc := p[r][cNear]
		d := p[rNear][cFar]
		e := p[rFar][cNear]
		f := p[rFar][col]
		g := p[r][cFar]
		h := p[rFar][cFar]

		p[r][col] = vec2.V2(
			(-4*a.X+6*(b.X+cc.X)-2*(d.X+e.X)+3*(f.X+g.X)-h.X)/9,
			(-4*a.Y+6*(b.Y+cc.Y)-2*(d.Y+e.Y)+3*(f.Y+g.Y)-h.Y)/9,
		)
	}

	grid := [4]bezier.Cubic{
		{p[0][0], p[0][1], p[0][2], p[0][3]},
		{p[1][0], p[1][1], p[1][2], p[1][3]},
		{p[2][0], p[2][1], p[2][2], p[2][3]},
		{p[3][0], p[3][1], p[3][2], p[3][3]},
	}
	return fromGrid(grid, c.Values)
}

// Transpose swaps the rows and columns of the tensor grid and swaps East
// and West in the corner values (North and South are unchanged).
func Transpose[T any](t Tensor[T]) Tensor[T] {
	g := t.grid()
	var out [4]bezier.Cubic
	for i := 0; i < 4; i++ {
		var row bezier.Cubic
		for j := 0; j < 4; j++ {
			row[j] = g[j][i]
		}
		out[i] = row
	}
	values := t.Values
	values.East, values.West = values.West, values.East
	return fromGrid(out, values)
}

// HorizontalSubdivide splits each of the tensor patch's four curves at
// t=0.5, producing a west half and an east half. Corner values are split
// using midNE=midpoint(N,E) and midSW=midpoint(W,S).
func HorizontalSubdivide[T any](t Tensor[T], lerp func(v float64, a, b T) T) (west, east Tensor[T]) {
	g := t.grid()
	var gw, ge [4]bezier.Cubic
	for i := 0; i < 4; i++ {
		l, r := bezier.DivideCubic(g[i])
		gw[i], ge[i] = l, r
	}

	midNE := lerp(0.5, t.Values.North, t.Values.East)
	midSW := lerp(0.5, t.Values.West, t.Values.South)

	westValues := vec2.ParametricValues[T]{North: t.Values.North, East: midNE, South: midSW, West: t.Values.West}
	eastValues := vec2.ParametricValues[T]{North: midNE, East: t.Values.East, South: t.Values.South, West: midSW}

	return fromGrid(gw, westValues), fromGrid(ge, eastValues)
}

// Quadrants holds the four sub-patches produced by one level of tensor
// quad-tree subdivision.
type Quadrants[T any] struct {
	NW, NE, SW, SE Tensor[T]
}

// Subdivide splits t into four quadrant sub-patches: horizontal-split,
// transpose each half, horizontal-split each again, transpose back.
func Subdivide[T any](t Tensor[T], lerp func(v float64, a, b T) T) Quadrants[T] {
	west, east := HorizontalSubdivide(t, lerp)
	westT := Transpose(west)
	eastT := Transpose(east)

	wn, ws := HorizontalSubdivide(westT, lerp)
	en, es := HorizontalSubdivide(eastT, lerp)

	return Quadrants[T]{
		NW: Transpose(wn),
		SW: Transpose(ws),
		NE: Transpose(en),
		SE: Transpose(es),
	}
}

// curveLerp returns the control-point-wise linear interpolation between
// two cubics, treated as vectors in (Vec2)^4.
func curveLerp(t float64, a, b bezier.Cubic) bezier.Cubic {
	var out bezier.Cubic
	for i := range out {
		out[i] = vec2.Lerp(t, a[i], b[i])
	}
	return out
}

func curveAdd(a, b bezier.Cubic) bezier.Cubic {
	var out bezier.Cubic
	for i := range out {
		out[i] = a[i].Add(b[i])
	}
	return out
}

func curveSub(a, b bezier.Cubic) bezier.Cubic {
	var out bezier.Cubic
	for i := range out {
		out[i] = a[i].Sub(b[i])
	}
	return out
}

// splitterCurve builds one of the two interior subdivision curves for a
// Coons patch: a cubic running between the midpoints of a pair of opposing
// boundaries, shaped like the average of the other pair of boundaries but
// corrected to pass exactly through the true (curved) midpoints instead of
// their flat corner-lerp estimate.
//
//	split = midOpposing + straightLine(midA, midB) - straightLine(linearMidA, linearMidB)
func splitterCurve(along0, along3 bezier.Cubic, boundaryA, boundaryB bezier.Cubic) bezier.Cubic {
	midOpposing := curveLerp(0.5, along0, along3)

	midA, _ := bezier.DivideCubic(boundaryA)
	midB, _ := bezier.DivideCubic(boundaryB)
	actual := bezier.StraightLine(midA[3], midB[3])

	linearMidA := vec2.Lerp(0.5, boundaryA[0], boundaryA[3])
	linearMidB := vec2.Lerp(0.5, boundaryB[0], boundaryB[3])
	flat := bezier.StraightLine(linearMidA, linearMidB)

	return curveSub(curveAdd(midOpposing, actual), flat)
}

// CoonsSubdivide splits a Coons patch into four quadrant sub-patches by
// constructing the two interior splitter curves (vertical, between the
// midpoints of north and south; horizontal, between the midpoints of west
// and east) and combining halves of the boundary curves with halves of the
// splitters. Corner values subdivide via midpoints, as in
// HorizontalSubdivide.
func CoonsSubdivide[T any](c Coons[T], lerp func(v float64, a, b T) T) Quadrants[T] {
	vertical := splitterCurve(bezier.Inverse(c.West), c.East, c.North, c.South)
	horizontal := splitterCurve(c.North, bezier.Inverse(c.South), c.West, c.East)

	northL, northR := bezier.DivideCubic(c.North)
	southR, southL := bezier.DivideCubic(c.South) // south runs SE->SW, so its t=0.5 "left" half is the east side
	eastN, eastS := bezier.DivideCubic(c.East)
	westN, westS := bezier.DivideCubic(bezier.Inverse(c.West))
	vertN, vertS := bezier.DivideCubic(vertical)
	horizN, horizS := bezier.DivideCubic(horizontal)

	midN := lerp(0.5, c.Values.North, c.Values.East)
	midS := lerp(0.5, c.Values.West, c.Values.South)
	midW := lerp(0.5, c.Values.North, c.Values.West)
	midE := lerp(0.5, c.Values.East, c.Values.South)
	center := lerp(0.5, midW, midE)

	nw := Coons[T]{
		North: northL,
		East:  vertN,
		South: bezier.Inverse(horizN),
		West:  bezier.Inverse(westN),
		Values: vec2.ParametricValues[T]{
			North: c.Values.North, East: midN, South: center, West: midW,
		},
	}
	ne := Coons[T]{
		North: northR,
		East:  eastN,
		South: bezier.Inverse(horizS),
		West:  bezier.Inverse(vertN),
		Values: vec2.ParametricValues[T]{
			North: midN, East: c.Values.East, South: midE, West: center,
		},
	}
	sw := Coons[T]{
		North: horizN,
		East:  vertS,
		South: southL,
		West:  bezier.Inverse(westS),
		Values: vec2.ParametricValues[T]{
			North: midW, East: center, South: midS, West: c.Values.West,
		},
	}
	se := Coons[T]{
		North: horizS,
		East:  eastS,
		South: southR,
		West:  bezier.Inverse(vertS),
		Values: vec2.ParametricValues[T]{
			North: center, East: midE, South: c.Values.South, West: midS,
		},
	}

	return Quadrants[T]{
		NW: CoonsToTensor(nw),
		NE: CoonsToTensor(ne),
		SW: CoonsToTensor(sw),
		SE: CoonsToTensor(se),
	}
}
