// Package meshgrid assembles the editable control-point lattice into row
// and column Bézier curves and combines them with corner colors into
// per-cell Coons patches.
package meshgrid

import (
	"fmt"

	"github.com/lucidcoons/meshgrad/pkg/bezier"
	"github.com/lucidcoons/meshgrad/pkg/colorspace"
	"github.com/lucidcoons/meshgrad/pkg/patch"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

// point identifies a lattice location in the fine (3R+1)x(3C+1) grid by
// (fine row, fine col).
type point struct{ row, col int }

// Grid is the editable control-point lattice for an R x C arrangement of
// patches. Only "crosshair" points are stored: a lattice position is
// present only if it lies on a full-width row line (fineRow % 3 == 0) or a
// full-height column line (fineCol % 3 == 0) — every position actually
// referenced by a row or column curve in RowCurve/ColumnCurve.
// Interior off-axis positions (neither aligned) are never produced by any
// curve and are not stored.
type Grid struct {
	Rows, Cols int
	points     map[point]vec2.Vec2
}

// NewGrid builds the default rectangular grid geometry: straight,
// evenly-spaced rows and columns spanning the canvas-normalized [0,100]
// square.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{Rows: rows, Cols: cols, points: make(map[point]vec2.Vec2)}
	fineRows := 3*rows + 1
	fineCols := 3*cols + 1
	for r := 0; r < fineRows; r++ {
		for c := 0; c < fineCols; c++ {
			if r%3 != 0 && c%3 != 0 {
				continue
			}
			x := 100 * float64(c) / float64(fineCols-1)
			y := 100 * float64(r) / float64(fineRows-1)
			g.points[point{r, c}] = vec2.V2(x, y)
		}
	}
	return g
}

// Point returns the grid point at fine lattice coordinates (row, col) and
// whether it is stored (it may legitimately be an omitted off-axis
// position).
func (g *Grid) Point(row, col int) (vec2.Vec2, bool) {
	p, ok := g.points[point{row, col}]
	return p, ok
}

// SetPoint writes the grid point at fine lattice coordinates (row, col),
// used by per-frame point animation.
func (g *Grid) SetPoint(row, col int, p vec2.Vec2) {
	g.points[point{row, col}] = p
}

// Each calls fn once per stored grid point, in an unspecified order —
// used by the animation pass, which perturbs every point independently.
func (g *Grid) Each(fn func(row, col int, p vec2.Vec2)) {
	for k, v := range g.points {
		fn(k.row, k.col, v)
	}
}

func (g *Grid) mustPoint(row, col int) vec2.Vec2 {
	p, ok := g.points[point{row, col}]
	if !ok {
		panic(fmt.Sprintf("meshgrid: missing grid point at fine lattice (%d,%d)", row, col))
	}
	return p
}

// RowCurve returns the cubic Bézier along patch-row i spanning
// patch-columns j..j+1: i in [0,Rows], j in [0,Cols).
func (g *Grid) RowCurve(i, j int) bezier.Cubic {
	r := 3 * i
	c0 := 3 * j
	return bezier.Cubic{
		g.mustPoint(r, c0),
		g.mustPoint(r, c0+1),
		g.mustPoint(r, c0+2),
		g.mustPoint(r, c0+3),
	}
}

// ColumnCurve returns the cubic Bézier along patch-column j spanning
// patch-rows i..i+1, ordered top (lower fine row) to bottom: j in
// [0,Cols], i in [0,Rows).
func (g *Grid) ColumnCurve(j, i int) bezier.Cubic {
	c := 3 * j
	r0 := 3 * i
	return bezier.Cubic{
		g.mustPoint(r0, c),
		g.mustPoint(r0+1, c),
		g.mustPoint(r0+2, c),
		g.mustPoint(r0+3, c),
	}
}

// AllRowCurves and AllColumnCurves return every row/column curve, used by
// the control-point and Bézier-curve overlay renderer.
func (g *Grid) AllRowCurves() []bezier.Cubic {
	out := make([]bezier.Cubic, 0, (g.Rows+1)*g.Cols)
	for i := 0; i <= g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			out = append(out, g.RowCurve(i, j))
		}
	}
	return out
}

func (g *Grid) AllColumnCurves() []bezier.Cubic {
	out := make([]bezier.Cubic, 0, (g.Cols+1)*g.Rows)
	for j := 0; j <= g.Cols; j++ {
		for i := 0; i < g.Rows; i++ {
			out = append(out, g.ColumnCurve(j, i))
		}
	}
	return out
}

// BuildPatch assembles the Coons patch for cell (i, j) — i in [0,Rows), j
// in [0,Cols) — from the grid's row/column curves and the given row-major
// corner-color array of length (Rows+1)*(Cols+1).
func (g *Grid) BuildPatch(i, j int, colors []colorspace.Color) patch.Coons[colorspace.Color] {
	north := g.RowCurve(i, j)
	south := bezier.Inverse(g.RowCurve(i+1, j))
	east := g.ColumnCurve(j+1, i)
	west := bezier.Inverse(g.ColumnCurve(j, i))

	stride := g.Cols + 1
	nw := colors[i*stride+j]
	ne := colors[i*stride+j+1]
	se := colors[(i+1)*stride+j+1]
	sw := colors[(i+1)*stride+j]

	return patch.Coons[colorspace.Color]{
		North: north, East: east, South: south, West: west,
		Values: vec2.ParametricValues[colorspace.Color]{North: nw, East: ne, South: se, West: sw},
	}
}

// BuildPatches assembles every patch in the R x C grid, row-major.
func (g *Grid) BuildPatches(colors []colorspace.Color) []patch.Coons[colorspace.Color] {
	out := make([]patch.Coons[colorspace.Color], 0, g.Rows*g.Cols)
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			out = append(out, g.BuildPatch(i, j, colors))
		}
	}
	return out
}
