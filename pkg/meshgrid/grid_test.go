package meshgrid

import (
	"testing"

	"github.com/lucidcoons/meshgrad/pkg/bezier"
	"github.com/lucidcoons/meshgrad/pkg/colorspace"
	"github.com/lucidcoons/meshgrad/pkg/patch"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

func TestNewGridPointCountFormula(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 3}, {4, 1}, {3, 3}} {
		rows, cols := dims[0], dims[1]
		g := NewGrid(rows, cols)

		got := 0
		g.Each(func(row, col int, p vec2.Vec2) { got++ })

		want := (3*rows+1)*(3*cols+1) - 4*rows*cols
		if got != want {
			t.Errorf("rows=%d cols=%d: got %d stored points, want %d", rows, cols, got, want)
		}
	}
}

func TestBuildPatchesCornersMatch(t *testing.T) {
	rows, cols := 2, 3
	g := NewGrid(rows, cols)
	colors := make([]colorspace.Color, (rows+1)*(cols+1))
	for i := range colors {
		colors[i] = colorspace.RGB(uint8(i), uint8(i), uint8(i))
	}

	for _, p := range g.BuildPatches(colors) {
		if err := patch.CheckCorners(p); err != nil {
			t.Errorf("patch corner mismatch: %v", err)
		}
	}
}

func TestBuildPatchSharesEdgesWithNeighbors(t *testing.T) {
	rows, cols := 2, 2
	g := NewGrid(rows, cols)
	colors := make([]colorspace.Color, (rows+1)*(cols+1))

	left := g.BuildPatch(0, 0, colors)
	right := g.BuildPatch(0, 1, colors)
	if left.East != bezier.Inverse(right.West) {
		t.Error("adjacent patches should share their shared column curve (East/West)")
	}

	top := g.BuildPatch(0, 0, colors)
	bottom := g.BuildPatch(1, 0, colors)
	if top.South != bezier.Inverse(bottom.North) {
		t.Error("adjacent patches should share their shared row curve (South/North)")
	}
}

func TestRowAndColumnCurveCounts(t *testing.T) {
	g := NewGrid(2, 3)
	if got, want := len(g.AllRowCurves()), (2+1)*3; got != want {
		t.Errorf("AllRowCurves len = %d, want %d", got, want)
	}
	if got, want := len(g.AllColumnCurves()), (3+1)*2; got != want {
		t.Errorf("AllColumnCurves len = %d, want %d", got, want)
	}
}
