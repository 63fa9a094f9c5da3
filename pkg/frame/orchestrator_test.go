package frame

import (
	"testing"

	"github.com/lucidcoons/meshgrad/pkg/colorspace"
	"github.com/lucidcoons/meshgrad/pkg/raster"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

func approxByte(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestRenderFrameRejectsMismatchedGrid(t *testing.T) {
	scene := NewScene(1, 1)
	cs := DefaultControlState()
	cs.Rows, cs.Cols = 2, 2 // doesn't match the 1x1 scene grid
	fb := raster.NewFramebuffer(50, 50)
	target := Target{Width: 50, Height: 50}

	if err := RenderFrame(scene, cs, target, 0, fb); err == nil {
		t.Error("expected an error for a grid/control-state size mismatch")
	}
}

func TestRenderFrameRejectsMismatchedColorCount(t *testing.T) {
	scene := NewScene(1, 1)
	scene.Colors = scene.Colors[:2] // wrong length for a 1x1 grid
	cs := DefaultControlState()
	cs.Rows, cs.Cols = 1, 1
	fb := raster.NewFramebuffer(50, 50)
	target := Target{Width: 50, Height: 50}

	if err := RenderFrame(scene, cs, target, 0, fb); err == nil {
		t.Error("expected an error for a mismatched corner-color count")
	}
}

func TestRenderFrameUniformColorSubdivision(t *testing.T) {
	scene := NewScene(1, 1)
	cs := DefaultControlState()
	cs.Engine = EngineSubdivision
	cs.Depth = 3
	cs.Rows, cs.Cols = 1, 1
	target := Target{Width: 60, Height: 60}
	fb := raster.NewFramebuffer(60, 60)

	if err := RenderFrame(scene, cs, target, 0, fb); err != nil {
		t.Fatalf("RenderFrame error: %v", err)
	}
	got := fb.GetPixel(30, 30)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("uniform white scene should render white everywhere, got %v at center", got)
	}
}

func TestRenderFrameUniformColorFFD(t *testing.T) {
	scene := NewScene(1, 1)
	cs := DefaultControlState()
	cs.Engine = EngineFFD
	cs.Rows, cs.Cols = 1, 1
	target := Target{Width: 60, Height: 60}
	fb := raster.NewFramebuffer(60, 60)

	if err := RenderFrame(scene, cs, target, 0, fb); err != nil {
		t.Fatalf("RenderFrame error: %v", err)
	}
	got := fb.GetPixel(30, 30)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("uniform white scene should render white everywhere, got %v at center", got)
	}
}

func TestRenderFrameFourCornerColorsDominateNearestCorner(t *testing.T) {
	scene := NewScene(1, 1)
	// Row-major (Rows+1)x(Cols+1): NW, NE, SW, SE.
	scene.Colors[0] = colorspace.RGB(255, 0, 0) // NW
	scene.Colors[1] = colorspace.RGB(0, 255, 0) // NE
	scene.Colors[2] = colorspace.RGB(255, 255, 0) // SW
	scene.Colors[3] = colorspace.RGB(0, 0, 255) // SE

	cs := DefaultControlState()
	cs.Engine = EngineSubdivision
	cs.Depth = 5
	cs.Rows, cs.Cols = 1, 1
	target := Target{Width: 100, Height: 100}
	fb := raster.NewFramebuffer(100, 100)

	if err := RenderFrame(scene, cs, target, 0, fb); err != nil {
		t.Fatalf("RenderFrame error: %v", err)
	}

	nw := fb.GetPixel(2, 2)
	if !approxByte(nw.R, 255, 60) || !approxByte(nw.G, 0, 60) {
		t.Errorf("pixel near NW corner = %v, want to lean toward red", nw)
	}
	se := fb.GetPixel(97, 97)
	if !approxByte(se.B, 255, 60) {
		t.Errorf("pixel near SE corner = %v, want to lean toward blue", se)
	}
}

func TestRenderFrameDegenerateSinglePointGrid(t *testing.T) {
	scene := NewScene(1, 1)
	// Collapse every lattice point to the origin: a fully degenerate patch.
	var pts [][2]int
	scene.Grid.Each(func(row, col int, p vec2.Vec2) {
		pts = append(pts, [2]int{row, col})
	})
	for _, rc := range pts {
		scene.Grid.SetPoint(rc[0], rc[1], vec2.V2(0, 0))
	}

	cs := DefaultControlState()
	cs.Rows, cs.Cols = 1, 1
	cs.Engine = EngineSubdivision
	cs.Depth = 2
	target := Target{Width: 40, Height: 40}
	fb := raster.NewFramebuffer(40, 40)

	if err := RenderFrame(scene, cs, target, 0, fb); err != nil {
		t.Fatalf("RenderFrame should not error on a degenerate grid: %v", err)
	}
}

func TestRenderFrameDepthZeroDoesNotPanic(t *testing.T) {
	scene := NewScene(2, 2)
	cs := DefaultControlState()
	cs.Rows, cs.Cols = 2, 2
	cs.Depth = 0
	cs.Engine = EngineSubdivision
	target := Target{Width: 80, Height: 80}
	fb := raster.NewFramebuffer(80, 80)

	if err := RenderFrame(scene, cs, target, 0, fb); err != nil {
		t.Fatalf("RenderFrame error at depth 0: %v", err)
	}
}

func TestRenderFrameTwoByTwoGridNoGaps(t *testing.T) {
	scene := NewScene(2, 2)
	for i := range scene.Colors {
		scene.Colors[i] = colorspace.RGB(uint8(40*i), uint8(20*i), uint8(10*i))
	}
	cs := DefaultControlState()
	cs.Rows, cs.Cols = 2, 2
	cs.Depth = 3
	cs.Engine = EngineSubdivision
	target := Target{Width: 120, Height: 120}
	fb := raster.NewFramebuffer(120, 120)

	if err := RenderFrame(scene, cs, target, 0, fb); err != nil {
		t.Fatalf("RenderFrame error: %v", err)
	}

	// Sample along the seam between patch columns: every pixel should have
	// been painted (non-zero alpha), i.e. no unrendered gap at patch
	// boundaries.
	seamX := 60
	for y := 5; y < 115; y += 10 {
		if got := fb.GetPixel(seamX, y); got.A == 0 {
			t.Errorf("gap at seam pixel (%d,%d): unpainted", seamX, y)
		}
	}
}
