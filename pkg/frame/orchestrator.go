package frame

import (
	"fmt"

	"github.com/lucidcoons/meshgrad/pkg/colorspace"
	"github.com/lucidcoons/meshgrad/pkg/meshgrid"
	"github.com/lucidcoons/meshgrad/pkg/patch"
	"github.com/lucidcoons/meshgrad/pkg/raster"
)

const controlPointRadiusPx = 4
const bezierOverlayThicknessPx = 1.5

// Scene is the per-frame authoring state: the editable base grid (in
// canvas-normalized [0,100] coordinates) and one color per grid vertex,
// row-major, length (Rows+1)*(Cols+1).
type Scene struct {
	Grid   *meshgrid.Grid
	Colors []colorspace.Color
}

// NewScene builds a default rectangular scene for the given grid shape,
// with every vertex white.
func NewScene(rows, cols int) *Scene {
	colors := make([]colorspace.Color, (rows+1)*(cols+1))
	for i := range colors {
		colors[i] = colorspace.RGB(255, 255, 255)
	}
	return &Scene{Grid: meshgrid.NewGrid(rows, cols), Colors: colors}
}

// RenderFrame executes one frame: optionally perturbs every control point,
// rebuilds the grid's Coons patches, converts them to tensor patches, and
// invokes the configured rasterizer, writing into fb and drawing overlays
// per cs. animationTime is an externally driven clock (the orchestrator
// itself owns no time source).
func RenderFrame(scene *Scene, cs ControlState, target Target, animationTime float64, fb *raster.Framebuffer) error {
	if scene.Grid.Rows != cs.Rows || scene.Grid.Cols != cs.Cols {
		return fmt.Errorf("frame: scene grid is %dx%d but control state requests %dx%d; rebuild the scene first",
			scene.Grid.Rows, scene.Grid.Cols, cs.Rows, cs.Cols)
	}
	if len(scene.Colors) != (cs.Rows+1)*(cs.Cols+1) {
		return fmt.Errorf("frame: expected %d corner colors for a %dx%d grid, got %d",
			(cs.Rows+1)*(cs.Cols+1), cs.Rows, cs.Cols, len(scene.Colors))
	}

	working := scene.Grid
	if cs.AnimationEnabled {
		working = animatedGrid(working, animationTime*cs.AnimationSpeed, cs.AnimationAmplitude)
	}
	working = mappedGrid(working, target)

	coonsPatches := working.BuildPatches(scene.Colors)

	switch cs.Engine {
	case EngineFFD:
		for _, cp := range coonsPatches {
			tensor := patch.CoonsToTensor(cp)
			raster.RenderTensorPatchFFD(tensor, cs.ColorModel, fb)
		}
	default:
		renderSubdivision(working, coonsPatches, cs, fb)
	}

	if cs.ShowBezierCurves {
		curves := append(working.AllRowCurves(), working.AllColumnCurves()...)
		raster.DrawBezierCurves(fb, curves, bezierOverlayThicknessPx)
	}
	if cs.ShowControlPoints {
		curves := append(working.AllRowCurves(), working.AllColumnCurves()...)
		raster.DrawControlPoints(fb, curves, controlPointRadiusPx)
	}
	return nil
}

func renderSubdivision(working *meshgrid.Grid, coonsPatches []patch.Coons[colorspace.Color], cs ControlState, fb *raster.Framebuffer) {
	texels := make([]colorspace.Color, 0, (cs.Rows+1)*(cs.Cols+1))
	// The color texture's texel grid matches the scene's corner-color
	// layout directly: it is uploaded fresh every frame (STATIC_DRAW
	// semantics, no incremental update), so no separate animation of
	// texel positions is needed — only the underlying patch geometry
	// moves.
	stride := cs.Cols + 1
	for i := 0; i <= cs.Rows; i++ {
		for j := 0; j <= cs.Cols; j++ {
			texels = append(texels, colorAt(coonsPatches, cs, i, j, stride))
		}
	}
	tex := raster.NewColorTexture(cs.Cols, cs.Rows, texels)

	var leaves []raster.Leaf
	idx := 0
	for i := 0; i < cs.Rows; i++ {
		for j := 0; j < cs.Cols; j++ {
			tensor := patch.CoonsToTensor(coonsPatches[idx])
			idx++
			leaves = append(leaves, raster.Subdivide(tensor, j, i, cs.Cols, cs.Rows, cs.Depth)...)
		}
	}
	raster.SortLeaves(leaves)
	raster.RenderLeaves(leaves, tex, raster.RenderOptions{UseSimpleUV: cs.UseSimpleUV}, fb)
}

// colorAt recovers the grid-vertex color at lattice position (i, j) from
// the assembled patches' corner values, so the texture's texel layout
// follows exactly what BuildPatch read from the original corner-color
// array — avoiding a second, possibly-inconsistent indexing scheme.
func colorAt(patches []patch.Coons[colorspace.Color], cs ControlState, i, j, stride int) colorspace.Color {
	if i < cs.Rows && j < cs.Cols {
		return patches[i*cs.Cols+j].Values.North // NW corner
	}
	if i < cs.Rows && j == cs.Cols {
		return patches[i*cs.Cols+j-1].Values.East // NE corner of the last cell in the row
	}
	if i == cs.Rows && j < cs.Cols {
		return patches[(i-1)*cs.Cols+j].Values.West // SW corner of the last row's cell
	}
	return patches[(i-1)*cs.Cols+j-1].Values.South // SE corner of the grid's last cell
}
