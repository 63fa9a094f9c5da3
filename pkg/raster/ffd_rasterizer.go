package raster

import (
	"image/color"

	"github.com/lucidcoons/meshgrad/pkg/bezier"
	"github.com/lucidcoons/meshgrad/pkg/colorspace"
	"github.com/lucidcoons/meshgrad/pkg/ffd"
	"github.com/lucidcoons/meshgrad/pkg/patch"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

// RenderTensorPatchFFD drives the Fast Forward Differencing kernel across
// the u-axis of a tensor patch (stepping the four row curves in lockstep),
// and for each u forms a transient spine curve and FFD-scans it across the
// v-axis, writing a pixel per (u,v) sample. Colors come from bilinear
// interpolation of the patch's four corner colors; in non-RGBA color
// models the interpolated color is round-tripped through that model's
// representation before being painted, mirroring a canvas fillStyle/
// fillRect path instead of a direct byte-buffer write.
//
// Degenerate curves (all four control points coincide) naturally produce a
// step count of zero; RenderTensorPatchFFD treats that as a single-step
// curve and rasterizes only the starting pixel, per the numerical-edge
// policy for degenerate geometry.
func RenderTensorPatchFFD(p patch.Tensor[colorspace.Color], model colorspace.Model, fb *Framebuffer) {
	curves := [4]bezier.Cubic{p.Curve0, p.Curve1, p.Curve2, p.Curve3}

	shiftStep := 0
	for _, c := range curves {
		if s := ffd.EstimateStepCount(c); s > shiftStep {
			shiftStep = s
		}
	}
	maxSteps := 1 << uint(shiftStep)
	du := 1.0 / float64(maxSteps)

	var points [4]vec2.Vec2
	var outer [4]ffd.AxisPair
	for i, c := range curves {
		points[i] = c[0]
		outer[i] = ffd.HalveN(ffd.FromCubic(c), shiftStep)
	}

	u := 0.0
	for s := 0; s < maxSteps; s++ {
		spine := bezier.Cubic{points[0], points[1], points[2], points[3]}
		scanSpine(spine, p.Values, u, model, fb)

		for i := range points {
			delta := outer[i].Step()
			points[i] = points[i].Add(delta)
		}
		u += du
	}
}

func scanSpine(spine bezier.Cubic, corners vec2.ParametricValues[colorspace.Color], u float64, model colorspace.Model, fb *Framebuffer) {
	shiftStep := ffd.EstimateStepCount(spine)
	maxSteps := 1 << uint(shiftStep)
	dv := 1.0 / float64(maxSteps)

	point := spine[0]
	coeff := ffd.HalveN(ffd.FromCubic(spine), shiftStep)

	v := 0.0
	for s := 0; s < maxSteps; s++ {
		col := vec2.BilinearInterpolate(corners, u, v, colorspace.Lerp)
		paint(fb, point, col, model)

		delta := coeff.Step()
		point = point.Add(delta)
		v += dv
	}
}

// paint writes one FFD sample to the framebuffer. RGBA colors blit
// directly; other color models round-trip through their own
// representation first, matching the spec's "painted as 1x1 fill
// rectangles" path for non-RGBA canvases.
func paint(fb *Framebuffer, p vec2.Vec2, col colorspace.Color, model colorspace.Model) {
	x, y := int(floor(p.X)), int(floor(p.Y))
	if model != colorspace.RGBA {
		modeled := colorspace.FromRGBA(model, col)
		col = colorspace.ToRGBA(model, modeled)
		r, g, b, a := col.Bytes()
		fb.FillRect(x, y, 1, 1, color.RGBA{R: r, G: g, B: b, A: a})
		return
	}
	r, g, b, a := col.Bytes()
	fb.SetPixel(x, y, color.RGBA{R: r, G: g, B: b, A: a})
}

func floor(x float64) float64 {
	i := int(x)
	if x < 0 && float64(i) != x {
		i--
	}
	return float64(i)
}
