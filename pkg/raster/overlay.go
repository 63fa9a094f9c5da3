// Overlay drawing: the control-point and Bézier-curve overlay renderer of
// spec §6. Its two pixel primitives (a Bresenham line and a filled disc)
// are private to this file rather than generic Framebuffer methods — the
// rest of the rasterizer only ever writes pixels through SetPixel/FillRect,
// so a line stroker and a circle filler belong to the one caller that
// actually needs them.
package raster

import (
	"image/color"
	"math"

	"github.com/lucidcoons/meshgrad/pkg/bezier"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

const bezierTessellationSegments = 100

var (
	controlPointColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	curveColor        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// DrawControlPoints paints a filled circle of the given radius at every
// control point of every curve.
func DrawControlPoints(fb *Framebuffer, curves []bezier.Cubic, radius int) {
	for _, c := range curves {
		for _, p := range c {
			fillCircle(fb, int(math.Round(p.X)), int(math.Round(p.Y)), radius, controlPointColor)
		}
	}
}

// DrawBezierCurves tessellates each cubic into at least
// bezierTessellationSegments line segments and strokes them at the given
// pixel thickness (the overlay renderer's "1.5px / W in normalized device
// coordinates" requirement, expressed directly in pixels here since the
// framebuffer already works in device pixels).
func DrawBezierCurves(fb *Framebuffer, curves []bezier.Cubic, thicknessPx float64) {
	for _, c := range curves {
		prev := c[0]
		for i := 1; i <= bezierTessellationSegments; i++ {
			t := float64(i) / float64(bezierTessellationSegments)
			cur := bezier.Eval(c, t)
			strokeSegment(fb, prev, cur, thicknessPx)
			prev = cur
		}
	}
}

func strokeSegment(fb *Framebuffer, a, b vec2.Vec2, thickness float64) {
	half := thickness / 2
	if half < 0.5 {
		drawLine(fb, int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), curveColor)
		return
	}
	// Approximate a thick stroke by drawing parallel offset lines across
	// the segment's perpendicular, matching the overlay's visual weight
	// without a full polygon-fill stroker.
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		fillCircle(fb, int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(half)), curveColor)
		return
	}
	nx, ny := -dy/length*half, dx/length*half
	steps := int(math.Ceil(thickness))
	for s := 0; s <= steps; s++ {
		t := float64(s)/float64(steps)*2 - 1 // [-1,1]
		ox, oy := nx*t, ny*t
		drawLine(fb,
			int(math.Round(a.X+ox)), int(math.Round(a.Y+oy)),
			int(math.Round(b.X+ox)), int(math.Round(b.Y+oy)),
			curveColor,
		)
	}
}

// drawLine draws a Bresenham line directly into fb.
func drawLine(fb *Framebuffer, x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillCircle paints a filled disc of the given radius directly into fb.
func fillCircle(fb *Framebuffer, cx, cy, radius int, c color.RGBA) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				fb.SetPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
