package raster

import (
	"image/color"
	"math"

	"github.com/lucidcoons/meshgrad/pkg/colorspace"
	"github.com/lucidcoons/meshgrad/pkg/patch"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

// Leaf is one quad-tree leaf produced by subdividing a patch to a fixed
// depth: its four screen-space corners, its four UV corners in the global
// [0,1]^2 parametrization, and the grid cell its color texture lookups are
// anchored to.
type Leaf struct {
	Screen  vec2.ParametricValues[vec2.Vec2]
	UV      vec2.ParametricValues[vec2.Vec2]
	GridX   int
	GridY   int
	Cols    int
	Rows    int
	MinU    float64
	MinV    float64
	// GlobalU, GlobalV locate this leaf within the whole R x C grid
	// (grid cell index + local fractional position), the "global grid
	// coordinate" draw-order sort key.
	GlobalU float64
	GlobalV float64
}

// patchUV is the root UV assignment for a whole patch before subdivision,
// per the compass convention used throughout: north=(0,0), east=(1,0),
// south=(1,1), west=(0,1).
var patchUV = vec2.ParametricValues[vec2.Vec2]{
	North: vec2.V2(0, 0),
	East:  vec2.V2(1, 0),
	South: vec2.V2(1, 1),
	West:  vec2.V2(0, 1),
}

type subdivisionFrame struct {
	t    patch.Tensor[vec2.Vec2]
	minU float64
	minV float64
	span float64
	depth int
}

// Subdivide splits a geometric tensor patch (its Values field is ignored
// and replaced with UV corners) into 4^depth leaves using an explicit
// stack, not recursion, so that the traversal order — and therefore the
// leaf pop order — is deterministic and bounded in depth (depth<=8 implies
// at most 65536 leaves).
func Subdivide(geometry patch.Tensor[colorspace.Color], gridX, gridY, cols, rows, depth int) []Leaf {
	root := patch.Tensor[vec2.Vec2]{
		Curve0: geometry.Curve0, Curve1: geometry.Curve1,
		Curve2: geometry.Curve2, Curve3: geometry.Curve3,
		Values: patchUV,
	}

	leaves := make([]Leaf, 0, 1<<uint(2*depth))
	stack := []subdivisionFrame{{t: root, minU: 0, minV: 0, span: 1, depth: 0}}

	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		if f.depth >= depth {
			uv := f.t.Values
			for _, c := range []*vec2.Vec2{&uv.North, &uv.East, &uv.South, &uv.West} {
				c.X = (float64(gridX) + c.X) / float64(cols)
				c.Y = (float64(gridY) + c.Y) / float64(rows)
			}
			leaves = append(leaves, Leaf{
				Screen: vec2.ParametricValues[vec2.Vec2]{
					North: f.t.Curve0[0], East: f.t.Curve0[3],
					South: f.t.Curve3[3], West: f.t.Curve3[0],
				},
				UV:    uv,
				GridX: gridX, GridY: gridY, Cols: cols, Rows: rows,
				MinU: f.minU, MinV: f.minV,
				GlobalU: float64(gridX) + f.minU,
				GlobalV: float64(gridY) + f.minV,
			})
			continue
		}

		q := patch.Subdivide(f.t, vec2.Lerp)
		half := f.span / 2
		// Push in reverse pop order so NW pops first, matching a
		// depth-first west-then-east, north-then-south traversal.
		stack = append(stack,
			subdivisionFrame{t: q.SE, minU: f.minU + half, minV: f.minV + half, span: half, depth: f.depth + 1},
			subdivisionFrame{t: q.SW, minU: f.minU, minV: f.minV + half, span: half, depth: f.depth + 1},
			subdivisionFrame{t: q.NE, minU: f.minU + half, minV: f.minV, span: half, depth: f.depth + 1},
			subdivisionFrame{t: q.NW, minU: f.minU, minV: f.minV, span: half, depth: f.depth + 1},
		)
	}
	return leaves
}

// SortLeaves orders leaves by (minV, minU) so that later draws win along
// shared boundaries in a deterministic top-left-first order, per the
// no-depth-test overlap rule.
func SortLeaves(leaves []Leaf) {
	// Simple insertion sort: leaf counts are bounded (<=65536 per patch,
	// and rendering calls this once per frame on every patch's leaves), so an allocation-free
	// sort beats pulling in sort.Slice's reflection overhead here.
	for i := 1; i < len(leaves); i++ {
		j := i
		for j > 0 && leafLess(leaves[j], leaves[j-1]) {
			leaves[j], leaves[j-1] = leaves[j-1], leaves[j]
			j--
		}
	}
}

func leafLess(a, b Leaf) bool {
	if a.GlobalV != b.GlobalV {
		return a.GlobalV < b.GlobalV
	}
	return a.GlobalU < b.GlobalU
}

const invDistEpsilon = 1e-6

// fragmentUV computes the inverse-distance-weighted UV at a screen point
// from a leaf's four corners: an ad-hoc heuristic (not a true bilinear or
// projective map) that is part of the observable rendering behavior and
// must not be replaced with a principled alternative.
func fragmentUV(leaf Leaf, px, py float64) vec2.Vec2 {
	corners := [4]vec2.Vec2{leaf.Screen.North, leaf.Screen.East, leaf.Screen.South, leaf.Screen.West}
	uvs := [4]vec2.Vec2{leaf.UV.North, leaf.UV.East, leaf.UV.South, leaf.UV.West}

	var weightSum float64
	var uv vec2.Vec2
	for i, c := range corners {
		d := math.Hypot(px-c.X, py-c.Y)
		w := 1 / (d + invDistEpsilon)
		weightSum += w
		uv.X += w * uvs[i].X
		uv.Y += w * uvs[i].Y
	}
	return vec2.V2(uv.X/weightSum, uv.Y/weightSum)
}

// simpleFragmentUV is the "simple UV" retro-mode fragment value: the flat
// average of the four leaf corners' UVs, identical for every fragment in
// the leaf. Do not smooth this — the faceting it produces at low depth is
// the intended look.
func simpleFragmentUV(leaf Leaf) vec2.Vec2 {
	return vec2.Mean([]vec2.Vec2{leaf.UV.North, leaf.UV.East, leaf.UV.South, leaf.UV.West})
}

// RenderOptions configures the subdivision rasterizer.
type RenderOptions struct {
	UseSimpleUV bool
}

// RenderLeaves rasterizes a sorted slice of leaves as two flat-shaded
// triangles each, sampling the grid color texture through the
// vertex/fragment-shader emulation described in the rasterizer design:
// per-fragment UV by inverse-distance weighting (or flat averaging in
// simple-UV mode), then bilinear sampling of the four neighbouring color
// texels.
func RenderLeaves(leaves []Leaf, tex *ColorTexture, opts RenderOptions, fb *Framebuffer) {
	for _, leaf := range leaves {
		nw, ne, sw, se := tex.SampleQuad(leaf.GridX, leaf.GridY)
		texels := vec2.ParametricValues[colorspace.Color]{North: nw, East: ne, South: se, West: sw}

		shade := func(px, py float64) colorspace.Color {
			var uv vec2.Vec2
			if opts.UseSimpleUV {
				uv = simpleFragmentUV(leaf)
			} else {
				uv = fragmentUV(leaf, px, py)
			}
			localU := uv.X*float64(leaf.Cols) - float64(leaf.GridX)
			localV := uv.Y*float64(leaf.Rows) - float64(leaf.GridY)
			return vec2.BilinearInterpolate(texels, clamp01(localU), clamp01(localV), colorspace.Lerp)
		}

		fillTriangle(fb, leaf.Screen.North, leaf.Screen.East, leaf.Screen.South, shade)
		fillTriangle(fb, leaf.Screen.North, leaf.Screen.South, leaf.Screen.West, shade)
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// fillTriangle scan-converts a triangle over its screen-space bounding
// box using barycentric coordinates for inclusion testing, then shades
// each covered pixel with shade(px, py) rather than interpolating a fixed
// per-vertex color — the flat-shaded-with-a-custom-fragment-function
// pipeline the subdivision rasterizer emulates.
func fillTriangle(fb *Framebuffer, a, b, c vec2.Vec2, shade func(px, py float64) colorspace.Color) {
	minX := int(math.Floor(minOf3(a.X, b.X, c.X)))
	maxX := int(math.Ceil(maxOf3(a.X, b.X, c.X)))
	minY := int(math.Floor(minOf3(a.Y, b.Y, c.Y)))
	maxY := int(math.Ceil(maxOf3(a.Y, b.Y, c.Y)))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if !inTriangle(a, b, c, px, py) {
				continue
			}
			col := shade(px, py)
			r, g, bb, al := col.Bytes()
			fb.SetPixel(x, y, color.RGBA{R: r, G: g, B: bb, A: al})
		}
	}
}

func inTriangle(a, b, c vec2.Vec2, px, py float64) bool {
	d1 := sign(px, py, a, b)
	d2 := sign(px, py, b, c)
	d3 := sign(px, py, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func sign(px, py float64, p1, p2 vec2.Vec2) float64 {
	return (px-p2.X)*(p1.Y-p2.Y) - (p1.X-p2.X)*(py-p2.Y)
}

func minOf3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func maxOf3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
