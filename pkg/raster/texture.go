package raster

import (
	"math"

	"github.com/lucidcoons/meshgrad/pkg/colorspace"
)

// ColorTexture holds the (cols+1)x(rows+1) grid-vertex color texture
// sampled by the subdivision rasterizer's fragment-shader emulation.
// Texels are clamped at the edges: grid-vertex colors never wrap.
type ColorTexture struct {
	Cols, Rows int
	texels     []colorspace.Color
}

// NewColorTexture builds a texture with (cols+1)*(rows+1) texels, in
// row-major order, matching the grid-vertex color layout.
func NewColorTexture(cols, rows int, texels []colorspace.Color) *ColorTexture {
	return &ColorTexture{Cols: cols, Rows: rows, texels: texels}
}

func (t *ColorTexture) texel(x, y int) colorspace.Color {
	w, h := t.Cols+1, t.Rows+1
	if x < 0 {
		x = 0
	}
	if x >= w {
		x = w - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= h {
		y = h - 1
	}
	return t.texels[y*w+x]
}

// Sample performs bilinear filtering at the given normalized UV, following
// the same half-texel convention as a standard bilinear texture sampler.
func (t *ColorTexture) Sample(u, v float64) colorspace.Color {
	w, h := float64(t.Cols+1), float64(t.Rows+1)
	fx := u*w - 0.5
	fy := v*h - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	top := colorspace.Lerp(tx, c00, c10)
	bot := colorspace.Lerp(tx, c01, c11)
	return colorspace.Lerp(ty, top, bot)
}

// SampleQuad samples the four texels surrounding a grid cell (gridX,
// gridY) directly — the fragment shader's fixed four-offset lookup
// described in the rasterizer spec, as opposed to a generic bilinear
// sampler call.
func (t *ColorTexture) SampleQuad(gridX, gridY int) (nw, ne, sw, se colorspace.Color) {
	return t.texel(gridX, gridY), t.texel(gridX+1, gridY), t.texel(gridX, gridY+1), t.texel(gridX+1, gridY+1)
}
