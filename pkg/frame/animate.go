package frame

import (
	"math"

	"github.com/lucidcoons/meshgrad/pkg/meshgrid"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

// AnimatePoint returns the per-point displacement at the given animation
// time for a point with the given stable seed and amplitude. Per-point
// seeds are opaque stable integers; no particular generator is assumed —
// here each grid lattice position's own (row, col) pair serves as its
// seed, which is stable across frames and satisfies every caller's
// requirement without needing a registry.
func AnimatePoint(t, seed, amplitude float64) vec2.Vec2 {
	return vec2.V2(
		math.Sin(0.3*t+0.1*seed)*math.Cos(0.15*t+0.2*seed)*amplitude,
		math.Cos(0.3*t+0.3*seed)*math.Sin(0.21*t+0.4*seed)*amplitude,
	)
}

// animatedGrid returns a copy of g with every point perturbed by
// AnimatePoint, using the point's fine lattice coordinates as its stable
// seed (row*10007+col — an arbitrary but fixed mixing constant, not a
// hash that needs to match any particular reference sequence).
func animatedGrid(g *meshgrid.Grid, t, amplitude float64) *meshgrid.Grid {
	out := meshgrid.NewGrid(g.Rows, g.Cols)
	g.Each(func(row, col int, p vec2.Vec2) {
		seed := float64(row*10007 + col)
		out.SetPoint(row, col, p.Add(AnimatePoint(t, seed, amplitude)))
	})
	return out
}

// mappedGrid returns a copy of g with every point mapped from
// canvas-normalized [0,100] coordinates into target pixel space.
func mappedGrid(g *meshgrid.Grid, target Target) *meshgrid.Grid {
	out := meshgrid.NewGrid(g.Rows, g.Cols)
	g.Each(func(row, col int, p vec2.Vec2) {
		out.SetPoint(row, col, vec2.V2(target.MapX(p.X), target.MapY(p.Y)))
	})
	return out
}
