package vec2

// ParametricValues holds one value per compass corner of a patch. It is
// parameterized so the same shape carries colors (render input) or UV
// vectors (subdivision state).
type ParametricValues[T any] struct {
	North, East, South, West T
}

// BilinearInterpolate applies the rasterizer's bilinear-interpolation
// convention across a unit square: the "top" edge runs (north, east), the
// "bottom" edge runs (west, south) — not the geometric north/south pairing.
// This convention is baked into every rasterizer path and must not be
// "corrected".
//
//	BilinearInterpolate(v, 0, 0) == v.North
//	BilinearInterpolate(v, 1, 0) == v.East
//	BilinearInterpolate(v, 1, 1) == v.South
//	BilinearInterpolate(v, 0, 1) == v.West
func BilinearInterpolate[T any](v ParametricValues[T], u, vv float64, lerp func(t float64, a, b T) T) T {
	top := lerp(u, v.North, v.East)
	bot := lerp(u, v.West, v.South)
	return lerp(vv, top, bot)
}
