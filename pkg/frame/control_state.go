// Package frame implements the per-frame render orchestrator: point
// animation, grid/patch rebuilding, rasterizer dispatch, and overlay
// drawing, driven by a small mutable ControlState.
package frame

import "github.com/lucidcoons/meshgrad/pkg/colorspace"

// Engine selects which rasterization path RenderFrame uses.
type Engine int

const (
	EngineFFD Engine = iota
	EngineSubdivision
)

// ControlState is the editable render configuration mutated by the host
// between frames (never during one). Bounds match the external interface:
// Depth in [0,8], Rows/Cols in [1,4], AnimationSpeed in [0.1,5],
// AnimationAmplitude in [1,15].
type ControlState struct {
	ColorModel         colorspace.Model
	Engine             Engine
	Depth              int
	Rows               int
	Cols               int
	ShowControlPoints  bool
	ShowBezierCurves   bool
	UseSimpleUV        bool
	AnimationEnabled   bool
	AnimationSpeed     float64
	AnimationAmplitude float64
}

// DefaultControlState returns a reasonable starting configuration: a 1x1
// RGBA grid, subdivision depth 4, animation off.
func DefaultControlState() ControlState {
	return ControlState{
		ColorModel:         colorspace.RGBA,
		Engine:             EngineSubdivision,
		Depth:              4,
		Rows:               1,
		Cols:               1,
		UseSimpleUV:        false,
		AnimationEnabled:   false,
		AnimationSpeed:     1,
		AnimationAmplitude: 8,
	}
}

// Clamp saturates every bounded field to its documented range.
func (cs *ControlState) Clamp() {
	cs.Depth = clampInt(cs.Depth, 0, 8)
	cs.Rows = clampInt(cs.Rows, 1, 4)
	cs.Cols = clampInt(cs.Cols, 1, 4)
	cs.AnimationSpeed = clampFloat(cs.AnimationSpeed, 0.1, 5)
	cs.AnimationAmplitude = clampFloat(cs.AnimationAmplitude, 1, 15)
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Margins is the canvas inset on each side, in target pixels.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// Target describes the render destination: its pixel dimensions and the
// margins the [0,100] normalized patch coordinates map into.
type Target struct {
	Width, Height int
	Margins       Margins
}

// MapX converts a normalized [0,100] x coordinate to target pixel space.
func (t Target) MapX(x float64) float64 {
	return (x/100)*(float64(t.Width)-t.Margins.Left-t.Margins.Right) + t.Margins.Left
}

// MapY converts a normalized [0,100] y coordinate to target pixel space.
func (t Target) MapY(y float64) float64 {
	return (y/100)*(float64(t.Height)-t.Margins.Top-t.Margins.Bottom) + t.Margins.Top
}
