// Package colorspace implements the color primitives and color-space
// conversions used to author mesh-gradient corner colors in RGBA, HSLA, or
// Oklab and to interpolate between them.
//
// The conversion formulas (gamma-linearize -> LMS -> cube root -> Oklab)
// follow the same pipeline shape as github.com/soypat/colorspace, but are
// reimplemented directly against float64 so that the hex and HSLA
// round-trip guarantees in the rasterizer's test suite hold to the pixel.
package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Model identifies which color space a Color's three primary components
// are expressed in. Alpha is always carried as an 8-bit value in [0,255]
// regardless of model.
type Model int

const (
	RGBA Model = iota
	HSLA
	Oklab
)

func (m Model) String() string {
	switch m {
	case RGBA:
		return "rgba"
	case HSLA:
		return "hsla"
	case Oklab:
		return "oklab"
	default:
		return "unknown"
	}
}

// Color is a 4-tuple (C0, C1, C2, A). Components are 8-bit integers 0-255
// in RGBA mode, or model-specific ranges otherwise (H in [0,360), S/L in
// [0,100], Oklab L in [0,1], a/b roughly in [-0.5,0.5]). Stored as floats
// so intermediate lerps and gamma/Oklab conversions don't band.
type Color struct {
	C0, C1, C2, A float64
}

// RGB builds an opaque RGBA color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{C0: float64(r), C1: float64(g), C2: float64(b), A: 255}
}

// RGBAColor builds an RGBA color including alpha.
func RGBAColor(r, g, b, a uint8) Color {
	return Color{C0: float64(r), C1: float64(g), C2: float64(b), A: float64(a)}
}

// Lerp applies componentwise linear interpolation to the first three
// channels and writes alpha as fully opaque (255), matching the
// rasterizer's color-lerp convention: intermediate gradient colors are
// always opaque regardless of the operands' alpha.
func Lerp(t float64, a, b Color) Color {
	return Color{
		C0: a.C0 + (b.C0-a.C0)*t,
		C1: a.C1 + (b.C1-a.C1)*t,
		C2: a.C2 + (b.C2-a.C2)*t,
		A:  255,
	}
}

// clampByte rounds and saturates a float channel to a valid 8-bit value.
func clampByte(x float64) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(math.Round(x))
}

// Bytes returns the RGBA color as 8-bit channels, rounding and clamping
// each component.
func (c Color) Bytes() (r, g, b, a uint8) {
	return clampByte(c.C0), clampByte(c.C1), clampByte(c.C2), clampByte(c.A)
}

// RGBAToHSLA converts an RGBA color to HSLA (H in [0,360), S/L in [0,100]).
func RGBAToHSLA(c Color) Color {
	r, g, b := c.C0/255, c.C1/255, c.C2/255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	l := (max + min) / 2

	var h, s float64
	switch {
	case delta == 0:
		h = 0
	case max == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case max == g:
		h = 60 * ((b-r)/delta + 2)
	default: // max == b
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	if delta == 0 {
		s = 0
	} else {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return Color{C0: h, C1: s * 100, C2: l * 100, A: c.A}
}

// HSLAToRGBA converts an HSLA color back to RGBA.
func HSLAToRGBA(c Color) Color {
	h := c.C0
	s := c.C1 / 100
	l := c.C2 / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = chroma, x, 0
	case hp < 2:
		r1, g1, b1 = x, chroma, 0
	case hp < 3:
		r1, g1, b1 = 0, chroma, x
	case hp < 4:
		r1, g1, b1 = 0, x, chroma
	case hp < 5:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	m := l - chroma/2
	return Color{
		C0: (r1 + m) * 255,
		C1: (g1 + m) * 255,
		C2: (b1 + m) * 255,
		A:  c.A,
	}
}

// sRGB gamma transfer functions (IEC 61966-2-1).
func linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func delinearize(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// RGBA -> LMS -> Oklab matrices (Björn Ottosson's Oklab derivation).
var rgbToLMS = [3][3]float64{
	{0.4122214708, 0.5363325363, 0.0514459929},
	{0.2119034982, 0.6806995451, 0.1073969566},
	{0.0883024619, 0.2817188376, 0.6299787005},
}

var lmsToOklab = [3][3]float64{
	{0.2104542553, 0.7936177850, -0.0040720468},
	{1.9779984951, -2.4285922050, 0.4505937099},
	{0.0259040371, 0.7827717662, -0.8086757660},
}

var oklabToLMS = [3][3]float64{
	{1, 0.3963377774, 0.2158037573},
	{1, -0.1055613458, -0.0638541728},
	{1, -0.0894841775, -1.2914855480},
}

var lmsToRGB = [3][3]float64{
	{4.0767416621, -3.3077115913, 0.2309699292},
	{-1.2684380046, 2.6097574011, -0.3413193965},
	{-0.0041960863, -0.7034186147, 1.7076147010},
}

func mulMat3(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func cbrt(x float64) float64 {
	if x < 0 {
		return -math.Cbrt(-x)
	}
	return math.Cbrt(x)
}

// RGBAToOklab converts an RGBA color to Oklab (L in [0,1], a/b roughly
// [-0.5,0.5]): gamma-linearize, multiply by the LMS matrix, cube root,
// multiply by the Oklab matrix.
func RGBAToOklab(c Color) Color {
	lin := [3]float64{linearize(c.C0 / 255), linearize(c.C1 / 255), linearize(c.C2 / 255)}
	lms := mulMat3(rgbToLMS, lin)
	lms = [3]float64{cbrt(lms[0]), cbrt(lms[1]), cbrt(lms[2])}
	lab := mulMat3(lmsToOklab, lms)
	return Color{C0: lab[0], C1: lab[1], C2: lab[2], A: c.A}
}

// OklabToRGBA converts an Oklab color back to RGBA, clamping the result to
// the displayable [0,255] range.
func OklabToRGBA(c Color) Color {
	lms := mulMat3(oklabToLMS, [3]float64{c.C0, c.C1, c.C2})
	lms = [3]float64{lms[0] * lms[0] * lms[0], lms[1] * lms[1] * lms[1], lms[2] * lms[2] * lms[2]}
	lin := mulMat3(lmsToRGB, lms)
	return Color{
		C0: vec2Clamp(delinearize(lin[0]) * 255),
		C1: vec2Clamp(delinearize(lin[1]) * 255),
		C2: vec2Clamp(delinearize(lin[2]) * 255),
		A:  c.A,
	}
}

func vec2Clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// HexToRGBA parses a 6-hex-digit string with a leading '#' into an opaque
// RGBA color.
func HexToRGBA(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("colorspace: hex color %q must have 6 digits", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colorspace: invalid hex color %q: %w", hex, err)
	}
	return Color{
		C0: float64((v >> 16) & 0xff),
		C1: float64((v >> 8) & 0xff),
		C2: float64(v & 0xff),
		A:  255,
	}, nil
}

// RGBAToHex formats an RGBA color as a 6-hex-digit string with a leading
// '#'. Alpha is not represented.
func RGBAToHex(c Color) string {
	r, g, b, _ := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// CSSString formats a color in its model's CSS functional notation.
func CSSString(model Model, c Color) string {
	switch model {
	case HSLA:
		return fmt.Sprintf("hsla(%g,%g%%,%g%%,%g)", c.C0, c.C1, c.C2, c.A/255)
	case Oklab:
		return fmt.Sprintf("oklab(%g %g %g / %g)", c.C0, c.C1, c.C2, c.A/255)
	default:
		r, g, b, _ := c.Bytes()
		return fmt.Sprintf("rgba(%d,%d,%d,%g)", r, g, b, c.A/255)
	}
}

// ToRGBA converts a color expressed in the given model to RGBA. RGBA input
// is returned unchanged.
func ToRGBA(model Model, c Color) Color {
	switch model {
	case HSLA:
		return HSLAToRGBA(c)
	case Oklab:
		return OklabToRGBA(c)
	default:
		return c
	}
}

// FromRGBA converts an RGBA color into the given model. RGBA output is
// returned unchanged.
func FromRGBA(model Model, c Color) Color {
	switch model {
	case HSLA:
		return RGBAToHSLA(c)
	case Oklab:
		return RGBAToOklab(c)
	default:
		return c
	}
}
