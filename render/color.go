package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a display-independent color in OKLCH space with alpha, resolved
// to a CellColor only at paint time. Grounded on the alpha-compositing
// shape of the teacher's RGB.Blend (render/color.go: src*alpha +
// dst*(1-alpha)), generalized from 8-bit sRGB blending to linear-sRGB
// Porter-Duff compositing over the OKLab/OKLCH perceptual space, per the
// conversions the color library exposes for sRGB<->linear.
type Color struct {
	L, C, H, Alpha float64
}

// Transparent is fully transparent black.
var Transparent = Color{}

// Opaque builds a fully opaque Color from OKLCH components. H is in degrees.
func Opaque(l, c, h float64) Color {
	return Color{L: l, C: c, H: h, Alpha: 1}
}

// oklabMatrices per Björn Ottosson's OKLab derivation.
var (
	m1 = [3][3]float64{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	m2 = [3][3]float64{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	m1inv = invert3(m1)
	m2inv = invert3(m2)
)

func invert3(m [3][3]float64) [3][3]float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	inv := 1 / det
	return [3][3]float64{
		{(e*i - f*h) * inv, (c*h - b*i) * inv, (b*f - c*e) * inv},
		{(f*g - d*i) * inv, (a*i - c*g) * inv, (c*d - a*f) * inv},
		{(d*h - e*g) * inv, (b*g - a*h) * inv, (a*e - b*d) * inv},
	}
}

func mulVec(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func cbrtVec(v [3]float64) [3]float64 {
	return [3]float64{math.Cbrt(v[0]), math.Cbrt(v[1]), math.Cbrt(v[2])}
}

func cubeVec(v [3]float64) [3]float64 {
	return [3]float64{v[0] * v[0] * v[0], v[1] * v[1] * v[1], v[2] * v[2] * v[2]}
}

// linearToOklab converts linear-sRGB components to Oklab (l, a, b).
func linearToOklab(r, g, b float64) (l, a, bb float64) {
	lms := cbrtVec(mulVec(m1, [3]float64{r, g, b}))
	lab := mulVec(m2, lms)
	return lab[0], lab[1], lab[2]
}

// oklabToLinear converts Oklab back to linear-sRGB components.
func oklabToLinear(l, a, b float64) (r, g, bb float64) {
	lms := cubeVec(mulVec(m2inv, [3]float64{l, a, b}))
	rgb := mulVec(m1inv, lms)
	return rgb[0], rgb[1], rgb[2]
}

// RGBToColor converts 8-bit sRGB to OKLCH. colorful.Color's LinearRgb
// performs the piecewise-gamma sRGB->linear transfer function.
func RGBToColor(r, g, b uint8) Color {
	cf := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	lr, lg, lb := cf.LinearRgb()
	l, a, bb := linearToOklab(lr, lg, lb)
	c, h := labToLCh(a, bb)
	return Color{L: l, C: c, H: h, Alpha: 1}
}

// ToRGB converts the OKLCH color to 8-bit sRGB, clamping to gamut first.
func (col Color) ToRGB() (r, g, b uint8) {
	g2 := col.ToGamut()
	a, bb := lChToLab(g2.C, g2.H)
	lr, lg, lb := oklabToLinear(g2.L, a, bb)
	cf := colorful.LinearRgb(lr, lg, lb).Clamped()
	return uint8(cf.R*255 + 0.5), uint8(cf.G*255 + 0.5), uint8(cf.B*255 + 0.5)
}

func labToLCh(a, b float64) (c, h float64) {
	c = math.Hypot(a, b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return c, h
}

func lChToLab(c, h float64) (a, b float64) {
	rad := h * math.Pi / 180
	return c * math.Cos(rad), c * math.Sin(rad)
}

// Lighten clamps L up by a (a may be negative to call through Darken).
func (col Color) Lighten(a float64) Color {
	col.L = clamp01(col.L + a)
	return col
}

// Darken clamps L down by a.
func (col Color) Darken(a float64) Color {
	col.L = clamp01(col.L - a)
	return col
}

// Saturate increases chroma by a, never going negative.
func (col Color) Saturate(a float64) Color {
	col.C = math.Max(0, col.C+a)
	return col
}

// Desaturate decreases chroma by a, never going negative.
func (col Color) Desaturate(a float64) Color {
	col.C = math.Max(0, col.C-a)
	return col
}

// ShiftHue rotates H by d degrees, normalized to [0, 360).
func (col Color) ShiftHue(d float64) Color {
	col.H = normalizeHue(col.H + d)
	return col
}

// Complement rotates the hue by 180 degrees.
func (col Color) Complement() Color {
	return col.ShiftHue(180)
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Mix linearly interpolates L, C, and alpha, and takes the shortest hue arc
// between the two colors. If one endpoint is achromatic (C == 0), the
// other's hue is used throughout rather than interpolating toward an
// undefined hue.
func (col Color) Mix(other Color, t float64) Color {
	h1, h2 := col.H, other.H
	switch {
	case col.C == 0 && other.C != 0:
		h1 = h2
	case other.C == 0 && col.C != 0:
		h2 = h1
	}
	d := h2 - h1
	switch {
	case d > 180:
		d -= 360
	case d < -180:
		d += 360
	}
	return Color{
		L:     col.L + (other.L-col.L)*t,
		C:     col.C + (other.C-col.C)*t,
		H:     normalizeHue(h1 + d*t),
		Alpha: col.Alpha + (other.Alpha-col.Alpha)*t,
	}
}

// inGamut reports whether col's sRGB round-trip stays within [0,1] per
// channel before 8-bit quantization.
func (col Color) inGamut() bool {
	a, b := lChToLab(col.C, col.H)
	lr, lg, lb := oklabToLinear(col.L, a, b)
	cf := colorful.LinearRgb(lr, lg, lb)
	const eps = 1e-4
	return cf.R >= -eps && cf.R <= 1+eps &&
		cf.G >= -eps && cf.G <= 1+eps &&
		cf.B >= -eps && cf.B <= 1+eps
}

// ToGamut binary-searches the largest chroma <= col.C that lands in the
// sRGB gamut, preserving L and H, per the spec's 16-iteration bisection.
func (col Color) ToGamut() Color {
	if col.inGamut() {
		return col
	}
	lo, hi := 0.0, col.C
	best := Color{L: col.L, C: 0, H: col.H, Alpha: col.Alpha}
	for i := 0; i < 16; i++ {
		mid := (lo + hi) / 2
		cand := Color{L: col.L, C: mid, H: col.H, Alpha: col.Alpha}
		if cand.inGamut() {
			best = cand
			lo = mid
		} else {
			hi = mid
		}
	}
	return best
}

// BlendOver composites col over dst using Porter-Duff source-over in
// linear sRGB, returning Transparent if the resulting alpha is ~0.
func (col Color) BlendOver(dst Color) Color {
	ao := col.Alpha + dst.Alpha*(1-col.Alpha)
	if ao < 1e-6 {
		return Transparent
	}
	srcA, srcB := lChToLab(col.C, col.H)
	srcLr, srcLg, srcLb := oklabToLinear(col.L, srcA, srcB)
	dstA, dstB := lChToLab(dst.C, dst.H)
	dstLr, dstLg, dstLb := oklabToLinear(dst.L, dstA, dstB)

	mix := func(s, d float64) float64 {
		return (s*col.Alpha + d*dst.Alpha*(1-col.Alpha)) / ao
	}
	lr, lg, lb := mix(srcLr, dstLr), mix(srcLg, dstLg), mix(srcLb, dstLb)
	l, a, b := linearToOklab(lr, lg, lb)
	c, h := labToLCh(a, b)
	return Color{L: l, C: c, H: h, Alpha: ao}
}

// ResolveOver resolves col as a CellColor painted over bg. An opaque source
// yields its own RGB; a fully transparent source leaves bg unchanged;
// otherwise it composites over bg's color (black if bg is Default).
func (col Color) ResolveOver(bg CellColor) CellColor {
	if col.Alpha >= 1 {
		r, g, b := col.ToRGB()
		return RGB(r, g, b)
	}
	if col.Alpha <= 0 {
		return bg
	}
	var bgColor Color
	switch bg.Kind {
	case CellColorRGB:
		bgColor = RGBToColor(bg.R, bg.G, bg.B)
	case CellColorAnsi256:
		r, g, b := ansi256ToRGB(bg.Ansi256Idx)
		bgColor = RGBToColor(r, g, b)
	default:
		bgColor = Opaque(0, 0, 0)
	}
	resolved := col.BlendOver(bgColor)
	r, g, b := resolved.ToRGB()
	return RGB(r, g, b)
}

// ToCellColor resolves col directly to an opaque CellColor (used for
// foregrounds, which terminals render with no alpha).
func (col Color) ToCellColor() CellColor {
	r, g, b := col.ToRGB()
	return RGB(r, g, b)
}
