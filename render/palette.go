package render

import "math"

// ansi16Palette is the standard 16-color ANSI palette (xterm defaults).
var ansi16Palette = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// cube6 is the 6-step component ramp used by the xterm 216-color cube.
var cube6 = [6]uint8{0, 95, 135, 175, 215, 255}

// ansi256ToRGB expands a 256-color palette index to 8-bit sRGB: indices
// 0-15 are the named ANSI colors, 16-231 the 6x6x6 color cube, 232-255 a
// 24-step grayscale ramp.
func ansi256ToRGB(idx uint8) (r, g, b uint8) {
	switch {
	case idx < 16:
		c := ansi16Palette[idx]
		return c[0], c[1], c[2]
	case idx < 232:
		i := int(idx) - 16
		return cube6[i/36], cube6[(i/6)%6], cube6[i%6]
	default:
		v := uint8(8 + (int(idx)-232)*10)
		return v, v, v
	}
}

// oklabDistance is the Euclidean distance between two colors' Oklab
// components, the perceptual metric the spec requires in place of the
// teacher's Redmean RGB distance (terminal/color.go's
// computeRedmean256/redmeanDistance).
func oklabDistance(a, b Color) float64 {
	aA, aB := lChToLab(a.C, a.H)
	bA, bB := lChToLab(b.C, b.H)
	dl := a.L - b.L
	da := aA - bA
	db := aB - bB
	return math.Sqrt(dl*dl + da*da + db*db)
}

// NearestAnsi256 finds the 256-palette index whose Oklab distance to col
// is smallest. Grounded on terminal.RGBTo256's role (nearest-palette
// lookup called from the output path), with a direct 256-entry scan in
// place of the teacher's precomputed 64^3 Redmean LUT — that table trades
// memory for an O(1) lookup keyed on RGB distance, a saving only available
// for a metric cheap enough to precompute on a fixed RGB quantization;
// Oklab requires two color-space conversions per candidate, so precomputing
// makes no accuracy difference and only one distance metric (RGB) is ever
// cheap enough for the 64^3 table to pay for itself.
func NearestAnsi256(col Color) uint8 {
	best := uint8(0)
	bestDist := math.MaxFloat64
	for i := 0; i < 256; i++ {
		r, g, b := ansi256ToRGB(uint8(i))
		d := oklabDistance(col, RGBToColor(r, g, b))
		if d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}

// NearestAnsi16 finds the nearest of the 16 named ANSI colors by Oklab
// distance, for terminals with no 256-color support.
func NearestAnsi16(col Color) uint8 {
	best := uint8(0)
	bestDist := math.MaxFloat64
	for i, c := range ansi16Palette {
		d := oklabDistance(col, RGBToColor(c[0], c[1], c[2]))
		if d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}
