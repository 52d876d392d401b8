package jpegsim

import "math"

// QuantTable holds one quantization divisor per 8x8 coefficient position,
// row-major. Low frequencies (top left) get finer steps than high
// frequencies, so coarse quantization discards detail before it discards
// structure.
type QuantTable [64]float64

// Standard JPEG luminance quantization table (Annex K). There is no
// bitstream to stay compatible with; this table is used for all three
// planes purely for its perceptual weighting.
var baseQuant = [64]float64{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// clampStrength limits s to [0, 1]. Out-of-range values are clamped, never
// rejected; NaN falls back to 0.
func clampStrength(s float64) float64 {
	if math.IsNaN(s) || s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// QuantScale maps a compression strength in [0, 1] to the multiplicative
// scale applied to the base quantization table. Strength converts to an IJG
// quality of 100 down to 1, then runs through the standard libjpeg curve
// (5000/q below quality 50, 200-2q above), normalized to a factor. The
// result is monotonically increasing in strength: 0 at strength 0
// (near-lossless once table entries are floored at 1) up to 50 at
// strength 1.
func QuantScale(strength float64) float64 {
	q := 100 - 99*clampStrength(strength)
	if q < 50 {
		return 5000 / q / 100
	}
	return (200 - 2*q) / 100
}

// QuantTableFor returns the base table scaled for the given strength.
// Entries are floored and kept at 1 or above so zero strength quantizes
// with unit steps.
func QuantTableFor(strength float64) QuantTable {
	scale := QuantScale(strength)
	var t QuantTable
	for i, v := range baseQuant {
		q := math.Floor(v * scale)
		if q < 1 {
			q = 1
		}
		t[i] = q
	}
	return t
}
