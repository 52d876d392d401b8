package jpegsim

import "math"

// JFIF RGB <-> YCbCr conversion using the ITU-R BT.601 coefficients.
// The inverse coefficients are derived from the forward set, so a forward
// then inverse pass is identity up to floating-point rounding.

// RGBToYCbCr converts one RGB sample triple to YCbCr. All channels are in
// the 0-255 range; Cb and Cr are centered on 128.
func RGBToYCbCr(r, g, b float64) (y, cb, cr float64) {
	y = 0.299*r + 0.587*g + 0.114*b
	cb = -0.168736*r - 0.331264*g + 0.5*b + 128
	cr = 0.5*r - 0.418688*g - 0.081312*b + 128
	return y, cb, cr
}

// YCbCrToRGB converts one YCbCr sample triple back to RGB.
func YCbCrToRGB(y, cb, cr float64) (r, g, b float64) {
	cb -= 128
	cr -= 128
	r = y + 1.402*cr
	g = y - 0.344136*cb - 0.714136*cr
	b = y + 1.772*cb
	return r, g, b
}

// clampU8 rounds v to the nearest integer and clamps it to the 8-bit range,
// absorbing rounding overflow on the inverse path.
func clampU8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
