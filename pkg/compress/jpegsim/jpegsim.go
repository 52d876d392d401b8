// Package jpegsim simulates JPEG lossy-compression artifacts on raw RGBA
// pixel data without producing an encoded bitstream. Compress runs a full
// JPEG-style round trip in memory — RGB to YCbCr conversion, 4:2:0 chroma
// subsampling, blockwise DCT with quantization, and reconstruction — and
// returns a new image degraded the way a real encode/decode cycle would
// degrade it (blockiness, chroma bleeding, ringing).
package jpegsim

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidDimensions = errors.New("jpegsim: invalid image dimensions")
)

// Image is a width x height grid of RGBA quadruplets, row-major with the
// origin at the top left, 8 bits per channel.
type Image struct {
	Width  int
	Height int
	// Pix holds Width*Height*4 bytes in R,G,B,A order.
	Pix []byte
}

// NewImage allocates a zeroed Image of the given dimensions.
func NewImage(w, h int) *Image {
	return &Image{
		Width:  w,
		Height: h,
		Pix:    make([]byte, w*h*4),
	}
}

// Compress returns a copy of img visually degraded the way a JPEG
// encoder/decoder round trip would degrade it. strength ranges from 0
// (near-lossless, output differs from input by rounding only) to 1 (heavy
// coefficient loss); values outside [0,1] are clamped. The alpha channel is
// copied through unchanged. The input buffer is never mutated and the
// returned buffer is freshly allocated.
//
// Compress holds no state between calls and is safe for concurrent use.
func Compress(img *Image, strength float64) (*Image, error) {
	if err := validate(img); err != nil {
		return nil, err
	}
	qt := QuantTableFor(strength)

	y, cb, cr, alpha := splitYCbCr(img)

	// Chroma is stored at quarter resolution regardless of strength; this
	// is the source of the color-bleeding artifacts.
	cbSub := Downsample(cb)
	crSub := Downsample(cr)

	transformPlane(y, &qt)
	transformPlane(cbSub, &qt)
	transformPlane(crSub, &qt)

	cbFull := Upsample(cbSub, img.Width, img.Height)
	crFull := Upsample(crSub, img.Width, img.Height)

	return assemble(y, cbFull, crFull, alpha), nil
}

func validate(img *Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidDimensions)
	}
	if img.Width < 1 || img.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, img.Width, img.Height)
	}
	if want := img.Width * img.Height * 4; len(img.Pix) != want {
		return fmt.Errorf("%w: pixel buffer is %d bytes, want %d", ErrInvalidDimensions, len(img.Pix), want)
	}
	return nil
}
