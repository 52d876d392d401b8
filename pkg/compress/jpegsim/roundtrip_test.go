package jpegsim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jpegsim "github.com/jpfielding/jpegfx/pkg/compress/jpegsim"
)

// fillImage builds a w x h test image from a per-pixel RGBA function.
func fillImage(w, h int, at func(x, y int) (r, g, b, a byte)) *jpegsim.Image {
	img := jpegsim.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = at(x, y)
		}
	}
	return img
}

// textured is a mix of gradient, checkerboard and color variation that puts
// energy into every frequency band.
func textured(w, h int) *jpegsim.Image {
	return fillImage(w, h, func(x, y int) (byte, byte, byte, byte) {
		r := byte((x*255/w + y*13) % 256)
		g := byte(255 * ((x/4 + y/4) % 2))
		b := byte(128 + 100*math.Sin(float64(x)*0.7)*math.Cos(float64(y)*0.5))
		return r, g, b, 255
	})
}

// meanAbsDiff is the mean absolute per-channel RGB difference between two
// same-sized images.
func meanAbsDiff(a, b *jpegsim.Image) float64 {
	var sum float64
	n := 0
	for i := 0; i < len(a.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			sum += math.Abs(float64(a.Pix[i+c]) - float64(b.Pix[i+c]))
			n++
		}
	}
	return sum / float64(n)
}

func TestCompressShape(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"single pixel", 1, 1},
		{"block aligned", 16, 16},
		{"odd both", 10, 10},
		{"odd width", 33, 16},
		{"odd height", 16, 17},
		{"narrow", 1, 100},
		{"wide", 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := jpegsim.Compress(textured(tt.w, tt.h), 0.7)
			require.NoError(t, err)
			assert.Equal(t, tt.w, out.Width)
			assert.Equal(t, tt.h, out.Height)
			assert.Len(t, out.Pix, tt.w*tt.h*4)
		})
	}
}

func TestAlphaPassthrough(t *testing.T) {
	img := fillImage(24, 24, func(x, y int) (byte, byte, byte, byte) {
		return byte(x * 10), byte(y * 10), byte(x + y), byte((x*7 + y*13) % 256)
	})

	for _, strength := range []float64{0, 0.5, 1} {
		out, err := jpegsim.Compress(img, strength)
		require.NoError(t, err)
		for i := 3; i < len(img.Pix); i += 4 {
			require.Equal(t, img.Pix[i], out.Pix[i], "alpha at byte %d, strength %v", i, strength)
		}
	}
}

func TestNearIdentityAtZeroStrength(t *testing.T) {
	// Chroma-neutral inputs isolate the transform round trip from
	// subsampling, leaving rounding noise only.
	gradient := fillImage(32, 32, func(x, y int) (byte, byte, byte, byte) {
		v := byte((x*4 + y*4) % 256)
		return v, v, v, 255
	})

	out, err := jpegsim.Compress(gradient, 0)
	require.NoError(t, err)
	for i := 0; i < len(gradient.Pix); i++ {
		require.InDelta(t, gradient.Pix[i], out.Pix[i], 3, "byte %d", i)
	}
}

func TestMonotonicDegradation(t *testing.T) {
	img := textured(64, 64)
	strengths := []float64{0, 0.25, 0.5, 0.75, 1}

	prev := -1.0
	for _, s := range strengths {
		out, err := jpegsim.Compress(img, s)
		require.NoError(t, err)
		mad := meanAbsDiff(img, out)
		assert.GreaterOrEqual(t, mad+1e-9, prev, "strength %v", s)
		prev = mad
	}
}

func TestCompressDeterministic(t *testing.T) {
	img := textured(48, 33)

	a, err := jpegsim.Compress(img, 0.6)
	require.NoError(t, err)
	b, err := jpegsim.Compress(img, 0.6)
	require.NoError(t, err)

	assert.Equal(t, a.Pix, b.Pix)
}

func TestStrengthClamping(t *testing.T) {
	img := textured(24, 24)

	low, err := jpegsim.Compress(img, -5)
	require.NoError(t, err)
	zero, err := jpegsim.Compress(img, 0)
	require.NoError(t, err)
	assert.Equal(t, zero.Pix, low.Pix)

	high, err := jpegsim.Compress(img, 5)
	require.NoError(t, err)
	one, err := jpegsim.Compress(img, 1)
	require.NoError(t, err)
	assert.Equal(t, one.Pix, high.Pix)
}

func TestCompressDoesNotMutateInput(t *testing.T) {
	img := textured(17, 11)
	saved := make([]byte, len(img.Pix))
	copy(saved, img.Pix)

	_, err := jpegsim.Compress(img, 0.9)
	require.NoError(t, err)
	assert.Equal(t, saved, img.Pix)
}

func TestInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		img  *jpegsim.Image
	}{
		{"nil image", nil},
		{"zero width", &jpegsim.Image{Width: 0, Height: 4, Pix: []byte{}}},
		{"zero height", &jpegsim.Image{Width: 4, Height: 0, Pix: []byte{}}},
		{"short buffer", &jpegsim.Image{Width: 4, Height: 4, Pix: make([]byte, 63)}},
		{"long buffer", &jpegsim.Image{Width: 4, Height: 4, Pix: make([]byte, 65)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := jpegsim.Compress(tt.img, 0.5)
			require.ErrorIs(t, err, jpegsim.ErrInvalidDimensions)
			assert.Nil(t, out)
		})
	}
}

func TestSolidGrayScenario(t *testing.T) {
	gray := fillImage(16, 16, func(x, y int) (byte, byte, byte, byte) {
		return 128, 128, 128, 255
	})

	// Strength 0: same solid gray within rounding tolerance.
	out, err := jpegsim.Compress(gray, 0)
	require.NoError(t, err)
	for i := 0; i < len(gray.Pix); i++ {
		require.InDelta(t, gray.Pix[i], out.Pix[i], 1, "byte %d", i)
	}

	// Strength 1: shape and alpha survive, channels stay in range by type.
	out, err = jpegsim.Compress(gray, 1)
	require.NoError(t, err)
	assert.Equal(t, 16, out.Width)
	assert.Equal(t, 16, out.Height)
	for i := 3; i < len(out.Pix); i += 4 {
		require.Equal(t, byte(255), out.Pix[i], "alpha at byte %d", i)
	}
}
