package jpegsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownsampleShape(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"even", 8, 6, 4, 3},
		{"odd width", 9, 6, 5, 3},
		{"odd height", 8, 7, 4, 4},
		{"both odd", 9, 7, 5, 4},
		{"single pixel", 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := Downsample(NewPlane(tt.w, tt.h))
			assert.Equal(t, tt.wantW, sub.W)
			assert.Equal(t, tt.wantH, sub.H)
			assert.Len(t, sub.Pix, tt.wantW*tt.wantH)
		})
	}
}

func TestDownsampleAverages(t *testing.T) {
	p := NewPlane(2, 2)
	p.Pix = []float64{10, 20, 30, 40}

	sub := Downsample(p)
	require.Len(t, sub.Pix, 1)
	assert.InDelta(t, 25, sub.Pix[0], 1e-9)
}

func TestDownsampleEdgeReplication(t *testing.T) {
	// Odd-width plane: the rightmost neighborhood replicates its last
	// column, so a uniform plane stays uniform.
	p := NewPlane(3, 2)
	for i := range p.Pix {
		p.Pix[i] = 77
	}

	sub := Downsample(p)
	for i, v := range sub.Pix {
		assert.InDelta(t, 77, v, 1e-9, "sample %d", i)
	}
}

func TestUpsampleReplicates(t *testing.T) {
	sub := NewPlane(2, 1)
	sub.Pix = []float64{5, 9}

	full := Upsample(sub, 4, 2)
	want := []float64{5, 5, 9, 9, 5, 5, 9, 9}
	assert.Equal(t, want, full.Pix)
}

func TestUpsampleOddTarget(t *testing.T) {
	// ceil-sized subsampled planes expand back to the exact original
	// dimensions, including odd ones.
	sub := Downsample(NewPlane(9, 7))
	full := Upsample(sub, 9, 7)
	assert.Equal(t, 9, full.W)
	assert.Equal(t, 7, full.H)
	assert.Len(t, full.Pix, 63)
}
