package jpegsim

import "math"

// Separable orthonormal 8x8 DCT-II. Both directions go through the same
// coefficient matrix (forward multiplies by it, inverse by its transpose),
// so inverse(forward(block)) reproduces the block up to floating-point
// rounding.

// dctMatrix[u][n] = alpha(u) * cos((2n+1) * u * pi / 16), with
// alpha(0) = sqrt(1/8) and alpha(u>0) = sqrt(2/8).
var dctMatrix [8][8]float64

func init() {
	for u := 0; u < 8; u++ {
		alpha := math.Sqrt(2.0 / 8.0)
		if u == 0 {
			alpha = math.Sqrt(1.0 / 8.0)
		}
		for n := 0; n < 8; n++ {
			dctMatrix[u][n] = alpha * math.Cos(float64(2*n+1)*float64(u)*math.Pi/16)
		}
	}
}

// forwardDCT8 transforms an 8x8 spatial block into frequency coefficients
// in place, row pass then column pass. Coefficients come out ordered low to
// high frequency from the top-left corner.
func forwardDCT8(blk *Block) {
	var tmp Block

	// row pass
	for x := 0; x < 8; x++ {
		for v := 0; v < 8; v++ {
			var sum float64
			for n := 0; n < 8; n++ {
				sum += dctMatrix[v][n] * blk[x*8+n]
			}
			tmp[x*8+v] = sum
		}
	}

	// column pass
	for u := 0; u < 8; u++ {
		for v := 0; v < 8; v++ {
			var sum float64
			for n := 0; n < 8; n++ {
				sum += dctMatrix[u][n] * tmp[n*8+v]
			}
			blk[u*8+v] = sum
		}
	}
}

// inverseDCT8 transforms an 8x8 coefficient block back to spatial samples in
// place, column pass then row pass.
func inverseDCT8(blk *Block) {
	var tmp Block

	// column pass
	for x := 0; x < 8; x++ {
		for v := 0; v < 8; v++ {
			var sum float64
			for u := 0; u < 8; u++ {
				sum += dctMatrix[u][x] * blk[u*8+v]
			}
			tmp[x*8+v] = sum
		}
	}

	// row pass
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			var sum float64
			for v := 0; v < 8; v++ {
				sum += dctMatrix[v][y] * tmp[x*8+v]
			}
			blk[x*8+y] = sum
		}
	}
}
