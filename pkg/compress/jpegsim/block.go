package jpegsim

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
)

// Block is an 8x8 window into a plane, row-major: spatial samples before
// the forward transform, frequency coefficients after it. Blocks are plain
// values with no shared state, so they are safe to process in parallel.
type Block [64]float64

// ForwardBlock reads the 8x8 block of p anchored at (x0, y0), level-shifts
// it by -128, applies the forward DCT and quantizes each coefficient by the
// matching table entry. Blocks hanging over the right or bottom edge are
// padded by edge replication. The result holds quantized integer
// coefficients.
func ForwardBlock(p *Plane, x0, y0 int, qt *QuantTable) Block {
	var blk Block
	for u := 0; u < 8; u++ {
		for v := 0; v < 8; v++ {
			blk[u*8+v] = p.at(x0+v, y0+u) - 128
		}
	}
	forwardDCT8(&blk)
	for i := range blk {
		blk[i] = math.Round(blk[i] / qt[i])
	}
	return blk
}

// InverseBlock dequantizes blk by the same table, applies the inverse DCT
// and reverses the level shift, clamping every sample to [0, 255]. It is
// the exact mathematical inverse of ForwardBlock minus the lossy rounding
// in the quantizer.
func InverseBlock(blk *Block, qt *QuantTable) {
	for i := range blk {
		blk[i] *= qt[i]
	}
	inverseDCT8(blk)
	for i := range blk {
		s := blk[i] + 128
		if s < 0 {
			s = 0
		} else if s > 255 {
			s = 255
		}
		blk[i] = s
	}
}

// storeBlock writes the reconstructed samples of blk back into p at
// (x0, y0), discarding any edge padding.
func storeBlock(p *Plane, x0, y0 int, blk *Block) {
	for u := 0; u < 8; u++ {
		y := y0 + u
		if y >= p.H {
			break
		}
		for v := 0; v < 8; v++ {
			x := x0 + v
			if x >= p.W {
				break
			}
			p.Pix[y*p.W+x] = blk[u*8+v]
		}
	}
}

// transformPlane runs forward transform, quantize, dequantize and inverse
// transform over every 8x8 block of p in place.
//
// Blocks are mutually independent, so worker goroutines claim whole block
// rows through an atomic counter and write disjoint plane regions; the
// result is byte-identical to the serial order.
func transformPlane(p *Plane, qt *QuantTable) {
	bw := (p.W + 7) / 8
	bh := (p.H + 7) / 8

	workers := runtime.GOMAXPROCS(0)
	if workers > bh {
		workers = bh
	}
	if workers < 1 {
		workers = 1
	}

	var next atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				by := int(next.Add(1) - 1)
				if by >= bh {
					return
				}
				for bx := 0; bx < bw; bx++ {
					blk := ForwardBlock(p, bx*8, by*8, qt)
					InverseBlock(&blk, qt)
					storeBlock(p, bx*8, by*8, &blk)
				}
			}
		}()
	}
	wg.Wait()
}
