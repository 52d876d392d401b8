package jpegsim

// 4:2:0 chroma subsampling: Cb and Cr are stored at half resolution in each
// axis and expanded back before reconstruction. This stage runs the same way
// at every strength.

// Downsample averages each 2x2 neighborhood of p into one sample, producing
// a plane of ceil(W/2) x ceil(H/2). Neighborhoods that fall off the right or
// bottom edge of an odd-sized plane replicate the last valid row/column.
func Downsample(p *Plane) *Plane {
	cw := (p.W + 1) / 2
	ch := (p.H + 1) / 2
	out := NewPlane(cw, ch)

	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			sum := p.at(2*x, 2*y) +
				p.at(2*x+1, 2*y) +
				p.at(2*x, 2*y+1) +
				p.at(2*x+1, 2*y+1)
			out.Pix[y*cw+x] = sum / 4
		}
	}
	return out
}

// Upsample expands a subsampled plane back to w x h by replicating each
// sample over its 2x2 footprint.
func Upsample(p *Plane, w, h int) *Plane {
	out := NewPlane(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Pix[y*w+x] = p.at(x/2, y/2)
		}
	}
	return out
}
