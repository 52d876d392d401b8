package jpegsim

// Plane is a single-channel sample grid. Y planes are full resolution;
// subsampled Cb/Cr planes are ceil(W/2) x ceil(H/2). Samples stay in the
// 0-255 range between pipeline stages.
type Plane struct {
	W, H int
	Pix  []float64
}

// NewPlane allocates a zeroed w x h plane.
func NewPlane(w, h int) *Plane {
	return &Plane{W: w, H: h, Pix: make([]float64, w*h)}
}

// at returns the sample at (x, y) with edge replication: coordinates beyond
// the plane bounds read the nearest valid row/column. Block padding and
// subsampling both lean on this.
func (p *Plane) at(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= p.W {
		x = p.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= p.H {
		y = p.H - 1
	}
	return p.Pix[y*p.W+x]
}

// splitYCbCr converts img into full-resolution Y, Cb and Cr planes plus the
// per-pixel alpha bytes. Alpha never enters the color transform.
func splitYCbCr(img *Image) (y, cb, cr *Plane, alpha []byte) {
	w, h := img.Width, img.Height
	y = NewPlane(w, h)
	cb = NewPlane(w, h)
	cr = NewPlane(w, h)
	alpha = make([]byte, w*h)

	for i := 0; i < w*h; i++ {
		r := float64(img.Pix[i*4])
		g := float64(img.Pix[i*4+1])
		b := float64(img.Pix[i*4+2])
		y.Pix[i], cb.Pix[i], cr.Pix[i] = RGBToYCbCr(r, g, b)
		alpha[i] = img.Pix[i*4+3]
	}
	return y, cb, cr, alpha
}

// assemble converts full-resolution planes back to RGBA, reattaching the
// original alpha bytes, and writes a freshly allocated output buffer.
func assemble(y, cb, cr *Plane, alpha []byte) *Image {
	w, h := y.W, y.H
	out := NewImage(w, h)

	for i := 0; i < w*h; i++ {
		r, g, b := YCbCrToRGB(y.Pix[i], cb.Pix[i], cr.Pix[i])
		out.Pix[i*4] = clampU8(r)
		out.Pix[i*4+1] = clampU8(g)
		out.Pix[i*4+2] = clampU8(b)
		out.Pix[i*4+3] = alpha[i]
	}
	return out
}
