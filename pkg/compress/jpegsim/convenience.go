package jpegsim

import "image"

// FromImage copies src into an Image, flattening any stdlib image type to
// 8-bit RGBA.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewImage(w, h)

	if rgba, ok := src.(*image.RGBA); ok {
		for y := 0; y < h; y++ {
			row := rgba.Pix[rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			copy(out.Pix[y*w*4:(y+1)*w*4], row[:w*4])
		}
		return out
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := src.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			i := (y*w + x) * 4
			out.Pix[i] = byte(r >> 8)
			out.Pix[i+1] = byte(g >> 8)
			out.Pix[i+2] = byte(b >> 8)
			out.Pix[i+3] = byte(a >> 8)
		}
	}
	return out
}

// ToRGBA copies img into a stdlib *image.RGBA.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+img.Width*4], img.Pix[y*img.Width*4:(y+1)*img.Width*4])
	}
	return out
}

// CompressImage is a convenience wrapper around Compress for stdlib images.
func CompressImage(src image.Image, strength float64) (*image.RGBA, error) {
	out, err := Compress(FromImage(src), strength)
	if err != nil {
		return nil, err
	}
	return out.ToRGBA(), nil
}
