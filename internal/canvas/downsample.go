package canvas

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks a supersampled render to w×h with CatmullRom filtering.
// Resampling runs on premultiplied pixels so transparent edges do not darken.
// Images already no larger than w×h are returned unchanged.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	// image.RGBA is premultiplied; draw converts from NRGBA on copy.
	src := image.NewRGBA(b)
	draw.Draw(src, b, img, b.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return unpremultiply(dst)
}

func unpremultiply(src *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(src.Bounds())
	for i := 0; i < len(src.Pix); i += 4 {
		a := src.Pix[i+3]
		out.Pix[i+3] = a
		if a == 0 {
			continue
		}
		k := 255 / float64(a)
		for c := 0; c < 3; c++ {
			out.Pix[i+c] = clamp8(float64(src.Pix[i+c]) * k)
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
