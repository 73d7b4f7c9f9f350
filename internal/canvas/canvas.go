package canvas

import "image"

// Canvas holds the rendering target as a flat row-major slice.
type Canvas struct {
	Width  int
	Height int
	pixels []Color // len = W*H, index y*W+x
}

// New allocates a black canvas.
func New(w, h int) *Canvas {
	return &Canvas{
		Width:  w,
		Height: h,
		pixels: make([]Color, w*h),
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// At returns the pixel at (x, y), or Black outside the canvas.
func (c *Canvas) At(x, y int) Color {
	if !c.inBounds(x, y) {
		return Black
	}
	return c.pixels[y*c.Width+x]
}

// Set writes a pixel. Writes outside the canvas are dropped.
func (c *Canvas) Set(x, y int, col Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// Image converts the canvas to an opaque NRGBA image.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			i := img.PixOffset(x, y)
			img.Pix[i] = to255(p.R)
			img.Pix[i+1] = to255(p.G)
			img.Pix[i+2] = to255(p.B)
			img.Pix[i+3] = 255
		}
	}
	return img
}
