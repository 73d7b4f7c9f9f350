package canvas

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
)

// maxPPMLine is the longest data line plain PPM readers must accept.
const maxPPMLine = 70

// WritePPM writes the canvas as plain (P3) PPM.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height)

	tokens := make([]string, 0, c.Width*3)
	for y := 0; y < c.Height; y++ {
		tokens = tokens[:0]
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			tokens = append(tokens,
				strconv.Itoa(int(to255(p.R))),
				strconv.Itoa(int(to255(p.G))),
				strconv.Itoa(int(to255(p.B))))
		}
		writeWrapped(bw, tokens)
	}
	return bw.Flush()
}

// writePPMImage writes any image as plain PPM, dropping alpha.
func writePPMImage(w io.Writer, img image.Image) error {
	b := img.Bounds()
	c := New(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			c.Set(x-b.Min.X, y-b.Min.Y, Color{
				R: float32(r>>8) / 255,
				G: float32(g>>8) / 255,
				B: float32(bl>>8) / 255,
			})
		}
	}
	return c.WritePPM(w)
}

// writeWrapped joins tokens with spaces, breaking lines so each stays
// shorter than maxPPMLine characters, and ends with a newline.
func writeWrapped(w *bufio.Writer, tokens []string) {
	n := 0
	for i, t := range tokens {
		if i > 0 {
			if n+1+len(t) >= maxPPMLine {
				w.WriteByte('\n')
				n = 0
			} else {
				w.WriteByte(' ')
				n++
			}
		}
		w.WriteString(t)
		n += len(t)
	}
	w.WriteByte('\n')
}
