package canvas

import "ray-kernel/internal/mathutil"

// Color is a linear RGB triple. Channels are not clamped until output.
type Color struct {
	R, G, B float32
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
)

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B}
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B}
}

func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Hadamard multiplies channel by channel.
func (a Color) Hadamard(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B}
}

func (a Color) Equal(b Color) bool {
	return mathutil.Equal32(a.R, b.R) && mathutil.Equal32(a.G, b.G) && mathutil.Equal32(a.B, b.B)
}

// to255 maps a channel to [0, 255], rounding half up.
func to255(v float32) uint8 {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
