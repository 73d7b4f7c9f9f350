package mathutil

import "github.com/chewxy/math32"

// Tuple is a homogeneous 4-component value. W=1 marks a point, W=0 a vector.
type Tuple struct {
	X, Y, Z, W float32
}

// Point returns the tuple (x, y, z, 1).
func Point(x, y, z float32) Tuple {
	return Tuple{x, y, z, 1}
}

// Vector returns the tuple (x, y, z, 0).
func Vector(x, y, z float32) Tuple {
	return Tuple{x, y, z, 0}
}

func (t Tuple) IsPoint() bool  { return Equal32(t.W, 1) }
func (t Tuple) IsVector() bool { return Equal32(t.W, 0) }

// AsVector drops W to zero.
func (t Tuple) AsVector() Tuple {
	return Tuple{t.X, t.Y, t.Z, 0}
}

func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

func (t Tuple) Mul(s float32) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

func (t Tuple) Div(s float32) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

// Norm is the Euclidean length over all four components.
func (t Tuple) Norm() float32 {
	return math32.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Unit divides by Norm. A zero tuple yields NaN components.
func (t Tuple) Unit() Tuple {
	return t.Div(t.Norm())
}

func (a Tuple) Dot(b Tuple) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross is only meaningful for two vectors; the result is always a vector.
func (a Tuple) Cross(b Tuple) Tuple {
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Equal compares component-wise within Epsilon.
func (a Tuple) Equal(b Tuple) bool {
	return Equal32(a.X, b.X) && Equal32(a.Y, b.Y) && Equal32(a.Z, b.Z) && Equal32(a.W, b.W)
}
