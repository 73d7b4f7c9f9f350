package mathutil

import "github.com/chewxy/math32"

// Translation moves points by (x, y, z); vectors are unaffected.
func Translation(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

func Scaling(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns a rotation around the X axis. Angle in radians.
func RotationX(a float32) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation around the Y axis.
func RotationY(a float32) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation around the Z axis.
func RotationZ(a float32) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Chain composes transforms in application order: the first argument is
// applied to a tuple first. Chain() is the identity.
func Chain(ms ...Mat4) Mat4 {
	r := Identity4
	for _, m := range ms {
		r = m.Mul(r)
	}
	return r
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math32.Pi / 180
}
