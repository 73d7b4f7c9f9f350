package ray

import (
	"fmt"

	"ray-kernel/internal/mathutil"
)

// Ray is an origin point and a direction vector. Rays are values.
type Ray struct {
	Origin    mathutil.Tuple
	Direction mathutil.Tuple
}

// New builds a ray. It panics if origin is not a point or direction is not a
// vector.
func New(origin, direction mathutil.Tuple) Ray {
	if !origin.IsPoint() {
		panic(fmt.Sprintf("ray: origin %+v is not a point", origin))
	}
	if !direction.IsVector() {
		panic(fmt.Sprintf("ray: direction %+v is not a vector", direction))
	}
	return Ray{Origin: origin, Direction: direction}
}

// Position returns origin + direction*t.
func (r Ray) Position(t float32) mathutil.Tuple {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform applies m to both origin and direction. Shapes pass their
// inverse transform to move a world-space ray into object space.
func (r Ray) Transform(m mathutil.Mat4) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
