package shape

import (
	"fmt"

	"github.com/chewxy/math32"

	"ray-kernel/internal/mathutil"
	"ray-kernel/internal/ray"
)

// Sphere is the unit sphere at the object-space origin, placed in the world
// by transform.
type Sphere struct {
	transform mathutil.Mat4
	inverse   mathutil.Mat4
	id        int64
}

// NewSphere builds a sphere whose transform maps object space into world
// space. A non-invertible transform is rejected.
func NewSphere(transform mathutil.Mat4) (*Sphere, error) {
	inv, err := transform.InverseChecked()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularTransform, err)
	}
	return &Sphere{
		transform: transform,
		inverse:   inv,
		id:        nextID(),
	}, nil
}

// MustSphere is like NewSphere but panics on error.
func MustSphere(transform mathutil.Mat4) *Sphere {
	s, err := NewSphere(transform)
	if err != nil {
		panic(err)
	}
	return s
}

// UnitSphere returns a sphere with the identity transform.
func UnitSphere() *Sphere {
	return MustSphere(mathutil.Identity4)
}

func (s *Sphere) ID() int64 { return s.id }

func (s *Sphere) Transform() mathutil.Mat4 { return s.transform }

// Intersects solves |o + t·d|² = 1 for the ray in object space. Both roots
// are returned, smaller first; a tangent ray yields two equal roots.
func (s *Sphere) Intersects(r ray.Ray) []Intersection {
	local := r.Transform(s.inverse)
	sphereToRay := local.Origin.Sub(mathutil.Point(0, 0, 0))

	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math32.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	return []Intersection{
		{T: t0, Object: s},
		{T: t1, Object: s},
	}
}
