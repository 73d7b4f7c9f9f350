// Package shape intersects rays with shapes placed in world space by a
// transform matrix.
package shape

import (
	"errors"
	"sort"
	"sync/atomic"

	"ray-kernel/internal/ray"
)

// ErrSingularTransform is returned when a shape is built with a transform
// that has no inverse.
var ErrSingularTransform = errors.New("shape: singular transform")

// Shape is anything a ray can be intersected with.
type Shape interface {
	// Intersects returns every crossing of r with the shape, including
	// negative t. The ray is given in world space.
	Intersects(r ray.Ray) []Intersection
	// ID is unique per constructed shape within the process.
	ID() int64
}

var lastID atomic.Int64

func nextID() int64 {
	return lastID.Add(1) - 1
}

// Intersection is a parametric distance along a ray tagged with the shape it
// crossed. Object is a reference, not a copy.
type Intersection struct {
	T      float32
	Object Shape
}

// Sort orders xs ascending by T in place.
func Sort(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the intersection with the smallest non-negative T. Input order
// does not matter. NaN is never a hit. Ties on T are resolved by exact
// comparison, so with equal values the first one seen wins.
func Hit(xs []Intersection) (Intersection, bool) {
	best := -1
	for i, x := range xs {
		if !(x.T >= 0) {
			continue
		}
		if best < 0 || x.T < xs[best].T {
			best = i
		}
	}
	if best < 0 {
		return Intersection{}, false
	}
	return xs[best], true
}
