// Package scene walks a flat list of shapes: it finds the hit for a world
// ray and paints a canvas by projecting pixels onto a wall behind the shapes.
package scene

import (
	"ray-kernel/internal/canvas"
	"ray-kernel/internal/ray"
	"ray-kernel/internal/shape"
)

// Object pairs a shape with the flat color it is painted with.
type Object struct {
	Shape shape.Shape
	Color canvas.Color
}

// Scene is a flat list of objects in world space.
type Scene struct {
	Objects    []Object
	Background canvas.Color
}

func New(background canvas.Color, objects ...Object) *Scene {
	return &Scene{Objects: objects, Background: background}
}

// Intersect merges the intersections of r with every object, sorted by t.
func (sc *Scene) Intersect(r ray.Ray) []shape.Intersection {
	var xs []shape.Intersection
	for _, o := range sc.Objects {
		xs = append(xs, o.Shape.Intersects(r)...)
	}
	shape.Sort(xs)
	return xs
}

// ColorAt is the color of the object hit by r, or the background.
func (sc *Scene) ColorAt(r ray.Ray) canvas.Color {
	h, ok := shape.Hit(sc.Intersect(r))
	if !ok {
		return sc.Background
	}
	id := h.Object.ID()
	for _, o := range sc.Objects {
		if o.Shape.ID() == id {
			return o.Color
		}
	}
	return sc.Background
}
