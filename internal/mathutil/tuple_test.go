package mathutil

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestPointAndVector(t *testing.T) {
	p := Point(4, -4, 3)
	if !p.IsPoint() || p.IsVector() {
		t.Fatalf("Point not tagged as point: %+v", p)
	}
	v := Vector(4, -4, 3)
	if !v.IsVector() || v.IsPoint() {
		t.Fatalf("Vector not tagged as vector: %+v", v)
	}
	if got := p.AsVector(); got != v {
		t.Fatalf("AsVector mismatch: %+v", got)
	}
	raw := Tuple{1, 2, 3, 0.5}
	if raw.IsPoint() || raw.IsVector() {
		t.Fatalf("raw tuple tagged: %+v", raw)
	}
}

func TestTupleArithmetic(t *testing.T) {
	a := Tuple{3, -2, 5, 1}
	b := Tuple{-2, 3, 1, 0}
	if got := a.Add(b); got != (Tuple{1, 1, 6, 1}) {
		t.Fatalf("Add mismatch: %+v", got)
	}
	if got := Point(3, 2, 1).Sub(Point(5, 6, 7)); got != Vector(-2, -4, -6) {
		t.Fatalf("point-point mismatch: %+v", got)
	}
	if got := Point(3, 2, 1).Sub(Vector(5, 6, 7)); got != Point(-2, -4, -6) {
		t.Fatalf("point-vector mismatch: %+v", got)
	}
	if got := (Tuple{1, -2, 3, -4}).Neg(); got != (Tuple{-1, 2, -3, 4}) {
		t.Fatalf("Neg mismatch: %+v", got)
	}
	if got := (Tuple{1, -2, 3, -4}).Mul(0.5); got != (Tuple{0.5, -1, 1.5, -2}) {
		t.Fatalf("Mul mismatch: %+v", got)
	}
	if got := (Tuple{1, -2, 3, -4}).Div(2); got != (Tuple{0.5, -1, 1.5, -2}) {
		t.Fatalf("Div mismatch: %+v", got)
	}
}

func TestTupleEqual(t *testing.T) {
	if !Point(1, 2, -4).Equal(Point(1, 2, -4)) {
		t.Fatal("equal points differ")
	}
	if !Point(1, 2, -4).Equal(Point(1.00001, 2, -4)) {
		t.Fatal("points within epsilon differ")
	}
	if Point(1, 2, -4).Equal(Point(0, 2, -4)) {
		t.Fatal("different points equal")
	}
	if Point(1, 2, -4).Equal(Vector(1, 2, -4)) {
		t.Fatal("point equals vector")
	}
}

func TestNormAndUnit(t *testing.T) {
	if n := Vector(3, 0, -4).Norm(); !Equal32(n, 5) {
		t.Fatalf("Norm mismatch: %v", n)
	}
	u := Vector(1, 2, 3).Unit()
	if !u.Equal(Vector(0.26726, 0.53452, 0.80178)) {
		t.Fatalf("Unit mismatch: %+v", u)
	}
	for _, v := range []Tuple{Vector(1, 0, 0), Vector(-3, 7, 0.25), Vector(1e3, -2e3, 5)} {
		if n := v.Unit().Norm(); !Equal32(n, 1) {
			t.Fatalf("unit of %+v has norm %v", v, n)
		}
	}
	z := Vector(0, 0, 0).Unit()
	if !math32.IsNaN(z.X) {
		t.Fatalf("zero vector unit should be NaN, got %+v", z)
	}
}

func TestDotCross(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(2, 3, 4)
	if d := a.Dot(b); !Equal32(d, 20) {
		t.Fatalf("Dot mismatch: %v", d)
	}
	c := Vector(-1, 2, -1)
	if got := a.Cross(b); !got.Equal(c) {
		t.Fatalf("Cross mismatch: %+v", got)
	}
	if got := b.Cross(a); !got.Equal(c.Mul(-1)) {
		t.Fatalf("reverse Cross mismatch: %+v", got)
	}
}

func TestPointVectorClosure(t *testing.T) {
	pts := []Tuple{Point(0, 0, 0), Point(1, -2, 3), Point(-7.5, 4, 0.1)}
	vecs := []Tuple{Vector(0, 0, 0), Vector(1, 1, 1), Vector(-3, 2, 9)}
	for _, a := range pts {
		for _, b := range pts {
			if !a.Sub(b).IsVector() {
				t.Fatalf("%+v - %+v is not a vector", a, b)
			}
		}
		for _, v := range vecs {
			if !a.Sub(v).IsPoint() || !a.Add(v).IsPoint() {
				t.Fatalf("%+v -/+ %+v is not a point", a, v)
			}
		}
	}
}
