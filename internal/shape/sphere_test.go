package shape

import (
	"errors"
	"sync"
	"testing"

	"ray-kernel/internal/mathutil"
	"ray-kernel/internal/ray"
)

func TestUnitSphereIntersects(t *testing.T) {
	cases := []struct {
		name   string
		origin mathutil.Tuple
		want   []float32
	}{
		{"through center", mathutil.Point(0, 0, -5), []float32{4, 6}},
		{"tangent", mathutil.Point(0, 1, -5), []float32{5, 5}},
		{"miss", mathutil.Point(0, 2, -5), nil},
		{"inside", mathutil.Point(0, 0, 0), []float32{-1, 1}},
		{"behind", mathutil.Point(0, 0, 5), []float32{-6, -4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := UnitSphere()
			xs := s.Intersects(ray.New(c.origin, mathutil.Vector(0, 0, 1)))
			if len(xs) != len(c.want) {
				t.Fatalf("got %d intersections, want %d", len(xs), len(c.want))
			}
			for i, x := range xs {
				if !mathutil.Equal32(x.T, c.want[i]) {
					t.Fatalf("xs[%d].T = %v, want %v", i, x.T, c.want[i])
				}
				if x.Object.ID() != s.ID() {
					t.Fatalf("xs[%d] tagged with shape %d, want %d", i, x.Object.ID(), s.ID())
				}
			}
		})
	}
}

func TestTransformedSphereIntersects(t *testing.T) {
	r := ray.New(mathutil.Point(0, 0, -5), mathutil.Vector(0, 0, 1))

	scaled := MustSphere(mathutil.Scaling(2, 2, 2))
	xs := scaled.Intersects(r)
	if len(xs) != 2 || !mathutil.Equal32(xs[0].T, 3) || !mathutil.Equal32(xs[1].T, 7) {
		t.Fatalf("scaled sphere: %+v", xs)
	}

	moved := MustSphere(mathutil.Translation(5, 0, 0))
	if xs := moved.Intersects(r); len(xs) != 0 {
		t.Fatalf("translated sphere should be missed: %+v", xs)
	}

	if !scaled.Transform().Equal(mathutil.Scaling(2, 2, 2)) {
		t.Fatalf("Transform mismatch: %v", scaled.Transform())
	}
}

func TestSmallSphere(t *testing.T) {
	s, err := NewSphere(mathutil.Scaling(0.04, 0.04, 0.04))
	if err != nil {
		t.Fatalf("small sphere rejected: %v", err)
	}
	xs := s.Intersects(ray.New(mathutil.Point(0, 0, -5), mathutil.Vector(0, 0, 1)))
	if len(xs) != 2 {
		t.Fatalf("got %d intersections, want 2", len(xs))
	}
	for i, want := range []float32{4.96, 5.04} {
		if d := xs[i].T - want; d > 1e-3 || d < -1e-3 {
			t.Fatalf("xs[%d].T = %v, want %v", i, xs[i].T, want)
		}
	}

	if _, err := NewSphere(mathutil.Scaling(0.5, 0.5, 1e-4)); err != nil {
		t.Fatalf("thin sphere rejected: %v", err)
	}
}

func TestNewSphereSingularTransform(t *testing.T) {
	_, err := NewSphere(mathutil.Scaling(0, 1, 1))
	if !errors.Is(err, ErrSingularTransform) {
		t.Fatalf("expected ErrSingularTransform, got %v", err)
	}
	if !errors.Is(err, mathutil.ErrSingular) {
		t.Fatalf("expected wrapped ErrSingular, got %v", err)
	}
}

func TestSphereIDsUnique(t *testing.T) {
	const n = 64
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = UnitSphere().ID()
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate shape id %d", id)
		}
		seen[id] = true
	}

	a, b := UnitSphere(), UnitSphere()
	if b.ID() <= a.ID() {
		t.Fatalf("ids not increasing: %d then %d", a.ID(), b.ID())
	}
}
