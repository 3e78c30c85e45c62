package rays

import (
	"math"
	"math/rand"
	"testing"
)

func mustSphere(t *testing.T, c Vector3, r Real, col RGB) *Sphere {
	t.Helper()
	s, err := NewSphere(c, r, col)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestIntersectSphere_AxisCase(t *testing.T) {
	s := mustSphere(t, Vector3{0, 0, -5}, 3, RGB{1, 0, 0})

	tt, ok := s.intersect(Ray{Dir: Vector3{0, 0, -1}})
	if !ok {
		t.Fatal("expected sphere hit")
	}
	// near surface at z=-2
	if math.Abs(tt-2) > 1e-12 {
		t.Fatalf("t wrong: %.12g", tt)
	}
	n, err := s.normalAt(Vector3{0, 0, -2})
	if err != nil || math.Abs(n.Z-1) > 1e-12 {
		t.Fatalf("normal wrong: %+v %v", n, err)
	}

	// Start inside: exit at z=-8 => t=3
	t2, ok2 := s.intersect(Ray{Origin: Vector3{0, 0, -5}, Dir: Vector3{0, 0, -1}})
	if !ok2 || math.Abs(t2-3) > 1e-12 {
		t.Fatalf("inside->exit wrong: ok=%v t=%.12g", ok2, t2)
	}

	// Sphere entirely behind the origin
	if _, ok := s.intersect(Ray{Dir: Vector3{0, 0, 1}}); ok {
		t.Fatal("sphere behind the ray must not be hit")
	}
	// Passing beside it
	if _, ok := s.intersect(Ray{Origin: Vector3{3.5, 0, 0}, Dir: Vector3{0, 0, -1}}); ok {
		t.Fatal("ray beside the sphere must miss")
	}
}

func TestNewSphereValidation(t *testing.T) {
	for _, r := range []Real{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewSphere(Vector3{}, r, RGB{1, 1, 1}); err == nil {
			t.Fatalf("expected error for radius %v", r)
		}
	}
	s := mustSphere(t, Vector3{}, 1, RGB{2, -1, 0.5})
	if s.Color() != (RGB{1, 0, 0.5}) || s.Kind() != ShapeSphere {
		t.Fatalf("sphere color/kind wrong: %+v %v", s.Color(), s.Kind())
	}
}

// A hit is reported iff the line passes within the radius of the center and
// at least one root is nonnegative.
func TestIntersectSphere_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rnd := func(scale Real) Vector3 {
		return Vector3{(rng.Float64()*2 - 1) * scale, (rng.Float64()*2 - 1) * scale, (rng.Float64()*2 - 1) * scale}
	}
	checked := 0
	for i := 0; i < 5000; i++ {
		s := mustSphere(t, rnd(5), 0.5+rng.Float64()*3, RGB{1, 1, 1})
		r := Ray{Origin: rnd(5), Dir: rnd(1).Norm()}
		if r.Dir.Len() == 0 {
			continue
		}
		L := s.Center.Sub(r.Origin)
		// perpendicular distance via the cross product
		cx := L.Y*r.Dir.Z - L.Z*r.Dir.Y
		cy := L.Z*r.Dir.X - L.X*r.Dir.Z
		cz := L.X*r.Dir.Y - L.Y*r.Dir.X
		dist := math.Sqrt(cx*cx + cy*cy + cz*cz)
		if math.Abs(dist-s.Radius) < 1e-6 {
			continue // tangent, numerically ambiguous
		}
		far := L.Dot(r.Dir) + math.Sqrt(math.Max(0, s.Radius*s.Radius-dist*dist))
		if math.Abs(far) < 1e-6 {
			continue
		}
		want := dist <= s.Radius && far >= 0
		tt, got := s.intersect(r)
		if got != want {
			t.Fatalf("sphere %+v ray %+v: got hit=%v want %v", s, r, got, want)
		}
		if got {
			if tt < 0 {
				t.Fatalf("negative t: %.12g", tt)
			}
			if d := r.At(tt).Sub(s.Center).Len(); math.Abs(d-s.Radius) > 1e-9 {
				t.Fatalf("hit point not on surface: |p-c|=%.12g r=%.12g", d, s.Radius)
			}
		}
		checked++
	}
	if checked < 4000 {
		t.Fatalf("too few cases checked: %d", checked)
	}
}
