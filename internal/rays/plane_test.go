package rays

import (
	"errors"
	"math"
	"testing"
)

func TestIntersectPlane(t *testing.T) {
	p, err := NewPlane(Vector3{0, -2, 0}, Vector3{0, 1, 0}, RGB{0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}

	// Towards the front side
	tt, ok := p.intersect(Ray{Dir: Vector3{0, -1, 0}})
	if !ok || math.Abs(tt-2) > 1e-12 {
		t.Fatalf("expected hit at t=2, got ok=%v t=%.12g", ok, tt)
	}
	// Away from the plane
	if _, ok := p.intersect(Ray{Dir: Vector3{0, 1, 0}}); ok {
		t.Fatal("ray going up must miss")
	}
	// Parallel
	if _, ok := p.intersect(Ray{Dir: Vector3{1, 0, 0}}); ok {
		t.Fatal("parallel ray must miss")
	}
	// From behind, pointing through the back side
	if _, ok := p.intersect(Ray{Origin: Vector3{0, -5, 0}, Dir: Vector3{0, 1, 0}}); ok {
		t.Fatal("back side must not be hit")
	}
	// Oblique: 45 degrees down, distance 2*sqrt(2)
	tt, ok = p.intersect(Ray{Dir: Vector3{0, -1, -1}.Norm()})
	if !ok || math.Abs(tt-2*math.Sqrt2) > 1e-12 {
		t.Fatalf("oblique t wrong: ok=%v t=%.12g", ok, tt)
	}
	n, _ := p.normalAt(Vector3{3, -2, 7})
	if n != (Vector3{0, 1, 0}) {
		t.Fatalf("plane normal wrong: %+v", n)
	}
}

func TestNewPlaneNormalizes(t *testing.T) {
	p, err := NewPlane(Vector3{}, Vector3{0, 0, 4}, RGB{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if p.Normal != (Vector3{0, 0, 1}) || p.Kind() != ShapePlane {
		t.Fatalf("normal not normalized: %+v", p.Normal)
	}
	if _, err := NewPlane(Vector3{}, Vector3{}, RGB{1, 1, 1}); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("expected ErrDegenerate for zero normal, got %v", err)
	}
}
