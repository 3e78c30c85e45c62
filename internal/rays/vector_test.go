package rays

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestVectorOps(t *testing.T) {
	v := Vector3{1, 2, 3}
	w := Vector3{-1, 0.5, 2}
	s := Real(3)

	add := v.Add(w)
	if add != (Vector3{0, 2.5, 5}) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	sub := v.Sub(w)
	if sub != (Vector3{2, 1.5, 1}) {
		t.Fatalf("Sub mismatch: %+v", sub)
	}
	mul := v.Mul(s)
	if mul != (Vector3{3, 6, 9}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	dot := v.Dot(w)
	wantDot := Real(1*(-1) + 2*0.5 + 3*2)
	if dot != wantDot {
		t.Fatalf("Dot mismatch: got %.12g want %.12g", dot, wantDot)
	}
	if v.Len2() != 14 {
		t.Fatalf("Len2 mismatch: %.12g", v.Len2())
	}
	l := v.Len()
	if math.Abs(l-math.Sqrt(14)) > 1e-12 {
		t.Fatalf("Len mismatch: %.12g", l)
	}
	n := v.Norm()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Fatalf("Norm not unit: %.12g", n.Len())
	}
}

func TestNormIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := Vector3{rng.NormFloat64() * 10, rng.NormFloat64() * 10, rng.NormFloat64() * 10}
		if v.Len() == 0 {
			continue
		}
		n1 := v.Norm()
		n2 := n1.Norm()
		if d := n1.Sub(n2).Len(); d > 1e-12 {
			t.Fatalf("Norm(Norm(v)) != Norm(v) for %+v: diff %.3g", v, d)
		}
	}
}

func TestNormZero(t *testing.T) {
	if n := (Vector3{}).Norm(); n != (Vector3{}) {
		t.Fatalf("zero Norm should stay zero, got %+v", n)
	}
	if _, err := (Vector3{}).NormChecked(); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("expected ErrDegenerate, got %v", err)
	}
	n, err := (Vector3{0, 0, -2}).NormChecked()
	if err != nil || n != (Vector3{0, 0, -1}) {
		t.Fatalf("NormChecked wrong: %+v %v", n, err)
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: Vector3{1, 1, 1}, Dir: Vector3{0, 0, -1}}
	if p := r.At(2.5); p != (Vector3{1, 1, -1.5}) {
		t.Fatalf("At wrong: %+v", p)
	}
}
