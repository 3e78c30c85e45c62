package rays

import "math"

// Hit describes the nearest intersection of a ray with the scene.
type Hit struct {
	Index  int // index into Scene.Objects, -1 when nothing was hit
	Obj    Primitive
	T      Real
	Point  Vector3
	Normal Vector3
}

// Ok reports whether the ray hit anything.
func (h Hit) Ok() bool { return h.Obj != nil }

// nearest returns the index and distance of the closest object hit along r.
// Ties keep the earliest object; once stops at the first hit found.
func (s *Scene) nearest(r Ray, tMax Real, once bool) (int, Real) {
	bestI, bestT := -1, tMax
	for i, o := range s.Objects {
		if t, ok := o.intersect(r); ok && t < bestT {
			bestI, bestT = i, t
			if once {
				break
			}
		}
	}
	return bestI, bestT
}

// NearestHit finds the closest object along r and resolves the hit point and normal.
// Degenerate normals are reported through the error, with the hit otherwise filled in.
func (s *Scene) NearestHit(r Ray) (Hit, error) {
	i, t := s.nearest(r, math.Inf(1), false)
	if i < 0 {
		return Hit{Index: -1}, nil
	}
	obj := s.Objects[i]
	p := r.At(t)
	n, err := obj.normalAt(p)
	return Hit{Index: i, Obj: obj, T: t, Point: p, Normal: n}, err
}

// AnyHit reports whether anything blocks r closer than tMax, stopping at the
// first hit found. Intended for shadow rays.
func (s *Scene) AnyHit(r Ray, tMax Real) bool {
	i, _ := s.nearest(r, tMax, true)
	return i >= 0
}
