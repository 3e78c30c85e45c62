package rays

import (
	"fmt"
	"math"
)

// Sphere is a solid sphere with a uniform color.
type Sphere struct {
	Center Vector3
	Radius Real
	Col    RGB

	// cached
	r2 Real
}

func NewSphere(center Vector3, radius Real, color RGB) (*Sphere, error) {
	if !(radius > 0) || !isFinite(radius) {
		return nil, fmt.Errorf("sphere radius must be > 0, got %.6g", radius)
	}
	if !center.finite() || !color.finite() {
		return nil, fmt.Errorf("sphere center %+v / color %+v: %w", center, color, ErrNonFinite)
	}
	s := &Sphere{
		Center: center,
		Radius: radius,
		Col:    color.clamp01(),
		r2:     radius * radius,
	}
	DebugLog("Created sphere: %+v", s)
	return s, nil
}

func (s *Sphere) Kind() Shape { return ShapeSphere }
func (s *Sphere) Color() RGB  { return s.Col }

// Geometric ray/sphere test: project the center onto the ray, compare the
// squared closest-approach distance with r^2, then step back by the half chord.
func (s *Sphere) intersect(r Ray) (Real, bool) {
	L := s.Center.Sub(r.Origin)
	tca := L.Dot(r.Dir)
	d2 := L.Dot(L) - tca*tca
	if d2 > s.r2 {
		return 0, false
	}
	thc := math.Sqrt(s.r2 - d2)
	t0, t1 := tca-thc, tca+thc
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 < 0 {
		t0 = t1 // origin inside the sphere: first visible point is the exit
		if t0 < 0 {
			return 0, false
		}
	}
	return t0, true
}

func (s *Sphere) normalAt(p Vector3) (Vector3, error) {
	return p.Sub(s.Center).NormChecked()
}
