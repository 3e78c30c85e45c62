package rays

import "fmt"

// Plane is an infinite one-sided plane. Normal is unit length and marks the
// visible (front) side.
type Plane struct {
	Point  Vector3
	Normal Vector3
	Col    RGB
}

func NewPlane(point, normal Vector3, color RGB) (*Plane, error) {
	if !point.finite() || !color.finite() {
		return nil, fmt.Errorf("plane point %+v / color %+v: %w", point, color, ErrNonFinite)
	}
	n, err := normal.NormChecked()
	if err != nil {
		return nil, fmt.Errorf("plane normal %+v: %w", normal, err)
	}
	p := &Plane{Point: point, Normal: n, Col: color.clamp01()}
	DebugLog("Created plane: %+v", p)
	return p, nil
}

func (p *Plane) Kind() Shape { return ShapePlane }
func (p *Plane) Color() RGB  { return p.Col }

// A plane is hit only from its front side, i.e. when the ray travels against
// the normal. Grazing and back-facing rays miss.
func (p *Plane) intersect(r Ray) (Real, bool) {
	denom := p.Normal.Dot(r.Dir)
	if -denom <= planeEps {
		return 0, false
	}
	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

func (p *Plane) normalAt(Vector3) (Vector3, error) { return p.Normal, nil }
