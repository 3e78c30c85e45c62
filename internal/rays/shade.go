package rays

// Intensity returns the diffuse light intensity at point p with unit normal n:
// cos(angle to light) * light.Intensity / distance^2, clamped to [darkest, 1].
// Surfaces facing away from the light get the darkest floor.
func Intensity(p, n Vector3, l Light, darkest Real) (Real, error) {
	toLight := l.Origin.Sub(p)
	d2 := toLight.Len2()
	dir, err := toLight.NormChecked()
	if err != nil || d2 == 0 {
		return 0, ErrDegenerate
	}
	i := n.Dot(dir) * l.Intensity / d2
	if !isFinite(i) {
		return 0, ErrDegenerate
	}
	return clamp(i, darkest, 1), nil
}

// Shade returns the lit color of a hit.
func Shade(h Hit, l Light, darkest Real) (RGB, error) {
	i, err := Intensity(h.Point, h.Normal, l, darkest)
	if err != nil {
		return RGB{}, err
	}
	return h.Obj.Color().Mul(i), nil
}
