package rays

// Ray is a half-line; Dir is expected to be unit length.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t Real) Vector3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
