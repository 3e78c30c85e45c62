package rays

import "math"

// Vector3 is a position or direction in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// V is a shorthand constructor.
func V(x, y, z Real) Vector3 { return Vector3{x, y, z} }

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product between two vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len2 returns the squared Euclidean length.
func (v Vector3) Len2() Real { return v.Dot(v) }

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// The zero vector has no direction and is returned unchanged.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// finite reports whether every component is a finite number.
func (v Vector3) finite() bool { return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) }

// NormChecked is Norm that reports ErrDegenerate for zero or non-finite lengths.
func (v Vector3) NormChecked() (Vector3, error) {
	l := v.Len()
	if l == 0 || !isFinite(l) {
		return Vector3{}, ErrDegenerate
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}, nil
}
