package rays

// Shape tags an object kind; the values match the scene file tags.
type Shape byte

const (
	ShapeSphere Shape = 's'
	ShapePlane  Shape = 'p'
)

func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapePlane:
		return "plane"
	}
	return "unknown"
}

// Primitive is a renderable object. The unexported methods keep the set closed
// to the shapes defined in this package.
type Primitive interface {
	Kind() Shape
	Color() RGB
	// intersect returns the distance t >= 0 along r to the first visible surface point.
	intersect(r Ray) (Real, bool)
	// normalAt returns the unit surface normal at a point on the surface.
	normalAt(p Vector3) (Vector3, error)
}
