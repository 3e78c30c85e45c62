package rays

import "math"

// Camera is a pinhole at the origin looking down -Z.
type Camera struct {
	width, height Real
	aspect        Real
	scale         Real // tan(fov/2)
}

func NewCamera(cfg RenderConfig) Camera {
	aspect := cfg.AspectRatio
	if aspect == 0 {
		aspect = Real(cfg.Width) / Real(cfg.Height)
	}
	return Camera{
		width:  Real(cfg.Width),
		height: Real(cfg.Height),
		aspect: aspect,
		scale:  math.Tan(cfg.FOV / 2),
	}
}

// RayAt returns the primary ray through the center of pixel (x, y); y grows downwards.
func (c Camera) RayAt(x, y int) Ray {
	ndcX := ((Real(x)+0.5)/c.width)*2 - 1
	ndcY := 1 - ((Real(y)+0.5)/c.height)*2
	dir := Vector3{ndcX * c.aspect * c.scale, ndcY * c.scale, -1}
	return Ray{Origin: Vector3{}, Dir: dir.Norm()}
}
