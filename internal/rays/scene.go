package rays

import (
	"fmt"
	"math"
)

// RenderConfig holds the raster and camera parameters.
type RenderConfig struct {
	Width, Height int
	AspectRatio   Real // Width/Height unless set explicitly
	FOV           Real // vertical field of view, radians
	Darkest       Real // minimum diffuse intensity
}

// DefaultRenderConfig returns the settings used when a scene has no "s" line.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		AspectRatio: Real(DefaultWidth) / Real(DefaultHeight),
		FOV:         DefaultFOV,
		Darkest:     DefaultDark,
	}
}

// NewRenderConfig validates settings and derives the aspect ratio.
func NewRenderConfig(width, height int, fov, darkest Real) (RenderConfig, error) {
	if width <= 0 || height <= 0 {
		return RenderConfig{}, fmt.Errorf("resolution must be positive, got %dx%d", width, height)
	}
	if width > MaxPixels/height {
		return RenderConfig{}, fmt.Errorf("resolution %dx%d exceeds %d pixels", width, height, MaxPixels)
	}
	if !(fov > 0 && fov < math.Pi) {
		return RenderConfig{}, fmt.Errorf("fov must be in (0, pi) radians, got %.6g", fov)
	}
	if !(darkest >= 0 && darkest <= 1) {
		return RenderConfig{}, fmt.Errorf("darkest floor must be in [0,1], got %.6g", darkest)
	}
	return RenderConfig{
		Width:       width,
		Height:      height,
		AspectRatio: Real(width) / Real(height),
		FOV:         fov,
		Darkest:     darkest,
	}, nil
}

// Scene owns the objects (in insertion order), the light and the render settings.
type Scene struct {
	Objects []Primitive
	Light   Light
	Config  RenderConfig
}

// NewScene returns an empty scene with default settings and a zero-intensity light at the origin.
func NewScene() *Scene {
	return &Scene{Config: DefaultRenderConfig()}
}

func (s *Scene) Add(p Primitive) {
	s.Objects = append(s.Objects, p)
}

func (s *Scene) SetLight(l *Light) {
	s.Light = *l
}

// Count returns the number of objects of the given kind.
func (s *Scene) Count(kind Shape) int {
	n := 0
	for _, o := range s.Objects {
		if o.Kind() == kind {
			n++
		}
	}
	return n
}
