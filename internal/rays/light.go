package rays

import "fmt"

// Light is a point light. Intensity scales the inverse-square falloff.
type Light struct {
	Origin    Vector3
	Intensity Real
}

func NewLight(origin Vector3, intensity Real) (*Light, error) {
	if !isFinite(intensity) || intensity < 0 {
		return nil, fmt.Errorf("light intensity must be finite and >= 0, got %.6g", intensity)
	}
	if !origin.finite() {
		return nil, fmt.Errorf("light origin %+v: %w", origin, ErrNonFinite)
	}
	DebugLog("Created light at %+v, intensity=%.4f", origin, intensity)
	return &Light{Origin: origin, Intensity: intensity}, nil
}
