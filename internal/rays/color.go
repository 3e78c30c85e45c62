package rays

import "math"

// RGB stores color components; each should be in [0,1].
type RGB struct {
	R, G, B Real
}

func (c RGB) Add(o RGB) RGB  { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c RGB) Sub(o RGB) RGB  { return RGB{c.R - o.R, c.G - o.G, c.B - o.B} }
func (c RGB) Mul(s Real) RGB { return RGB{c.R * s, c.G * s, c.B * s} }

// Ch returns channel ch (ChR, ChG or ChB).
func (c RGB) Ch(ch int) Real {
	switch ch {
	case ChR:
		return c.R
	case ChG:
		return c.G
	default:
		return c.B
	}
}

func (c RGB) finite() bool { return isFinite(c.R) && isFinite(c.G) && isFinite(c.B) }

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	return RGB{clamp(c.R, 0, 1), clamp(c.G, 0, 1), clamp(c.B, 0, 1)}
}

// Gamma encodes each channel as c^(1/gamma). Gamma 0 or 1 is a no-op.
func (c RGB) Gamma(gamma Real) RGB {
	if gamma <= 0 || gamma == 1 {
		return c
	}
	inv := 1 / gamma
	enc := func(x Real) Real {
		if x <= 0 {
			return 0
		}
		return math.Pow(x, inv)
	}
	return RGB{enc(c.R), enc(c.G), enc(c.B)}
}
