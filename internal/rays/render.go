package rays

import "fmt"

// shadePixel traces the primary ray for (x, y). ok is false for background pixels.
func shadePixel(scene *Scene, cam Camera, x, y int, gamma Real) (RGB, bool) {
	r := cam.RayAt(x, y)
	h, err := scene.NearestHit(r)
	if !h.Ok() {
		if Debug {
			logRay(RayMiss, x, y, -1, 0)
		}
		return RGB{}, false
	}
	var c RGB
	if err == nil {
		c, err = Shade(h, scene.Light, scene.Config.Darkest)
	}
	if err != nil {
		if Debug {
			logRay(RayDegenerate, x, y, h.Index, h.T)
		}
		DebugLog("pixel (%d, %d) on object #%d: %v", x, y, h.Index, err)
		return RGB{}, false
	}
	if Debug {
		logRay(RayHit, x, y, h.Index, h.T)
	}
	return c.Gamma(gamma), true
}

// Render traces one primary ray per pixel, row by row, and returns the shaded frame.
// gamma <= 0 or == 1 disables gamma encoding.
func Render(scene *Scene, gamma Real) *Frame {
	cfg := scene.Config
	frame := NewFrame(cfg.Width, cfg.Height)
	cam := NewCamera(cfg)
	if Debug {
		cache = newRayLogCache() // stats are per render
	}

	step := 1
	if cfg.Height >= 100 {
		step = cfg.Height / 100 // ~1%
	}
	for y := 0; y < cfg.Height; y++ {
		if y%step == 0 {
			fmt.Printf("[RENDER] %.2f%%\n", Real(y+1)*100/Real(cfg.Height))
		}
		for x := 0; x < cfg.Width; x++ {
			if c, ok := shadePixel(scene, cam, x, y, gamma); ok {
				frame.Set(x, y, c)
			}
		}
	}
	if Debug {
		raysStats()
	}
	return frame
}
