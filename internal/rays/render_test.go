package rays

import (
	"math"
	"testing"
)

func renderScene(t *testing.T, light Light, fov Real) *Scene {
	t.Helper()
	sc := sceneWith(mustSphere(t, Vector3{0, 0, -5}, 3, RGB{1, 0, 0}))
	sc.Light = light
	cfg, err := NewRenderConfig(101, 101, fov, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	sc.Config = cfg
	return sc
}

func TestRenderCenterAndCorner(t *testing.T) {
	sc := renderScene(t, Light{Origin: Vector3{0, 0, -1}, Intensity: 5}, math.Pi/2)
	f := Render(sc, 0)
	c, hit := f.At(50, 50)
	if !hit || c != (RGB{1, 0, 0}) {
		t.Fatalf("center pixel: hit=%v color=%+v", hit, c)
	}
	if _, hit := f.At(0, 0); hit {
		t.Fatal("corner pixel should be background")
	}
	idx := f.Indices(false)
	if idx[f.idx(50, 50)] != 196 || idx[f.idx(0, 0)] != BackgroundIdx {
		t.Fatalf("indices: center=%d corner=%d", idx[f.idx(50, 50)], idx[f.idx(0, 0)])
	}
}

func TestRenderDarkestAndGamma(t *testing.T) {
	sc := renderScene(t, Light{Origin: Vector3{0, 0, -1}, Intensity: 0.25}, math.Pi/2)
	f := Render(sc, 0)
	c, _ := f.At(50, 50)
	if math.Abs(c.R-0.5) > 1e-12 {
		t.Fatalf("expected darkest floor 0.5, got %g", c.R)
	}
	f = Render(sc, 2)
	c, _ = f.At(50, 50)
	if math.Abs(c.R-math.Sqrt(0.5)) > 1e-12 || c.G != 0 {
		t.Fatalf("expected gamma-encoded %g, got %+v", math.Sqrt(0.5), c)
	}
}

func TestRenderDegenerateIsMiss(t *testing.T) {
	// light sits exactly on the center hit point
	sc := renderScene(t, Light{Origin: Vector3{0, 0, -2}, Intensity: 5}, math.Pi/2)
	f := Render(sc, 0)
	if _, hit := f.At(50, 50); hit {
		t.Fatal("degenerate pixel should be treated as background")
	}
	if _, hit := f.At(49, 50); !hit {
		t.Fatal("neighbor pixel should still be shaded")
	}
}

func TestRenderResetsRayLog(t *testing.T) {
	Debug = true
	defer func() { Debug = false }()
	sc := renderScene(t, Light{Origin: Vector3{0, 0, -1}, Intensity: 5}, math.Pi/2)
	sc.Config.Width, sc.Config.Height = 10, 10
	sc.Config.AspectRatio = 1
	count := func() int {
		n := 0
		for _, logs := range cache.rays {
			n += len(logs)
		}
		return n
	}
	Render(sc, 0)
	first := count()
	Render(sc, 0)
	if first != 100 || count() != 100 {
		t.Fatalf("expected 100 logged rays per render, got %d then %d", first, count())
	}
}
