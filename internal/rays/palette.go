package rays

import (
	"image/color"
	"math"
)

// cubeStep is the distance between two adjacent cube levels on the 0..255 scale.
const cubeStep = 255 / (CubeLevels - 1)

// ansi16 are the standard terminal colors occupying palette indices 0..15.
var ansi16 = [16]color.RGBA{
	{0, 0, 0, 255}, {128, 0, 0, 255}, {0, 128, 0, 255}, {128, 128, 0, 255},
	{0, 0, 128, 255}, {128, 0, 128, 255}, {0, 128, 128, 255}, {192, 192, 192, 255},
	{128, 128, 128, 255}, {255, 0, 0, 255}, {0, 255, 0, 255}, {255, 255, 0, 255},
	{0, 0, 255, 255}, {255, 0, 255, 255}, {0, 255, 255, 255}, {255, 255, 255, 255},
}

// Palette is the 256-entry output palette: 0..15 the ANSI colors (0 is the
// background), 16..231 the 6x6x6 cube, 232..255 a gray ramp.
var Palette = buildPalette()

func buildPalette() color.Palette {
	p := make(color.Palette, 0, PaletteSize)
	for _, c := range ansi16 {
		p = append(p, c)
	}
	for r := 0; r < CubeLevels; r++ {
		for g := 0; g < CubeLevels; g++ {
			for b := 0; b < CubeLevels; b++ {
				p = append(p, color.RGBA{uint8(r * cubeStep), uint8(g * cubeStep), uint8(b * cubeStep), 255})
			}
		}
	}
	for i := 0; len(p) < PaletteSize; i++ {
		v := uint8(8 + 10*i)
		p = append(p, color.RGBA{v, v, v, 255})
	}
	return p
}

// Quantized is a color snapped to the cube.
type Quantized struct {
	Index uint8 // palette index, 16 + 36*r6 + 6*g6 + b6
	Color RGB   // the cube color in [0,1]
	Err   RGB   // input - Color, for error diffusion
}

// level maps a channel in [0,1] to the nearest of the six cube levels.
func level(x Real) int {
	if !(x > 0) {
		return 0
	}
	if x >= 1 {
		return CubeLevels - 1
	}
	return int(math.Round(x * (CubeLevels - 1)))
}

// Quantize maps c to the nearest color of the 6x6x6 cube.
// Out-of-range channels are clamped, NaN maps to level 0.
func Quantize(c RGB) Quantized {
	r6, g6, b6 := level(c.R), level(c.G), level(c.B)
	q := RGB{
		Real(r6*cubeStep) / 255,
		Real(g6*cubeStep) / 255,
		Real(b6*cubeStep) / 255,
	}
	return Quantized{
		Index: uint8(CubeBase + 36*r6 + 6*g6 + b6),
		Color: q,
		Err:   c.Sub(q),
	}
}

// CubeIndex is Quantize(c).Index.
func CubeIndex(c RGB) uint8 { return Quantize(c).Index }
