package rays

import "fmt"

// Frame is the render target: one shaded color per pixel, row-major, top row first.
// Hit marks pixels that show an object; the others are background.
type Frame struct {
	Width, Height int
	Pix           []RGB
	Hit           []bool
}

func NewFrame(width, height int) *Frame {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("frame size must be positive, got %dx%d", width, height))
	}
	n := width * height
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, n),
		Hit:    make([]bool, n),
	}
}

// idx is the flat index of pixel (x, y).
func (f *Frame) idx(x, y int) int { return y*f.Width + x }

func (f *Frame) Set(x, y int, c RGB) {
	i := f.idx(x, y)
	f.Pix[i] = c
	f.Hit[i] = true
}

func (f *Frame) At(x, y int) (RGB, bool) {
	i := f.idx(x, y)
	return f.Pix[i], f.Hit[i]
}

// Indices quantizes every pixel to a palette index; background pixels get BackgroundIdx.
func (f *Frame) Indices(dither bool) []uint8 {
	if dither {
		return f.dithered()
	}
	out := make([]uint8, len(f.Pix))
	for i, c := range f.Pix {
		if !f.Hit[i] {
			out[i] = BackgroundIdx
			continue
		}
		out[i] = CubeIndex(c)
	}
	return out
}
