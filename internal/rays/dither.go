package rays

// Floyd-Steinberg taps: neighbor offset and share of the error.
var fsTaps = [4]struct {
	dx, dy int
	w      Real
}{
	{1, 0, 7.0 / 16},
	{-1, 1, 3.0 / 16},
	{0, 1, 5.0 / 16},
	{1, 1, 1.0 / 16},
}

// dithered quantizes with error diffusion in scanline order. Error is only
// pushed into object pixels; background stays BackgroundIdx.
func (f *Frame) dithered() []uint8 {
	work := make([]RGB, len(f.Pix))
	copy(work, f.Pix)
	out := make([]uint8, len(f.Pix))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			i := f.idx(x, y)
			if !f.Hit[i] {
				out[i] = BackgroundIdx
				continue
			}
			q := Quantize(work[i])
			out[i] = q.Index
			for _, tap := range fsTaps {
				nx, ny := x+tap.dx, y+tap.dy
				if nx < 0 || nx >= f.Width || ny >= f.Height {
					continue
				}
				j := f.idx(nx, ny)
				if !f.Hit[j] {
					continue
				}
				work[j] = work[j].Add(q.Err.Mul(tap.w))
			}
		}
	}
	return out
}
