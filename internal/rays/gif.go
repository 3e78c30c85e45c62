package rays

import (
	"image"
	"image/gif"
	"os"
)

// Paletted wraps the quantized frame as an image using Palette.
func (f *Frame) Paletted(dither bool) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, f.Width, f.Height), Palette)
	idx := f.Indices(dither)
	for y := 0; y < f.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+f.Width], idx[y*f.Width:(y+1)*f.Width])
	}
	return img
}

// SaveGIF writes a single-frame GIF. delay is in 100ths of a second.
func SaveGIF(img *image.Paletted, path string, delay int) error {
	out := &gif.GIF{
		Image:     []*image.Paletted{img},
		Delay:     []int{delay},
		LoopCount: 0,
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
