package rays

import (
	"image"
	"image/png"
	"math"
	"os"
)

// SavePNG16 writes the unquantized frame as a 16-bit PNG. Background pixels are black.
func SavePNG16(frame *Frame, path string) error {
	toU16 := func(v Real) uint16 {
		if !(v > 0) {
			return 0
		}
		if v > 1 {
			v = 1
		}
		return uint16(math.Round(v * 65535.0))
	}

	img := image.NewNRGBA64(image.Rect(0, 0, frame.Width, frame.Height))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for y := 0; y < frame.Height; y++ {
		rowOff := y * img.Stride
		for x := 0; x < frame.Width; x++ {
			c, _ := frame.At(x, y)
			r, g, b := toU16(c.R), toU16(c.G), toU16(c.B)
			a := uint16(0xFFFF)

			p := rowOff + x*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R, G, B, A.
			img.Pix[p+0] = uint8(r >> 8)
			img.Pix[p+1] = uint8(r)
			img.Pix[p+2] = uint8(g >> 8)
			img.Pix[p+3] = uint8(g)
			img.Pix[p+4] = uint8(b >> 8)
			img.Pix[p+5] = uint8(b)
			img.Pix[p+6] = uint8(a >> 8)
			img.Pix[p+7] = uint8(a)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
