package rays

import (
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// SaveThumbnail writes a PNG scaled to width pixels, keeping the aspect ratio.
func SaveThumbnail(img image.Image, path string, width int) error {
	thumb := resize.Resize(uint(width), 0, img, resize.Lanczos3)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, thumb); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
