package rays

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

// sibling returns out with its extension replaced by suffix, e.g. "a.gif" -> "a_thumb.png".
func sibling(out, suffix string) string {
	return strings.TrimSuffix(out, filepath.Ext(out)) + suffix
}

// Run renders the scene at scenePath into outPath (GIF) plus the optional PNG, RAW and
// thumbnail files, then upload everything written when an upload bucket is set.
// It returns the list of files written.
func Run(ctx context.Context, scenePath, outPath string, opts Options) ([]string, error) {
	scene, err := LoadScene(scenePath)
	if err != nil {
		return nil, err
	}
	var up *Uploader
	if opts.Upload.Enabled() {
		// fail before rendering rather than after
		if up, err = NewUploader(opts.Upload); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	frame := Render(scene, opts.Gamma)
	DebugLog("Rendered %dx%d, %d objects, time: %s", frame.Width, frame.Height, len(scene.Objects), time.Since(start))

	img := frame.Paletted(Dither)
	if err := SaveGIF(img, outPath, opts.GIFDelay); err != nil {
		return nil, err
	}
	written := []string{outPath}
	DebugLog("Saved GIF: %s", outPath)

	if PNG {
		p := sibling(outPath, ".png")
		if p == outPath {
			p = sibling(outPath, "_16.png")
		}
		if err := SavePNG16(frame, p); err != nil {
			return written, err
		}
		written = append(written, p)
		DebugLog("Saved PNG: %s", p)
	}
	if RAW {
		p := sibling(outPath, ".raw")
		if err := frame.SaveRawRGB64(p); err != nil {
			return written, err
		}
		written = append(written, p)
		DebugLog("Saved RAW: %s", p)
	}
	if opts.ThumbWidth > 0 {
		p := sibling(outPath, "_thumb.png")
		if err := SaveThumbnail(img, p, opts.ThumbWidth); err != nil {
			return written, err
		}
		written = append(written, p)
		DebugLog("Saved thumbnail: %s", p)
	}

	if up != nil {
		for _, p := range written {
			if _, err := up.UploadFile(ctx, p); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}
