package rays

import (
	"fmt"
	"strconv"
)

// Options are per-run output settings.
type Options struct {
	Gamma      Real // 0 or 1 disables gamma encoding
	GIFDelay   int  // 100ths of a second
	ThumbWidth int  // 0 disables the thumbnail
	Upload     UploadCfg
}

func DefaultOptions() Options {
	return Options{GIFDelay: GIFDelay}
}

// OptionsFromEnv reads GAMMA, GIF_DELAY, THUMB and the S3_* variables through getenv.
// Unset variables keep their defaults.
func OptionsFromEnv(getenv func(string) string) (Options, error) {
	opts := DefaultOptions()
	if s := getenv("GAMMA"); s != "" {
		g, err := strconv.ParseFloat(s, 64)
		if err != nil || g < 0 || !isFinite(g) {
			return Options{}, fmt.Errorf("GAMMA must be a non-negative number, got %q", s)
		}
		opts.Gamma = g
	}
	if s := getenv("GIF_DELAY"); s != "" {
		d, err := strconv.Atoi(s)
		if err != nil || d < 0 {
			return Options{}, fmt.Errorf("GIF_DELAY must be a non-negative integer, got %q", s)
		}
		opts.GIFDelay = d
	}
	if s := getenv("THUMB"); s != "" {
		w, err := strconv.Atoi(s)
		if err != nil || w < 0 {
			return Options{}, fmt.Errorf("THUMB must be a non-negative width, got %q", s)
		}
		opts.ThumbWidth = w
	}
	opts.Upload = UploadCfg{
		Bucket:    getenv("S3_BUCKET"),
		Region:    getenv("S3_REGION"),
		Endpoint:  getenv("S3_ENDPOINT"),
		AccessKey: getenv("S3_ACCESS_KEY"),
		SecretKey: getenv("S3_SECRET_KEY"),
		Prefix:    getenv("S3_PREFIX"),
	}
	return opts, nil
}
