package rays

// Real is the scalar type used throughout the renderer.
type Real = float64

// Channel indices for readability.
const (
	ChR           = 0
	ChG           = 1
	ChB           = 2
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFOV    = 1.5708 // radians
	DefaultDark   = 0.5
	MaxPixels     = 1 << 26 // width*height upper bound
	GIFOut        = "rays.gif"
	GIFDelay      = 7 // 100ths of a second
	PaletteSize   = 256
	CubeBase      = 16 // first palette index of the 6x6x6 cube
	CubeLevels    = 6
	BackgroundIdx = 0
	// hot-loop constants
	planeEps = 1e-6
)
