package rays

var (
	Debug  = false // set to true for verbose debug output and ray statistics
	PNG    = false // set to true to also save a 16-bit PNG of the shaded frame
	RAW    = false // set to true to also save the raw float64 frame
	Dither = false // set to true to use Floyd-Steinberg error diffusion when quantizing
	// Compile time checks that every primitive implements Primitive
	_ Primitive = (*Sphere)(nil)
	_ Primitive = (*Plane)(nil)
)
