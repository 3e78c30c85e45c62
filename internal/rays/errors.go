package rays

import "errors"

var (
	// ErrSceneNotFound is returned when the scene file does not exist; it also matches os.ErrNotExist.
	ErrSceneNotFound = errors.New("scene file not found")

	// ErrDegenerate marks geometry that cannot be shaded (zero-length vectors).
	ErrDegenerate = errors.New("degenerate geometry")

	// ErrNonFinite rejects NaN or infinite scene values.
	ErrNonFinite = errors.New("non-finite value")

	ErrUnknownShape = errors.New("unknown object shape")
	ErrNoLight      = errors.New("scene has no light")
)
