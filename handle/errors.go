package handle

import "errors"

var (
	// ErrDegenerateInput reports a polygon that cannot form a handle end:
	// fewer than three vertices, or an anchor that is not on its boundary.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrParameter reports an out-of-range construction parameter.
	ErrParameter = errors.New("invalid parameter")

	// ErrSelection reports a face/vertex selection that cannot be paired.
	ErrSelection = errors.New("invalid selection")
)
