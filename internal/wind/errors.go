package wind

import "errors"

// Error categories. Every validation or calculation error returned by this
// package wraps exactly one of them, so callers can branch with errors.Is.
var (
	// ErrConfig reports an unknown table key, structure type or incidence angle
	ErrConfig = errors.New("configuration error")

	// ErrMissingParam reports an input the selected case requires but the caller left out
	ErrMissingParam = errors.New("missing parameter")

	// ErrOutOfRange reports a numeric input outside its valid range
	ErrOutOfRange = errors.New("out of range")
)
