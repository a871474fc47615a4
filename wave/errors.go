package wave

import "errors"

// ErrInvalidInput is wrapped by every error caused by out of range
// brightness values, thresholds or configuration.
var ErrInvalidInput = errors.New("invalid input")
