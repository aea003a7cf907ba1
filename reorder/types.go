// Package reorder defines sentinel errors for level-order transforms
// over a factor.Factor.
package reorder

import "errors"

// Sentinel errors for reorder transforms.
var (
	// ErrNilFactor is returned if a nil *factor.Factor is passed.
	ErrNilFactor = errors.New("reorder: factor is nil")
)
