package fk20

import "errors"

// ErrBadArgs is returned for caller-visible precondition violations: a
// non-power-of-two polynomial length, a domain too small for the requested
// extension, a chunk length that doesn't divide the polynomial length, or
// mismatched Toeplitz-coefficient/precomputed-SRS lengths.
var ErrBadArgs = errors.New("fk20: bad arguments")
