package recovery

import "errors"

// ErrBadArgs is returned for caller-visible precondition violations: a
// non-power-of-two sample count or more than half the samples missing.
var ErrBadArgs = errors.New("recovery: bad arguments")

// ErrInternal is returned when an internal consistency check fails: the
// erasure pattern doesn't match where the vanishing polynomial evaluates to
// zero, or the reconstructed data disagrees with a sample that was present.
// Either indicates a bug upstream rather than a caller mistake.
var ErrInternal = errors.New("recovery: internal invariant violated")
