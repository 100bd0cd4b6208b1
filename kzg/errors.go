package kzg

import "errors"

// ErrBadArgs is returned for caller-visible precondition violations: a
// polynomial longer than the settings support, a divisor-by-zero long
// division, or mismatched point/value slice lengths.
var ErrBadArgs = errors.New("kzg: bad arguments")

// ErrInternal is returned when an invariant this package relies on
// internally is violated — it should never surface from correct callers and
// correctly generated settings.
var ErrInternal = errors.New("kzg: internal invariant violated")
