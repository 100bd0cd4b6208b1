package fft

import "errors"

// errBadArgs is returned for caller-visible precondition violations: domain
// sizes that aren't powers of two, or exceed the settings' MaxWidth.
var errBadArgs = errors.New("fft: bad arguments")

// errInternal is returned when an invariant this package relies on
// internally is violated — it should never surface from correct callers.
var errInternal = errors.New("fft: internal invariant violated")
