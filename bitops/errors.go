package bitops

import "errors"

// errBadArgs mirrors the C_KZG_BADARGS status from spec.md §7: a
// caller-visible precondition violation, recoverable without side effects.
var errBadArgs = errors.New("bitops: bad arguments")
