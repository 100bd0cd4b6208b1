package zeropoly

import "errors"

// ErrBadArgs is returned for caller-visible precondition violations: an
// out-of-range or duplicate missing index, or a missing-set larger than the
// domain.
var ErrBadArgs = errors.New("zeropoly: bad arguments")
