package polynomial

import "errors"

// ErrBadArgs is returned for caller-visible precondition violations, such as
// dividing by the zero polynomial.
var ErrBadArgs = errors.New("polynomial: bad arguments")
