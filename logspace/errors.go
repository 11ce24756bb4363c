package logspace

import "errors"

// ErrZeroSteps indicates an inclusive construction with steps == 0.
// Same construction contract as linspace: the span's root would be taken
// to the 1/(steps-1) power. Fail-fast at construction.
var ErrZeroSteps = errors.New("logspace: inclusive range requires steps >= 1")

// ErrNonPositive indicates a bound ≤ 0. The ratio (end/start)^(1/n) is
// only defined over strictly positive bounds; a malformed call must not
// produce a sequence of NaNs.
var ErrNonPositive = errors.New("logspace: bounds must be strictly positive")
