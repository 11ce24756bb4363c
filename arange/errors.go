package arange

import "errors"

// ErrBadStep indicates that the derived step count ⌈(end-start)/step⌉
// cannot be represented as a non-negative integer: the step is zero, its
// sign fights the span direction, or the ratio is NaN/±Inf/out of int
// range. Fail-fast by policy — silent clamping would hide a logically
// malformed call.
// Usage: recover and errors.Is(err, ErrBadStep).
var ErrBadStep = errors.New("arange: step incompatible with range span")
