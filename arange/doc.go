// Package arange produces fixed-step ranges: instead of a caller-supplied
// value count, the caller supplies the increment and the count is derived
// by ceiling division,
//
//	steps = ⌈(end-start)/step⌉
//
// after which the sequence reduces to the exact same formula-based linear
// strategy linspace uses (same start, same step, derived count) — so all
// the anti-drift, double-ended, exact-length guarantees carry over.
//
//	Arange(0.0, 2.0, 0.5)  // 0 0.5 1 1.5        (⌈2/0.5⌉  = 4 values)
//	Arange(0.0, 0.55, 0.1) // 0 0.1 ... 0.5      (⌈5.5⌉    = 6 values)
//
// There is deliberately no inclusive variant. The step count is derived
// from dividing the span by the step size, so the final boundary
// essentially never lands exactly on a user-supplied inclusive endpoint;
// offering an inclusive form would silently mislead callers about whether
// the endpoint is reachable.
//
// A zero step, a step whose sign fights the span direction, or a span/step
// ratio that is not a representable non-negative integer is a programmer
// error and panics wrapping ErrBadStep at construction time.
package arange
