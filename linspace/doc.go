// Package linspace produces evenly spaced linear sequences between two
// bounds, in the formula-based style: the value at index i is always
//
//	start + T(i)·step
//
// recomputed directly from i, never accumulated. Repeated floating-point
// addition drifts; direct multiplication from the canonical start does
// not — and it is what makes backward iteration and O(1) skipping exact.
//
// Two construction contracts exist:
//
//   - LinSpace(start, end, steps) — EXCLUSIVE: steps values, end is never
//     produced; step = (end-start)/steps. steps == 0 is a legal empty
//     sequence.
//   - LinSpaceInclusive(start, end, steps) — INCLUSIVE: steps values, the
//     last one is end; step = (end-start)/(steps-1). steps == 0 is a
//     programmer error (it implies dividing by -1) and panics wrapping
//     ErrZeroSteps.
//
// A decreasing span, or a step whose sign fights the span, is legal and
// silently deterministic — the library mirrors native range semantics and
// performs no direction validation.
//
// The Lerp strategy itself is exported so that gridspace can compose one
// per axis.
package linspace
