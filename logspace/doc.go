// Package logspace produces logarithmically (geometrically) spaced
// sequences: consecutive values share a constant ratio rather than a
// constant difference. The value at index i is
//
//	start · ratio^i
//
// with ratio = (end/start)^(1/divisor) — divisor being steps for the
// exclusive form and steps-1 for the inclusive form, exactly mirroring
// linspace's off-by-one contract.
//
//	LogSpaceInclusive(1.0, 1000.0, 4) // ≈ 1 10 100 1000
//	LogSpace(1.0, 1000.0, 3)          // ≈ 1 10 100
//
// Bounds must be strictly positive (a ratio through zero or a sign flip
// has no real logarithm); violations panic wrapping ErrNonPositive at
// construction. Inclusive steps == 0 panics wrapping ErrZeroSteps, as in
// linspace.
package logspace
