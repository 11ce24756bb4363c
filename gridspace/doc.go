// Package gridspace composes N independent per-axis strategies into a
// single sequence over the flattened index space of size ∏ stepsᵢ.
//
// 🚀 How the flattening works
//
//	Each axis carries its own interpolation strategy and step count. A
//	flat index is decomposed into per-axis indices by mixed-radix
//	div/mod — exactly like reading off the digits of a mixed-radix
//	number — and each digit is handed to its axis strategy:
//
//	    for axis N-1 down to axis 0:
//	        digit  = x % steps[axis]
//	        x      = x / steps[axis]
//	        out[axis] = strategy[axis].Interpolate(digit)
//
// The emission order is fixed and identical across every grid family:
// ROW-MAJOR — axis 0 is the slowest-varying (outermost), axis N-1 the
// fastest (innermost), matching nested loops with the last axis inside.
// Backward iteration is not a mirror-image algorithm: NextBack maps
// through the identical decomposition at a decremented flat index, so
// forward and backward orders always agree.
//
// Three families share the composition:
//
//   - GridSpace / GridSpaceInclusive — a linspace.Lerp per axis, with
//     per-axis step counts or one count broadcast to all axes
//     (GridSpaceUniform, GridSpaceInclusiveUniform)
//   - ArangeGrid / ArangeGridAxes — an arange-derived count per axis,
//     from one broadcast step size or one step size per axis
//   - GridStep / GridStepInclusive — discrete successor-stepping axes
//     over integer-like types (ints, runes, bytes); cardinality is exact,
//     no step-size parameter exists
//
// Points are emitted as []T of length N, one fresh slice per value; the
// axis count is construction-time-known, arbitrary, and validated once.
// Per-axis step counts are computed once at construction and never
// recomputed; the flat length is their product (the caller must ensure
// the product fits in int).
package gridspace
