// Package numspace is your toolbox for lazily-evaluated numeric sequences —
// evenly spaced ranges, fixed-step ranges, logarithmic ranges, and their
// multi-dimensional grid counterparts.
//
// 🚀 What is numspace?
//
//	A small, allocation-light library that turns a range description plus a
//	step specification into a ready-to-iterate sequence:
//		• LinSpace    — a fixed number of evenly spaced values
//		• Arange      — a fixed step size with a derived number of values
//		• LogSpace    — evenly spaced logarithmic (geometric) values
//		• GridSpace   — LinSpace composed over N axes
//		• ArangeGrid  — Arange composed over N axes
//		• GridStep    — discrete successor-stepping composed over N axes
//
// ✨ Why choose numspace?
//
//   - Formula-based, not accumulator-based — values are recomputed from the
//     canonical start on every access, so repeated floating-point addition
//     never drifts, and reverse iteration is exact
//   - Double-ended, exact-size cursors — Next, NextBack, Len, and O(1) skip
//     from either end, without materializing the sequence
//   - Pure Go — no cgo, no hidden deps
//
// Under the hood, everything is organized under six subpackages:
//
//	space/     — the generic index-driven Sequence cursor and Interpolator
//	linspace/  — linear interpolation (Lerp) and LinSpace builders
//	arange/    — fixed-step ranges with ceiling-division derived lengths
//	logspace/  — geometric interpolation and LogSpace builders
//	gridspace/ — mixed-radix N-axis composition (GridSpace, ArangeGrid, GridStep)
//	accum/     — Sum/Product folds with optional/fallible short-circuiting
//
// Quick ASCII example:
//
//	LinSpace(0, 5, 5)        →  0   1   2   3   4
//	GridSpace axis0 ↓ axis1 →
//	    [0 0.0] [0 0.5] [0 1.0] [0 1.5]
//	    [½ 0.0] [½ 0.5] [½ 1.0] [½ 1.5]
//
//	a 2×4 grid flattened row-major, last axis fastest.
//
// Dive into the per-package docs for full examples and the exact
// construction contracts.
//
//	go get github.com/katalvlaran/numspace
package numspace
