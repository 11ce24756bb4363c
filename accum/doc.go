// Package accum provides generalized single-pass Sum and Product folds
// over pull-based streams, with element-type-directed short-circuiting:
//
//   - Sum / Product           — plain numeric streams (iter.Seq[T])
//   - SumOptional / ProductOptional — streams of possibly-absent values
//     (iter.Seq2[T, bool]); one absent element makes the whole result
//     absent and stops consumption immediately
//   - SumChecked / ProductChecked   — fallible streams
//     (iter.Seq2[T, error]); the first error stops the pass and is
//     surfaced as-is
//
// Short-circuiting here is designed control flow signaled through the
// element shape, not an error of this package: nothing is wrapped,
// nothing panics, and every fold is one pass with early termination.
//
// The space.Sequence families plug in through their Values adapter:
//
//	total := accum.Sum(linspace.LinSpace(0.0, 5.0, 5).Values())
package accum
