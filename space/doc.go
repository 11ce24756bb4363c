// Package space provides the index-driven sequence core shared by every
// numspace family: a generic, double-ended, exact-size cursor over a pure
// interpolation function.
//
// 🚀 What is a Sequence?
//
//	A Sequence owns two things:
//	  • an Interpolator — a pure, closed-form function from a step index
//	    to a value, and
//	  • a half-open index window [lo, hi) of indices not yet produced.
//
//	Next advances lo forward, NextBack retracts hi backward, and both map
//	through the identical Interpolate call. There is no "current value"
//	accumulator anywhere: each value is recomputed from its index, so
//	forward iteration, backward iteration, and O(1) skipping all agree
//	bit-for-bit at every index.
//
// ✨ Key guarantees:
//   - Len() is exact: hi-lo, O(1), always equal to the future yield count
//   - Fused: once exhausted (lo == hi), every call keeps reporting done
//   - Nth/NthBack skip by adjusting the cursor, never by looping
//   - No side effects beyond the cursor itself; dropping a Sequence at any
//     point is safe, nothing is held
//
// ⚙️ Usage:
//
//	seq := linspace.LinSpace(0.0, 5.0, 5) // *space.Sequence[float64]
//	for v := range seq.Values() {
//	    fmt.Println(v)
//	}
//
// A Sequence is single-pass and exclusively owned by its consumer. It is
// not restartable; use Clone to branch an independent cursor over the same
// logical range. Every operation completes in O(1) with no I/O, so there
// is nothing to synchronize — per-goroutine Clones are all that concurrent
// use requires.
package space
