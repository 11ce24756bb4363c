package arange

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numspace/linspace"
	"github.com/katalvlaran/numspace/space"
)

// Arange returns a sequence stepping from start towards end (EXCLUSIVE)
// by a constant caller-supplied step; the value count is derived, see
// Steps.
//
//	Arange(0.0, 2.0, 0.5) // 0 0.5 1 1.5
//
// Internally this is a linspace.Lerp with the same start and step — the
// value at index i is start + T(i)·step, never an accumulated sum.
// Panics wrapping ErrBadStep for a zero or wrong-signed step.
func Arange[T space.Float](start, end, step T) *space.Sequence[T] {
	steps := Steps(start, end, step)

	return space.New[T](steps, linspace.Lerp[T]{Start: start, Step: step}).
		WithBounds(space.Bounds[T]{Start: start, End: end})
}

// Steps derives the value count for a fixed-step range by ceiling
// division: ⌈(end-start)/step⌉. A zero span yields 0. Panics wrapping
// ErrBadStep when the ratio is not a representable non-negative integer
// (zero step, sign mismatch, NaN/±Inf operands, or out of int range).
// gridspace.ArangeGrid applies the same rule independently per axis.
func Steps[T space.Float](start, end, step T) int {
	if step == 0 {
		panic(fmt.Errorf("Steps(step=0): %w", ErrBadStep))
	}
	ratio := float64((end - start) / step)
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		panic(fmt.Errorf("Steps(span/step=%v): %w", ratio, ErrBadStep))
	}
	if ratio < 0 {
		panic(fmt.Errorf("Steps(span/step=%v): step sign fights range direction: %w", ratio, ErrBadStep))
	}
	n := math.Ceil(ratio)
	if n > math.MaxInt {
		panic(fmt.Errorf("Steps(count=%v): %w", n, ErrBadStep))
	}

	return int(n)
}
