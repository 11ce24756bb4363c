package linspace

import (
	"fmt"

	"github.com/katalvlaran/numspace/space"
)

// Lerp is the linear interpolation strategy: the closed-form parameters
// (Start, Step) of an evenly spaced sequence. It is a pure value — safe
// to copy, safe to call from any index at any time.
type Lerp[T space.Number] struct {
	Start T
	Step  T
}

// Interpolate returns Start + T(i)·Step. Complexity: O(1), no state.
func (l Lerp[T]) Interpolate(i int) T {
	return l.Start + T(i)*l.Step
}

// LerpOver builds the strategy for an EXCLUSIVE range: steps values from
// start towards end, end itself excluded; Interpolate(steps) == end (the
// one-past-last index lands exactly on the declared bound).
// steps == 0 yields a zero strategy that is never invoked (length 0).
func LerpOver[T space.Number](start, end T, steps int) Lerp[T] {
	if steps <= 0 {
		return Lerp[T]{}
	}

	return Lerp[T]{Start: start, Step: (end - start) / T(steps)}
}

// LerpOverClosed builds the strategy for an INCLUSIVE range: steps values
// from start to end, end included; Interpolate(steps-1) == end.
//
// steps == 0 panics wrapping ErrZeroSteps (the divisor would be -1).
// steps == 1 produces the single value start with a zero step — the only
// finite reading of "one value between start and end".
func LerpOverClosed[T space.Number](start, end T, steps int) Lerp[T] {
	if steps == 0 {
		panic(fmt.Errorf("LerpOverClosed(steps=0): %w", ErrZeroSteps))
	}
	if steps == 1 {
		return Lerp[T]{Start: start}
	}

	return Lerp[T]{Start: start, Step: (end - start) / T(steps-1)}
}

// LerpFn returns the affine function mapping the interval [x0, x1] onto
// [y0, y1]. Inputs outside [x0, x1] extrapolate linearly. Handy together
// with space.Map for re-ranging an existing sequence:
//
//	f := linspace.LerpFn(0.0, 2.0, 20.0, 21.0)
//	f(1.0) // 20.5
//	f(-1.0) // 19.5
func LerpFn[T space.Float](x0, x1, y0, y1 T) func(T) T {
	return func(x T) T {
		return (y0*(x1-x) + y1*(x-x0)) / (x1 - x0)
	}
}
