package linspace

import "github.com/katalvlaran/numspace/space"

// LinSpace returns a sequence of steps evenly spaced values over the
// EXCLUSIVE range [start, end): start is the first value, end is never
// produced.
//
//	LinSpace(0.0, 5.0, 5) // 0 1 2 3 4
//
// steps == 0 yields an empty sequence. Complexity: O(1) construction,
// O(1) per produced value.
func LinSpace[T space.Number](start, end T, steps int) *space.Sequence[T] {
	return space.New[T](steps, LerpOver(start, end, steps)).
		WithBounds(space.Bounds[T]{Start: start, End: end})
}

// LinSpaceInclusive returns a sequence of steps evenly spaced values over
// the INCLUSIVE range [start, end]: start is the first value and end the
// last (up to floating-point rounding).
//
//	LinSpaceInclusive(1.0, 5.0, 5) // 1 2 3 4 5
//
// Panics wrapping ErrZeroSteps when steps == 0; see LerpOverClosed.
func LinSpaceInclusive[T space.Number](start, end T, steps int) *space.Sequence[T] {
	return space.New[T](steps, LerpOverClosed(start, end, steps)).
		WithBounds(space.Bounds[T]{Start: start, End: end, Inclusive: true})
}
