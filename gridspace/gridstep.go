package gridspace

import (
	"fmt"

	"github.com/katalvlaran/numspace/space"
)

// stepping is the discrete per-axis leaf: successor stepping over an
// integer-like type. Interpolating index i takes i successors of start —
// the same flattening algorithm as the continuous grids, a different
// leaf.
type stepping[T space.Discrete] struct {
	start T
}

// Interpolate returns start + T(i). Complexity: O(1).
func (s stepping[T]) Interpolate(i int) T {
	return s.start + T(i)
}

// GridStep returns a grid over discrete, steppable axes (ints, runes,
// bytes) with EXCLUSIVE per-axis bounds. There is no step-size
// parameter — the cardinality of axis i is exactly end[i]-start[i] —
// and the emission order is the shared row-major one (axis N-1 fastest).
//
//	GridStep([]int{0, 0}, []int{2, 3})
//	// [0 0] [0 1] [0 2] [1 0] [1 1] [1 2]
//
// Panics wrapping ErrBadSpan when any start[i] > end[i] (successor
// stepping cannot reach the bound), ErrAxisMismatch/ErrNoAxes on malformed
// axis slices.
func GridStep[T space.Discrete](start, end []T) *space.Sequence[[]T] {
	checkAxes("GridStep", len(start), len(end))

	return stepAxes("GridStep", start, end, 0, false)
}

// GridStepInclusive is GridStep with INCLUSIVE per-axis bounds: axis i
// covers end[i]-start[i]+1 values, end[i] included.
//
//	GridStepInclusive([]rune{'a', 'x'}, []rune{'b', 'y'})
//	// [a x] [a y] [b x] [b y]
func GridStepInclusive[T space.Discrete](start, end []T) *space.Sequence[[]T] {
	checkAxes("GridStepInclusive", len(start), len(end))

	return stepAxes("GridStepInclusive", start, end, 1, true)
}

// stepAxes builds the discrete axes; extra is 0 for exclusive bounds and
// 1 for inclusive ones.
func stepAxes[T space.Discrete](op string, start, end []T, extra int, inclusive bool) *space.Sequence[[]T] {
	axes := make([]Axis[T], len(start))
	for i := range axes {
		if start[i] > end[i] {
			panic(fmt.Errorf("%s(axis=%d, %v..%v): %w", op, i, start[i], end[i], ErrBadSpan))
		}
		axes[i] = Axis[T]{
			Interp: stepping[T]{start: start[i]},
			Steps:  int(end[i]-start[i]) + extra,
		}
	}

	return Compose(axes).WithBounds(pointBounds(start, end, inclusive))
}
