package gridspace

import (
	"slices"

	"github.com/katalvlaran/numspace/linspace"
	"github.com/katalvlaran/numspace/space"
)

// GridSpace returns the N-dimensional counterpart of linspace.LinSpace:
// axis i runs over the EXCLUSIVE range [start[i], end[i]) with steps[i]
// evenly spaced values, and the axes are flattened row-major (axis N-1
// fastest).
//
//	GridSpace([]float64{0, 0}, []float64{1, 2}, []int{2, 4})
//	// [0 0] [0 0.5] [0 1] [0 1.5] [0.5 0] [0.5 0.5] [0.5 1] [0.5 1.5]
//
// Panics wrapping ErrAxisMismatch when the slice lengths differ, or
// ErrNoAxes when they are empty. The bound slices are copied; callers may
// reuse them.
func GridSpace[T space.Number](start, end []T, steps []int) *space.Sequence[[]T] {
	checkAxes("GridSpace", len(start), len(end), len(steps))
	axes := make([]Axis[T], len(start))
	for i := range axes {
		axes[i] = Axis[T]{Interp: linspace.LerpOver(start[i], end[i], steps[i]), Steps: steps[i]}
	}

	return Compose(axes).WithBounds(pointBounds(start, end, false))
}

// GridSpaceInclusive is GridSpace over INCLUSIVE per-axis ranges: axis i
// produces steps[i] values from start[i] to end[i], both included.
// Any steps[i] == 0 panics via linspace.ErrZeroSteps, exactly as the
// one-dimensional builder does.
func GridSpaceInclusive[T space.Number](start, end []T, steps []int) *space.Sequence[[]T] {
	checkAxes("GridSpaceInclusive", len(start), len(end), len(steps))
	axes := make([]Axis[T], len(start))
	for i := range axes {
		axes[i] = Axis[T]{Interp: linspace.LerpOverClosed(start[i], end[i], steps[i]), Steps: steps[i]}
	}

	return Compose(axes).WithBounds(pointBounds(start, end, true))
}

// GridSpaceUniform broadcasts one scalar step count to every axis.
//
//	GridSpaceUniform([]float64{0, 0}, []float64{1, 2}, 3)
//	// 3×3 grid, 9 points
func GridSpaceUniform[T space.Number](start, end []T, steps int) *space.Sequence[[]T] {
	return GridSpace(start, end, splat(steps, len(start)))
}

// GridSpaceInclusiveUniform broadcasts one scalar step count to every
// axis of an inclusive grid.
func GridSpaceInclusiveUniform[T space.Number](start, end []T, steps int) *space.Sequence[[]T] {
	return GridSpaceInclusive(start, end, splat(steps, len(start)))
}

// splat repeats one scalar step count n times.
func splat(steps, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = steps
	}

	return out
}

// pointBounds copies the declared per-axis bounds into the sequence's
// value-domain bounds, detached from the caller's slices.
func pointBounds[T any](start, end []T, inclusive bool) space.Bounds[[]T] {
	return space.Bounds[[]T]{
		Start:     slices.Clone(start),
		End:       slices.Clone(end),
		Inclusive: inclusive,
	}
}
