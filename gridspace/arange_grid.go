package gridspace

import (
	"github.com/katalvlaran/numspace/arange"
	"github.com/katalvlaran/numspace/linspace"
	"github.com/katalvlaran/numspace/space"
)

// ArangeGrid returns the N-dimensional counterpart of arange.Arange with
// one step size broadcast to every axis: axis i steps from start[i]
// towards end[i] (EXCLUSIVE) by step, deriving its own count by ceiling
// division.
//
//	ArangeGrid([]float64{0, 0}, []float64{1, 2}, 0.5)
//	// 2×4 grid: [0 0] [0 0.5] [0 1] [0 1.5] [0.5 0] ... [0.5 1.5]
//
// Panics wrapping arange.ErrBadStep under the same conditions as the
// one-dimensional builder, per axis.
func ArangeGrid[T space.Float](start, end []T, step T) *space.Sequence[[]T] {
	checkAxes("ArangeGrid", len(start), len(end))

	return arangeAxes(start, end, func(int) T { return step })
}

// ArangeGridAxes is ArangeGrid with one step size per axis.
//
//	ArangeGridAxes([]float64{0, 0}, []float64{1, 2}, []float64{0.5, 1.0})
//	// 2×2 grid: [0 0] [0 1] [0.5 0] [0.5 1]
func ArangeGridAxes[T space.Float](start, end, steps []T) *space.Sequence[[]T] {
	checkAxes("ArangeGridAxes", len(start), len(end), len(steps))

	return arangeAxes(start, end, func(i int) T { return steps[i] })
}

// arangeAxes builds one arange-derived axis per dimension; stepAt
// resolves the broadcast-vs-per-axis step choice.
func arangeAxes[T space.Float](start, end []T, stepAt func(i int) T) *space.Sequence[[]T] {
	axes := make([]Axis[T], len(start))
	var step T
	for i := range axes {
		step = stepAt(i)
		axes[i] = Axis[T]{
			Interp: linspace.Lerp[T]{Start: start[i], Step: step},
			Steps:  arange.Steps(start[i], end[i], step),
		}
	}

	return Compose(axes).WithBounds(pointBounds(start, end, false))
}
