package gridspace

import (
	"fmt"

	"github.com/katalvlaran/numspace/space"
)

// Axis pairs one per-axis interpolation strategy with its own step count.
// Steps must be non-negative; a zero-step axis makes the whole grid empty.
type Axis[T any] struct {
	Interp space.Interpolator[T]
	Steps  int
}

// pointInterp is the composite strategy over N axes. Interpolating a flat
// index recovers the per-axis digits by mixed-radix div/mod, last axis
// first (the fastest-varying one), and delegates each digit to its axis.
type pointInterp[T any] struct {
	axes []Axis[T]
}

// Interpolate decomposes the flat index x and produces one []T point.
// Complexity: O(N) per point, one slice allocation.
func (p pointInterp[T]) Interpolate(x int) []T {
	out := make([]T, len(p.axes))
	var ax Axis[T]
	for i := len(p.axes) - 1; i >= 0; i-- {
		ax = p.axes[i]
		out[i] = ax.Interp.Interpolate(x % ax.Steps)
		x /= ax.Steps
	}

	return out
}

// Compose flattens the given axes into a single sequence of []T points in
// row-major order (axis 0 slowest, axis N-1 fastest). The flat length is
// the product of the per-axis step counts, computed once here; an axis
// with zero (or negative) steps yields an empty sequence. Panics wrapping
// ErrNoAxes when axes is empty.
//
// The higher-level builders (GridSpace, ArangeGrid, GridStep) all funnel
// through Compose; it is exported so callers can mix their own per-axis
// strategies — e.g. a linear axis against a logarithmic one.
func Compose[T any](axes []Axis[T]) *space.Sequence[[]T] {
	if len(axes) == 0 {
		panic(fmt.Errorf("Compose: %w", ErrNoAxes))
	}
	total := 1
	for _, ax := range axes {
		if ax.Steps <= 0 {
			total = 0
			break
		}
		total *= ax.Steps
	}

	return space.New[[]T](total, pointInterp[T]{axes: axes})
}
