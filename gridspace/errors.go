package gridspace

import (
	"errors"
	"fmt"
)

// ErrNoAxes indicates a grid construction with zero axes. A grid over no
// dimensions has no meaningful flat index space.
var ErrNoAxes = errors.New("gridspace: at least one axis is required")

// ErrAxisMismatch indicates that the per-axis argument slices (start,
// end, steps) disagree in length. Every axis needs exactly one bound pair
// and one step spec.
var ErrAxisMismatch = errors.New("gridspace: per-axis argument lengths differ")

// ErrBadSpan indicates a discrete-step axis whose start exceeds its end:
// successor stepping cannot reach the bound, so the cardinality is
// undefined.
var ErrBadSpan = errors.New("gridspace: discrete axis start exceeds end")

// checkAxes validates the shared builder precondition: at least one axis,
// and all per-axis slices of equal length. n is the authoritative count;
// rest are the lengths of the remaining slices.
func checkAxes(op string, n int, rest ...int) {
	if n == 0 {
		panic(fmt.Errorf("%s: %w", op, ErrNoAxes))
	}
	for _, m := range rest {
		if m != n {
			panic(fmt.Errorf("%s(axes=%d vs %d): %w", op, n, m, ErrAxisMismatch))
		}
	}
}
