package logspace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numspace/space"
)

// Geom is the logarithmic interpolation strategy: the closed-form
// parameters (Start, Ratio) of a geometric progression. A pure value,
// like linspace.Lerp.
type Geom[T space.Float] struct {
	Start T
	Ratio T
}

// Interpolate returns Start · Ratio^i. Complexity: O(1), no state.
func (g Geom[T]) Interpolate(i int) T {
	return g.Start * T(math.Pow(float64(g.Ratio), float64(i)))
}

// GeomOver builds the strategy for an EXCLUSIVE range: steps values from
// start towards end, end itself excluded; ratio = (end/start)^(1/steps).
// steps == 0 yields a strategy that is never invoked (length 0).
// Panics wrapping ErrNonPositive when either bound is ≤ 0.
func GeomOver[T space.Float](start, end T, steps int) Geom[T] {
	checkPositive("GeomOver", start, end)
	if steps <= 0 {
		return Geom[T]{Start: start, Ratio: 1}
	}

	return Geom[T]{Start: start, Ratio: nthRoot(end/start, steps)}
}

// GeomOverClosed builds the strategy for an INCLUSIVE range: steps values
// from start to end, end included; ratio = (end/start)^(1/(steps-1)).
// steps == 0 panics wrapping ErrZeroSteps; steps == 1 produces the single
// value start.
func GeomOverClosed[T space.Float](start, end T, steps int) Geom[T] {
	checkPositive("GeomOverClosed", start, end)
	if steps == 0 {
		panic(fmt.Errorf("GeomOverClosed(steps=0): %w", ErrZeroSteps))
	}
	if steps == 1 {
		return Geom[T]{Start: start, Ratio: 1}
	}

	return Geom[T]{Start: start, Ratio: nthRoot(end/start, steps-1)}
}

// LogSpace returns a sequence of steps logarithmically spaced values over
// the EXCLUSIVE range [start, end): start is the first value, end is
// never produced.
//
//	LogSpace(1.0, 1000.0, 3) // ≈ 1 10 100
func LogSpace[T space.Float](start, end T, steps int) *space.Sequence[T] {
	return space.New[T](steps, GeomOver(start, end, steps)).
		WithBounds(space.Bounds[T]{Start: start, End: end})
}

// LogSpaceInclusive returns a sequence of steps logarithmically spaced
// values over the INCLUSIVE range [start, end]: start is the first value
// and end the last (up to floating-point rounding).
//
//	LogSpaceInclusive(1.0, 1000.0, 4) // ≈ 1 10 100 1000
func LogSpaceInclusive[T space.Float](start, end T, steps int) *space.Sequence[T] {
	return space.New[T](steps, GeomOverClosed(start, end, steps)).
		WithBounds(space.Bounds[T]{Start: start, End: end, Inclusive: true})
}

// nthRoot returns q^(1/n) through float64, the widest kind T can be.
func nthRoot[T space.Float](q T, n int) T {
	return T(math.Pow(float64(q), 1/float64(n)))
}

// checkPositive enforces the strictly-positive bounds contract.
func checkPositive[T space.Float](op string, start, end T) {
	if start <= 0 || end <= 0 {
		panic(fmt.Errorf("%s(start=%v, end=%v): %w", op, start, end, ErrNonPositive))
	}
}
