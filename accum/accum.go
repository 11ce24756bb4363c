package accum

import (
	"iter"

	"github.com/katalvlaran/numspace/space"
)

// Sum folds a numeric stream by addition, starting from zero.
// Complexity: O(n), single pass.
func Sum[T space.Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}

	return total
}

// Product folds a numeric stream by multiplication, starting from one.
// Complexity: O(n), single pass.
func Product[T space.Number](seq iter.Seq[T]) T {
	total := T(1)
	for v := range seq {
		total *= v
	}

	return total
}

// SumOptional sums a stream of possibly-absent values. The first absent
// element (ok=false) makes the overall sum absent and stops consuming the
// stream at that point.
func SumOptional[T space.Number](seq iter.Seq2[T, bool]) (T, bool) {
	var total T
	for v, ok := range seq {
		if !ok {
			var zero T

			return zero, false
		}
		total += v
	}

	return total, true
}

// ProductOptional is SumOptional for multiplication.
func ProductOptional[T space.Number](seq iter.Seq2[T, bool]) (T, bool) {
	total := T(1)
	for v, ok := range seq {
		if !ok {
			var zero T

			return zero, false
		}
		total *= v
	}

	return total, true
}

// SumChecked sums a fallible stream. The first non-nil error stops the
// pass immediately and is returned untouched, together with a zero sum.
func SumChecked[T space.Number](seq iter.Seq2[T, error]) (T, error) {
	var total T
	for v, err := range seq {
		if err != nil {
			var zero T

			return zero, err
		}
		total += v
	}

	return total, nil
}

// ProductChecked is SumChecked for multiplication.
func ProductChecked[T space.Number](seq iter.Seq2[T, error]) (T, error) {
	total := T(1)
	for v, err := range seq {
		if err != nil {
			var zero T

			return zero, err
		}
		total *= v
	}

	return total, nil
}
