package accum_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/katalvlaran/numspace/accum"
	"github.com/katalvlaran/numspace/linspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// counted wraps a plain value stream and records how many elements the
// fold actually pulled — the short-circuit consumption contract.
func counted[T any](vals []T, pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vals {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

// TestSumAndProduct verifies the plain single-pass folds, including their
// identity elements on empty streams.
func TestSumAndProduct(t *testing.T) {
	seq := linspace.LinSpace(0.0, 5.0, 5) // 0 1 2 3 4
	assert.Equal(t, 10.0, accum.Sum(seq.Values()))

	assert.Equal(t, 24, accum.Product(counted([]int{1, 2, 3, 4}, new(int))))

	assert.Equal(t, 0.0, accum.Sum(counted([]float64{}, new(int))))
	assert.Equal(t, 1, accum.Product(counted([]int{}, new(int))))
}

// TestSumOptional verifies that one absent element makes the whole sum
// absent and stops consumption at that exact point.
func TestSumOptional(t *testing.T) {
	present := func(vals []int, absentAt int, pulled *int) iter.Seq2[int, bool] {
		return func(yield func(int, bool) bool) {
			for i, v := range vals {
				*pulled++
				if !yield(v, i != absentAt) {
					return
				}
			}
		}
	}

	var pulled int
	total, ok := accum.SumOptional(present([]int{1, 2, 3, 4}, -1, &pulled))
	require.True(t, ok)
	assert.Equal(t, 10, total)
	assert.Equal(t, 4, pulled)

	pulled = 0
	total, ok = accum.SumOptional(present([]int{1, 2, 3, 4}, 1, &pulled))
	assert.False(t, ok)
	assert.Zero(t, total)
	assert.Equal(t, 2, pulled, "consumption must stop at the absent element")
}

// TestSumChecked verifies that the first error stops the pass and is
// surfaced untouched.
func TestSumChecked(t *testing.T) {
	fallible := func(vals []float64, failAt int, pulled *int) iter.Seq2[float64, error] {
		return func(yield func(float64, error) bool) {
			for i, v := range vals {
				*pulled++
				var err error
				if i == failAt {
					err = errBoom
				}
				if !yield(v, err) {
					return
				}
			}
		}
	}

	var pulled int
	total, err := accum.SumChecked(fallible([]float64{1, 2, 3}, -1, &pulled))
	require.NoError(t, err)
	assert.Equal(t, 6.0, total)

	pulled = 0
	total, err = accum.SumChecked(fallible([]float64{1, 2, 3}, 1, &pulled))
	require.ErrorIs(t, err, errBoom)
	assert.Zero(t, total)
	assert.Equal(t, 2, pulled, "consumption must stop at the first error")
}

// TestProductVariants covers the multiplicative folds' short-circuiting.
func TestProductVariants(t *testing.T) {
	all := func(vals []int) iter.Seq2[int, bool] {
		return func(yield func(int, bool) bool) {
			for _, v := range vals {
				if !yield(v, true) {
					return
				}
			}
		}
	}
	total, ok := accum.ProductOptional(all([]int{2, 3, 4}))
	require.True(t, ok)
	assert.Equal(t, 24, total)

	var broken iter.Seq2[int, error] = func(yield func(int, error) bool) {
		_ = yield(2, nil) && yield(0, errBoom) && yield(5, nil)
	}
	got, err := accum.ProductChecked(broken)
	require.ErrorIs(t, err, errBoom)
	assert.Zero(t, got)
}
