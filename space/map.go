package space

// mapped composes a source interpolator with a pointwise function.
// Purity is inherited: fn must itself be side-effect-free for the
// Sequence guarantees to carry over.
type mapped[V, U any] struct {
	src Interpolator[V]
	fn  func(V) U
}

// Interpolate applies fn to the source value at index i. Complexity: O(1).
func (m mapped[V, U]) Interpolate(i int) U {
	return m.fn(m.src.Interpolate(i))
}

// Map derives a new Sequence that applies fn to every value of s, lazily.
// The derived sequence starts at s's current window (a partially consumed
// source maps to a partially consumed result), keeps the exact length,
// and still supports NextBack and O(1) skip, because fn is composed into
// the interpolation function rather than wrapped around the cursor.
//
// s itself is left untouched; the two cursors are fully independent and
// may both be consumed. Declared bounds do not survive the mapping: the
// result's Bounds reports ok=false.
func Map[V, U any](s *Sequence[V], fn func(V) U) *Sequence[U] {
	return &Sequence[U]{
		interp: mapped[V, U]{src: s.interp, fn: fn},
		lo:     s.lo,
		hi:     s.hi,
	}
}
