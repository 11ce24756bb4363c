package space

import "iter"

// Sequence is a lazily-evaluated, double-ended, exact-size cursor over an
// Interpolator. It holds the immutable interpolation parameters by value
// and a mutable index window [lo, hi); the invariant 0 ≤ lo ≤ hi ≤ total
// holds at all times, and hi-lo is exactly the number of values still to
// be produced.
//
// A Sequence is single-pass: it is mutated in place by Next/NextBack/Nth
// and cannot be rewound. Clone branches an independent cursor.
type Sequence[V any] struct {
	interp Interpolator[V]
	lo, hi int
	bounds *Bounds[V]
}

// New wraps an interpolator and a total step count into a fresh Sequence
// covering indices [0, steps). A negative steps is treated as zero — the
// interpolator is then never invoked. Complexity: O(1).
func New[V any](steps int, interp Interpolator[V]) *Sequence[V] {
	if steps < 0 {
		steps = 0
	}

	return &Sequence[V]{interp: interp, lo: 0, hi: steps}
}

// WithBounds attaches declared value-domain bounds to the sequence and
// returns it, for builder chaining. The bounds are informational only;
// they never influence iteration.
func (s *Sequence[V]) WithBounds(b Bounds[V]) *Sequence[V] {
	s.bounds = &b

	return s
}

// Bounds reports the declared start/end bounds in the value domain, when
// the constructing builder attached them. Derived sequences (e.g. Map)
// report ok=false. Complexity: O(1), non-consuming.
func (s *Sequence[V]) Bounds() (b Bounds[V], ok bool) {
	if s.bounds == nil {
		return b, false
	}

	return *s.bounds, true
}

// Len reports the exact number of values still to be produced.
// It decreases by exactly 1 per successful Next/NextBack call and reaches
// 0 precisely when the sequence is exhausted. Complexity: O(1).
func (s *Sequence[V]) Len() int {
	return s.hi - s.lo
}

// Next produces the value at the front of the remaining window and
// advances it. The second result is false once the sequence is exhausted,
// and stays false forever (fused). Complexity: O(1).
func (s *Sequence[V]) Next() (v V, ok bool) {
	if s.lo >= s.hi {
		return v, false
	}
	v = s.interp.Interpolate(s.lo)
	s.lo++

	return v, true
}

// NextBack produces the value at the back of the remaining window and
// retracts it. Not a mirror-image algorithm: it is the same Interpolate
// call as Next, at a different index. Complexity: O(1).
func (s *Sequence[V]) NextBack() (v V, ok bool) {
	if s.lo >= s.hi {
		return v, false
	}
	s.hi--

	return s.interp.Interpolate(s.hi), true
}

// Advance skips up to n values from the front by moving the cursor
// directly (no per-element work) and reports how many indices were
// actually consumed — fewer than n only when the sequence ran out.
// Negative n is a no-op. Complexity: O(1).
func (s *Sequence[V]) Advance(n int) int {
	if n < 0 {
		n = 0
	}
	if rest := s.hi - s.lo; n > rest {
		n = rest
	}
	s.lo += n

	return n
}

// AdvanceBack is Advance from the back end. Complexity: O(1).
func (s *Sequence[V]) AdvanceBack(n int) int {
	if n < 0 {
		n = 0
	}
	if rest := s.hi - s.lo; n > rest {
		n = rest
	}
	s.hi -= n

	return n
}

// Nth skips n values from the front in O(1), then produces the next one.
// When n ≥ Len(), the sequence is exhausted and ok=false — never a panic.
func (s *Sequence[V]) Nth(n int) (v V, ok bool) {
	s.Advance(n)

	return s.Next()
}

// NthBack is Nth from the back end. Complexity: O(1).
func (s *Sequence[V]) NthBack(n int) (v V, ok bool) {
	s.AdvanceBack(n)

	return s.NextBack()
}

// Last consumes the sequence and produces its final value, if any.
// Equivalent to NextBack: the remaining front values are discarded
// without being computed. Complexity: O(1).
func (s *Sequence[V]) Last() (v V, ok bool) {
	v, ok = s.NextBack()
	s.lo = s.hi

	return v, ok
}

// Count consumes the sequence and reports how many values it held.
// Because Len is exact, no value is ever computed. Complexity: O(1).
func (s *Sequence[V]) Count() int {
	n := s.hi - s.lo
	s.lo = s.hi

	return n
}

// Collect consumes the sequence into a freshly allocated slice.
// Complexity: O(n) time, O(n) memory, single allocation.
func (s *Sequence[V]) Collect() []V {
	out := make([]V, 0, s.Len())
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}

	return out
}

// Clone branches an independent cursor over the same remaining window.
// The original and the clone never influence each other. Complexity: O(1).
func (s *Sequence[V]) Clone() *Sequence[V] {
	c := &Sequence[V]{interp: s.interp, lo: s.lo, hi: s.hi}
	if s.bounds != nil {
		b := *s.bounds
		c.bounds = &b
	}

	return c
}

// Values adapts the sequence to Go's range-over-func protocol, consuming
// it front to back. Breaking out of the loop leaves the cursor at the
// first unproduced index.
//
//	for v := range seq.Values() { ... }
func (s *Sequence[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := s.Next(); ok; v, ok = s.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward is Values from the back end: it consumes the sequence in
// reverse order through the same interpolation function.
func (s *Sequence[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := s.NextBack(); ok; v, ok = s.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}
