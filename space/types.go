package space

// Number is the capability bound shared by the interpolating sequence
// families: every fixed-size integer and floating-point kind. A Number is
// closed under + - * / and convertible from a small non-negative int index
// (the conversion the interpolators rely on). No overflow contract is
// enforced — mirroring native numeric semantics, staying in range is the
// caller's responsibility.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Float restricts Number to the floating-point kinds. Families that take
// real roots or powers (arange, logspace) require it.
type Float interface {
	~float32 | ~float64
}

// Discrete covers the steppable integer kinds used by gridspace.GridStep:
// types with an exact successor (start + 1) and an exact cardinality
// between two bounds. rune and byte qualify through ~int32 and ~uint8.
type Discrete interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Interpolator maps a step index to a value in O(1).
//
// Implementations must be pure: calling Interpolate twice with the same
// index yields the same value, regardless of any calls in between. The
// Sequence cursor depends on this to make NextBack and Nth exact after
// arbitrary prior forward/backward calls.
type Interpolator[V any] interface {
	Interpolate(i int) V
}

// Bounds reports the declared start/end of a sequence in the value domain
// (not the index domain), plus whether End is itself part of the sequence.
// It lets callers run compatibility checks without consuming the sequence.
type Bounds[V any] struct {
	Start     V
	End       V
	Inclusive bool
}
