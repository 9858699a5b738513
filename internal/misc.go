package internal

import "cmp"

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// Clamp limits v to the closed range [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FloorTo rounds v down to a multiple of step. step must be positive.
func FloorTo(v, step int) int {
	if v >= 0 {
		return v - v%step
	}
	return -CeilTo(-v, step)
}

// CeilTo rounds v up to a multiple of step. step must be positive.
func CeilTo(v, step int) int {
	if v <= 0 {
		return -FloorTo(-v, step)
	}
	if r := v % step; r != 0 {
		return v + step - r
	}
	return v
}
