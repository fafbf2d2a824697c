package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Min(Max(v, lo), hi)
}

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// Index1 converts a 1-based index (0 = unset) into a slice index for a
// collection of length n. ok is false when unset or out of range, which
// includes every index into an empty collection.
func Index1[T constraints.Integer](i T, n int) (int, bool) {
	v := int(i)
	if i <= 0 || v < 1 || v > n {
		return 0, false
	}
	return v - 1, true
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
