// Package compare contains comparison functions used to order values and
// sequences of values.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Sequence compares two sequences lexicographically, using cmp to compare
// elements. The next functions are called alternately and must return false
// once their sequence is exhausted.
//
// A sequence which is a prefix of the other compares lower.
func Sequence[T any](next1, next2 func() (T, bool), cmp func(T, T) int) int {
	for {
		v1, ok1 := next1()
		v2, ok2 := next2()
		switch {
		case !ok1 && !ok2:
			return 0
		case !ok1:
			return -1
		case !ok2:
			return +1
		}
		if c := cmp(v1, v2); c != 0 {
			return c
		}
	}
}
