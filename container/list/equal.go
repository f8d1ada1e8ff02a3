package list

import (
	"github.com/segmentio/fasthash/fnv1a"
	"github.com/segmentio/xorlist/compare"
	"github.com/zyedidia/generic"
	"golang.org/x/exp/constraints"
)

// Equal returns true if a and b have the same length, and their elements are
// equal when compared in order from front to back.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, generic.Equals[T])
}

// EqualFunc is like Equal but uses eq to compare elements.
//
// A nil list is equal to an empty list.
func EqualFunc[T any](a, b *List[T], eq generic.EqualsFn[T]) bool {
	a, b = orEmpty(a), orEmpty(b)
	if a.Len() != b.Len() {
		return false
	}
	it1, it2 := a.Iter(), b.Iter()
	for {
		v1, ok := it1.Next()
		if !ok {
			return true
		}
		v2, _ := it2.Next()
		if !eq(v1, v2) {
			return false
		}
	}
}

// Compare compares the elements of a and b lexicographically, from front to
// back. The result is negative if a orders before b, positive if it orders
// after, and zero if the lists are equal.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, compare.Function[T])
}

// CompareFunc is like Compare but uses cmp to compare elements. A nil list
// compares like an empty list.
func CompareFunc[T any](a, b *List[T], cmp func(T, T) int) int {
	a, b = orEmpty(a), orEmpty(b)
	return compare.Sequence(a.Iter().Next, b.Iter().Next, cmp)
}

// Hash computes a hash of the list from its length and the hash of each of its
// elements, in order from front to back. Lists which are equal have the same
// hash when hashed with the same function.
func (list *List[T]) Hash(hash generic.HashFn[T]) uint64 {
	h := fnv1a.AddUint64(fnv1a.Init64, uint64(list.size))
	it := list.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		h = fnv1a.AddUint64(h, hash(v))
	}
	return h
}

func orEmpty[T any](list *List[T]) *List[T] {
	if list == nil {
		return new(List[T])
	}
	return list
}
