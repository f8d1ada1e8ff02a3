package list

import "iter"

// cursor is the position of a walk through the links of a list. Decoding a
// link requires the slot the walk arrived from, so both are carried along.
//
// A cursor positioned on the zero slot is done, and stays done.
type cursor struct {
	at   slot
	from slot
}

// Iterator values walk the elements of a list without modifying it.
//
// The list must not be modified while an iterator is in use.
type Iterator[T any] struct {
	list *List[T]
	pos  cursor
}

// Iter returns an iterator over the elements of the list, from front to back.
func (list *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{list: list, pos: cursor{at: list.head}}
}

// IterBackward returns an iterator over the elements of the list, from back to
// front.
func (list *List[T]) IterBackward() *Iterator[T] {
	return &Iterator[T]{list: list, pos: cursor{at: list.tail}}
}

// Next returns the next element. The boolean is false once all elements have
// been produced.
func (it *Iterator[T]) Next() (value T, ok bool) {
	if s := advance(it.list, &it.pos); s != 0 {
		value, ok = it.list.nodes[s].value, true
	}
	return value, ok
}

// PtrIterator values walk the elements of a list, producing pointers which
// may be used to modify elements in place.
//
// Each element is produced once; the structure of the list must not be
// modified while the iterator is in use.
type PtrIterator[T any] struct {
	list *List[T]
	pos  cursor
}

// IterPtr returns an iterator over pointers to the elements of the list, from
// front to back.
func (list *List[T]) IterPtr() *PtrIterator[T] {
	return &PtrIterator[T]{list: list, pos: cursor{at: list.head}}
}

// IterPtrBackward returns an iterator over pointers to the elements of the
// list, from back to front.
func (list *List[T]) IterPtrBackward() *PtrIterator[T] {
	return &PtrIterator[T]{list: list, pos: cursor{at: list.tail}}
}

// Next returns a pointer to the next element. The boolean is false once all
// elements have been produced.
func (it *PtrIterator[T]) Next() (*T, bool) {
	if s := advance(it.list, &it.pos); s != 0 {
		return &it.list.nodes[s].value, true
	}
	return nil, false
}

// Drain values remove elements from one end of a list as they produce them.
//
// Abandoning a drain before it is done leaves the remaining elements in the
// list.
type Drain[T any] struct {
	list *List[T]
	back bool
}

// Drain returns an iterator removing elements from the front of the list.
func (list *List[T]) Drain() *Drain[T] {
	return &Drain[T]{list: list}
}

// DrainBackward returns an iterator removing elements from the back of the
// list.
func (list *List[T]) DrainBackward() *Drain[T] {
	return &Drain[T]{list: list, back: true}
}

// Next removes the next element from the list and returns it. The boolean is
// false once the list is empty.
func (d *Drain[T]) Next() (T, bool) {
	if d.back {
		return d.list.PopBack()
	}
	return d.list.PopFront()
}

// All returns an iterator over the index and value of each element of the
// list, from front to back.
func (list *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := list.Iter()
		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the list, from front to
// back.
func (list *List[T]) Values() iter.Seq[T] {
	return seqOf[T](list.Iter)
}

// Backward returns an iterator over the elements of the list, from back to
// front.
func (list *List[T]) Backward() iter.Seq[T] {
	return seqOf[T](list.IterBackward)
}

// Pointers returns an iterator over pointers to the elements of the list, from
// front to back.
func (list *List[T]) Pointers() iter.Seq[*T] {
	return seqOf[*T](list.IterPtr)
}

// PointersBackward returns an iterator over pointers to the elements of the
// list, from back to front.
func (list *List[T]) PointersBackward() iter.Seq[*T] {
	return seqOf[*T](list.IterPtrBackward)
}

// DrainAll returns an iterator which removes elements from the front of the
// list as they are produced. Breaking out of the loop leaves the remaining
// elements in the list.
func (list *List[T]) DrainAll() iter.Seq[T] {
	return seqOf[T](list.Drain)
}

// DrainBackwardAll is like DrainAll but removes elements from the back of the
// list.
func (list *List[T]) DrainBackwardAll() iter.Seq[T] {
	return seqOf[T](list.DrainBackward)
}

func advance[T any](list *List[T], c *cursor) slot {
	s := c.at
	if s != 0 {
		c.at, c.from = list.step(s, c.from), s
	}
	return s
}

type iterator[T any] interface {
	Next() (T, bool)
}

// seqOf adapts iterators to range-over-func sequences. Each range over the
// sequence starts a new iterator.
func seqOf[T any, I iterator[T]](start func() I) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := start()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
