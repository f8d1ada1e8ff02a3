// Package list contains the implementation of a type-safe, doubly-linked list
// which stores a single link per node.
//
// A classic doubly-linked list keeps two pointers in each node, one to the
// previous node and one to the next. The list in this package packs both into
// one field by storing the xor of the positions of the two neighbors. Walking
// the list requires knowing where the walk came from: combining a node's link
// with the position of the node we arrived from yields the position of the
// node on the other side. The encoding does not care about direction, which
// is why reversing a list only swaps its two ends.
//
// Nodes are held in an arena owned by the list and addressed by slot index
// rather than by memory address, which keeps the garbage collector able to see
// every value. Slots released by removals are reused by later insertions.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	l := list.List[string]{}
//	l.PushBack("B")
//	l.PushBack("C")
//	l.PushFront("A")
//
//	for v := range l.Values() {
//		...
//	}
//
// Lists are not safe to use concurrently from multiple goroutines, and must
// not be modified while being iterated over by a non-consuming iterator.
package list

import (
	"errors"
	"fmt"
	"iter"
)

var (
	errTooManyNodes = errors.New("list cannot hold more nodes")
)

// Config carries the configuration of a list.
type Config struct {
	// Number of nodes to preallocate when the first value is inserted.
	Capacity int
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// List instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Capacity is a configuration option setting the number of nodes that the list
// preallocates. Lists still grow past their capacity.
//
// Default: 0
func Capacity(n int) Option {
	return option(func(config *Config) { config.Capacity = n })
}

// List values are sequences of elements supporting insertion and removal at
// both ends in O(1), and access, insertion and removal by index in time
// proportional to the distance from the nearest end.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	nodes    []node[T]
	free     slot
	head     slot
	tail     slot
	size     int
	capacity int
}

// New constructs a new empty list, using the list of options passed as
// arguments to configure it.
func New[T any](options ...Option) *List[T] {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig[T](config)
}

// NewWithConfig is like New but uses a Config instance to pass the list
// configuration instead of a list of options.
func NewWithConfig[T any](config *Config) *List[T] {
	capacity := config.Capacity
	if capacity < 0 {
		capacity = 0
	}
	return &List[T]{capacity: capacity}
}

// Of constructs a list holding the values passed as arguments, in order.
func Of[T any](values ...T) *List[T] {
	list := New[T](Capacity(len(values)))
	list.PushBackValues(values...)
	return list
}

// Collect constructs a list holding the values produced by seq, in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	list := new(List[T])
	list.Extend(seq)
	return list
}

// Len returns the number of elements in the list.
func (list *List[T]) Len() int { return list.size }

// Empty returns true if the list contains no elements.
func (list *List[T]) Empty() bool { return list.size == 0 }

// Front returns the element at the front of the list. The boolean is false if
// the list is empty.
func (list *List[T]) Front() (value T, ok bool) {
	if s := list.head; s != 0 {
		value, ok = list.nodes[s].value, true
	}
	return value, ok
}

// Back returns the element at the back of the list. The boolean is false if
// the list is empty.
func (list *List[T]) Back() (value T, ok bool) {
	if s := list.tail; s != 0 {
		value, ok = list.nodes[s].value, true
	}
	return value, ok
}

// FrontPtr returns a pointer to the element at the front of the list, or nil
// if the list is empty.
//
// The pointer remains valid until the next change to the structure of the
// list.
func (list *List[T]) FrontPtr() *T { return list.valuePtr(list.head) }

// BackPtr returns a pointer to the element at the back of the list, or nil if
// the list is empty.
//
// The pointer remains valid until the next change to the structure of the
// list.
func (list *List[T]) BackPtr() *T { return list.valuePtr(list.tail) }

// Get returns the element at index i. The boolean is false if i is not a
// valid index in the list.
//
// Complexity: O(min(i, n-i))
func (list *List[T]) Get(i int) (value T, ok bool) {
	if list.inRange(i) {
		s, _ := list.locate(i)
		value, ok = list.nodes[s].value, true
	}
	return value, ok
}

// GetPtr returns a pointer to the element at index i, or nil if i is not a
// valid index in the list.
//
// The pointer remains valid until the next change to the structure of the
// list.
//
// Complexity: O(min(i, n-i))
func (list *List[T]) GetPtr(i int) *T {
	if !list.inRange(i) {
		return nil
	}
	s, _ := list.locate(i)
	return list.valuePtr(s)
}

// At returns the element at index i.
//
// The method panics if i is not a valid index in the list.
func (list *List[T]) At(i int) T {
	list.checkIndex(i)
	s, _ := list.locate(i)
	return list.nodes[s].value
}

// Set replaces the element at index i with value.
//
// The method panics if i is not a valid index in the list.
func (list *List[T]) Set(i int, value T) {
	list.checkIndex(i)
	s, _ := list.locate(i)
	list.nodes[s].value = value
}

// PushFront inserts value at the front of the list.
func (list *List[T]) PushFront(value T) {
	list.push(&list.head, &list.tail, value)
}

// PushBack inserts value at the back of the list.
func (list *List[T]) PushBack(value T) {
	list.push(&list.tail, &list.head, value)
}

// PushBackValues inserts values at the back of the list, in order.
func (list *List[T]) PushBackValues(values ...T) {
	for _, v := range values {
		list.PushBack(v)
	}
}

// Extend inserts the values produced by seq at the back of the list, in order.
func (list *List[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		list.PushBack(v)
	}
}

// PopFront removes the element at the front of the list and returns it. The
// boolean is false if the list was empty.
func (list *List[T]) PopFront() (value T, ok bool) {
	return list.pop(&list.head, &list.tail)
}

// PopBack removes the element at the back of the list and returns it. The
// boolean is false if the list was empty.
func (list *List[T]) PopBack() (value T, ok bool) {
	return list.pop(&list.tail, &list.head)
}

// Insert inserts value at index i, shifting the element previously at i and
// all the following ones by one position toward the back. Inserting at index
// zero is equivalent to PushFront, and inserting at index Len() is equivalent
// to PushBack.
//
// The method panics if i is negative or greater than the length of the list.
//
// Complexity: O(min(i, n-i))
func (list *List[T]) Insert(i int, value T) {
	switch {
	case i < 0 || i > list.size:
		panic(fmt.Errorf("index out of bounds: cannot insert at i=%d in list of len=%d", i, list.size))
	case i == 0:
		list.PushFront(value)
	case i == list.size:
		list.PushBack(value)
	default:
		at, prev := list.locate(i)
		s := list.alloc(value)
		list.nodes[s].link = prev.xor(at)
		list.relink(prev, at, s)
		list.relink(at, prev, s)
		list.size++
	}
}

// Remove removes the element at index i and returns it. The boolean is false
// if i was not a valid index in the list, in which case the list is left
// unchanged.
//
// Complexity: O(min(i, n-i))
func (list *List[T]) Remove(i int) (value T, ok bool) {
	switch {
	case !list.inRange(i):
		return value, false
	case i == 0:
		return list.PopFront()
	case i == list.size-1:
		return list.PopBack()
	default:
		at, prev := list.locate(i)
		next := list.step(at, prev)
		list.relink(prev, at, next)
		list.relink(next, at, prev)
		list.size--
		return list.release(at), true
	}
}

// Reverse reverses the order of elements in the list. The operation runs in
// constant time.
func (list *List[T]) Reverse() {
	list.head, list.tail = list.tail, list.head
}

// Clear removes all elements from the list and releases the memory held by its
// nodes.
func (list *List[T]) Clear() {
	for list.size > 0 {
		list.pop(&list.head, &list.tail)
	}
	list.nodes, list.free = nil, 0
}

// push inserts a node holding value at the end of the list anchored by end.
// The other anchor only changes when the list was empty.
func (list *List[T]) push(end, other *slot, value T) {
	s := list.alloc(value)
	if *end == 0 {
		*end, *other = s, s
	} else {
		list.relink(*end, 0, s)
		list.nodes[s].link = *end
		*end = s
	}
	list.size++
}

// pop removes the node at the end of the list anchored by end.
func (list *List[T]) pop(end, other *slot) (value T, ok bool) {
	s := *end
	if s == 0 {
		return value, false
	}
	if s == *other {
		*end, *other = 0, 0
	} else {
		// At an end, the link is the slot of the only neighbor.
		next := list.step(s, 0)
		list.relink(next, s, 0)
		*end = next
	}
	list.size--
	return list.release(s), true
}

// locate returns the slot of the node at index i, and the slot of the node
// right before it (the zero slot when i is zero). The walk starts from the end
// of the list closest to i.
func (list *List[T]) locate(i int) (at, prev slot) {
	var from slot

	if i <= list.size/2 {
		at = list.head
		for ; i > 0; i-- {
			from, at = at, list.step(at, from)
		}
		return at, from
	}

	at = list.tail
	for n := list.size - (i + 1); n > 0; n-- {
		from, at = at, list.step(at, from)
	}
	// Walking backward, from is the node after the target.
	return at, list.step(at, from)
}

func (list *List[T]) inRange(i int) bool {
	return i >= 0 && i < list.size
}

func (list *List[T]) checkIndex(i int) {
	if !list.inRange(i) {
		panic(fmt.Errorf("index out of bounds: i=%d len=%d", i, list.size))
	}
}

func (list *List[T]) valuePtr(s slot) *T {
	if s == 0 {
		return nil
	}
	return &list.nodes[s].value
}
