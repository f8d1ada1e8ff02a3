package list

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Clone returns a copy of the list. The copy does not share memory with the
// original list.
func (list *List[T]) Clone() *List[T] {
	c := New[T](Capacity(list.size))
	for v := range list.Values() {
		c.PushBack(v)
	}
	return c
}

// Slice returns the elements of the list from front to back.
func (list *List[T]) Slice() []T {
	s := make([]T, 0, list.size)
	for v := range list.Values() {
		s = append(s, v)
	}
	return s
}

// String returns a representation of the list in the format used for slices
// by the fmt package, for example [1 2 3].
//
// The method has a value receiver so lists held by value format the same way
// as pointers to lists.
func (list List[T]) String() string {
	b := new(strings.Builder)
	b.WriteByte('[')
	for i, v := range list.All() {
		if i != 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(b, v)
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the list as a JSON array of its elements, from front to
// back. Like String, it is also available on lists held by value.
func (list List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(list.Slice())
}

// UnmarshalJSON decodes a JSON array, replacing the content of the list with
// its elements. The list is left unchanged if decoding fails.
func (list *List[T]) UnmarshalJSON(b []byte) error {
	var values []T
	if err := json.Unmarshal(b, &values); err != nil {
		return fmt.Errorf("decoding list: %w", err)
	}
	list.Clear()
	list.PushBackValues(values...)
	return nil
}
