package list

import "testing"

func TestIterator(t *testing.T) {
	list := Of(1, 2, 3, 4, 5)

	for i, it := 0, list.Iter(); ; i++ {
		v, ok := it.Next()
		if !ok {
			if i != list.Len() {
				t.Errorf("iterator stopped after %d elements, expected %d", i, list.Len())
			}
			break
		}
		if want := list.At(i); v != want {
			t.Errorf("[forward] element %d mismatch, expected %d but found %d", i, want, v)
		}
	}

	for i, it := 0, list.IterBackward(); ; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		if want := list.At(list.Len() - 1 - i); v != want {
			t.Errorf("[backward] element %d mismatch, expected %d but found %d", i, want, v)
		}
	}
}

func TestIteratorDone(t *testing.T) {
	tests := []struct {
		scenario string
		next     func(*List[int]) func() (int, bool)
	}{
		{
			scenario: "forward iterator",
			next:     func(l *List[int]) func() (int, bool) { return l.Iter().Next },
		},
		{
			scenario: "backward iterator",
			next:     func(l *List[int]) func() (int, bool) { return l.IterBackward().Next },
		},
		{
			scenario: "forward drain",
			next:     func(l *List[int]) func() (int, bool) { return l.Drain().Next },
		},
		{
			scenario: "backward drain",
			next:     func(l *List[int]) func() (int, bool) { return l.DrainBackward().Next },
		},
		{
			scenario: "pointer iterator",
			next: func(l *List[int]) func() (int, bool) {
				it := l.IterPtrBackward()
				return func() (int, bool) {
					p, ok := it.Next()
					if !ok {
						return 0, false
					}
					return *p, true
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			next := test.next(Of(1, 2))
			next()
			next()

			for i := 0; i < 3; i++ {
				if v, ok := next(); ok {
					t.Errorf("exhausted iterator produced a value: %d", v)
				}
			}
		})
	}
}

func TestIteratorEmpty(t *testing.T) {
	list := new(List[int])

	if _, ok := list.Iter().Next(); ok {
		t.Error("iterator over an empty list produced a value")
	}
	if _, ok := list.IterPtr().Next(); ok {
		t.Error("pointer iterator over an empty list produced a value")
	}
	for v := range list.Values() {
		t.Errorf("ranging over an empty list produced a value: %d", v)
	}
}

func TestPointers(t *testing.T) {
	list := Of(1, 2, 3, 4)

	for p := range list.Pointers() {
		*p *= 10
	}
	assertList(t, list, 10, 20, 30, 40)

	it := list.IterPtrBackward()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p++
	}
	assertList(t, list, 11, 21, 31, 41)
}

func TestAll(t *testing.T) {
	list := Of("A", "B", "C")

	n := 0
	for i, v := range list.All() {
		if want := list.At(i); v != want {
			t.Errorf("element at index %d mismatch, expected %q but found %q", i, want, v)
		}
		n++
	}
	if n != 3 {
		t.Errorf("wrong number of elements produced: got=%d want=3", n)
	}

	for i := range list.All() {
		if i != 0 {
			t.Errorf("iteration did not stop at break: index=%d", i)
		}
		break
	}
}

func TestSequencesRestart(t *testing.T) {
	list := Of(1, 2, 3)
	values := list.Values()

	assertList(t, Collect(values), 1, 2, 3)
	assertList(t, Collect(values), 1, 2, 3)
}

func TestDrain(t *testing.T) {
	list := Of(1, 2, 3, 4, 5)

	d := list.Drain()
	assertPop(t, d.Next, 1)
	assertPop(t, d.Next, 2)
	// Abandoning the drain leaves the remaining elements in place.
	assertList(t, list, 3, 4, 5)

	b := list.DrainBackward()
	assertPop(t, b.Next, 5)
	assertList(t, list, 3, 4)
}

func TestDrainAll(t *testing.T) {
	list := Of(1, 2, 3, 4, 5)

	for v := range list.DrainAll() {
		if v == 3 {
			break
		}
	}
	assertList(t, list, 4, 5)

	assertList(t, Collect(list.DrainAll()), 4, 5)
	assertList(t, list)
}

func TestPointersBackward(t *testing.T) {
	list := Of(1, 2, 3)

	n := 0
	for p := range list.PointersBackward() {
		n++
		*p += 10 * n
	}
	assertList(t, list, 31, 22, 13)
}

func TestDrainBackwardAll(t *testing.T) {
	list := Of(1, 2, 3, 4, 5)

	backward := []int{}
	for v := range list.DrainBackwardAll() {
		backward = append(backward, v)
		if v == 3 {
			break
		}
	}
	if len(backward) != 3 || backward[0] != 5 || backward[1] != 4 || backward[2] != 3 {
		t.Errorf("wrong elements drained from the back: %v", backward)
	}
	assertList(t, list, 1, 2)

	assertList(t, Collect(list.DrainBackwardAll()), 2, 1)
	assertList(t, list)
}
