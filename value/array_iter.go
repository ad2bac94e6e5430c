package value

import (
	"iter"
)

// Iter is a double-ended iterator over the index range of an array.
//
// Its length is always known, and elements can be taken from either end.
// Iterators are cheap to create and do not evaluate anything until an
// element is taken.
type Iter[T any] struct {
	front, back int
	at          func(int) T
}

func newIter[T any](n int, at func(int) T) *Iter[T] {
	return &Iter[T]{back: n, at: at}
}

// Len returns the number of elements not yet taken.
func (it *Iter[T]) Len() int {
	return it.back - it.front
}

// Next takes the element at the front.
func (it *Iter[T]) Next() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	v := it.at(it.front)
	it.front++
	return v, true
}

// NextBack takes the element at the back.
func (it *Iter[T]) NextBack() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	it.back--
	return it.at(it.back), true
}

// All yields the remaining elements front to back along with their array
// index, consuming them.
func (it *Iter[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for it.front < it.back {
			i := it.front
			v := it.at(i)
			it.front++
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward yields the remaining elements back to front along with their
// array index, consuming them.
func (it *Iter[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for it.front < it.back {
			it.back--
			if !yield(it.back, it.at(it.back)) {
				return
			}
		}
	}
}

// Result is an evaluated element: its value, or the error evaluating it.
type Result struct {
	Value Value
	Err   error
}

// Iter returns an iterator that evaluates each element as it is taken.
func (a Array) Iter() *Iter[Result] {
	impl := a.backingImpl()
	return newIter(impl.length(), func(i int) Result {
		v, err := impl.get(i)
		return Result{Value: v, Err: err}
	})
}

// IterLazy returns an iterator over element thunks. Nothing is evaluated.
func (a Array) IterLazy() *Iter[*Thunk] {
	impl := a.backingImpl()
	return newIter(impl.length(), impl.getLazy)
}

// IterCheap returns an iterator over element values if every element is
// available without evaluation, and false otherwise. Checking never
// evaluates anything.
func (a Array) IterCheap() (*Iter[Value], bool) {
	impl := a.backingImpl()
	if !impl.cheap() {
		return nil, false
	}
	return newIter(impl.length(), func(i int) Value {
		v, ok := impl.getCheap(i)
		if !ok {
			panic("value: cheap array produced an unavailable element")
		}
		return v
	}), true
}

// Collect evaluates every element in order and returns them as a slice.
// The first failure is returned.
func (a Array) Collect() ([]Value, error) {
	out := make([]Value, 0, a.Len())
	for _, r := range a.Iter().All() {
		if r.Err != nil {
			return nil, r.Err
		}
		out = append(out, r.Value)
	}
	return out, nil
}
