package value

import (
	"math"
)

// DefaultExtendThreshold is the combined length above which Extended keeps
// both operands as a concatenation view instead of copying them.
//
// It is a heuristic: results are the same on either side of it, only the
// representation differs.
const DefaultExtendThreshold = 100

// Extended concatenates a and b using DefaultExtendThreshold.
func Extended(a, b Array) Array {
	return ExtendedWithThreshold(a, b, DefaultExtendThreshold)
}

// ExtendedWithThreshold concatenates a and b without evaluating any element.
//
// An empty operand yields the other operand unchanged. Above threshold
// combined elements the result is an O(1) view over both operands, which
// keeps repeated concatenation (folds building big arrays) linear. Below
// it the operands are flattened: into an eager array when both are cheap,
// otherwise into a lazy array of their element thunks.
func ExtendedWithThreshold(a, b Array, threshold int) Array {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	total := a.Len() + b.Len()
	if total > threshold {
		return Array{impl: newExtendedArray(a, b)}
	}

	if ai, ok := a.IterCheap(); ok {
		if bi, ok := b.IterCheap(); ok {
			out := make([]Value, 0, total)
			for _, v := range ai.All() {
				out = append(out, v)
			}
			for _, v := range bi.All() {
				out = append(out, v)
			}
			return FromEager(out)
		}
	}

	out := make([]*Thunk, 0, total)
	for _, th := range a.IterLazy().All() {
		out = append(out, th)
	}
	for _, th := range b.IterLazy().All() {
		out = append(out, th)
	}
	return FromLazy(out)
}

// Bound is an optional slice bound.
type Bound struct {
	n   int
	set bool
}

// Default is the unset Bound; Slice substitutes its default.
var Default Bound

// At returns a Bound set to n.
func At(n int) Bound {
	return Bound{n: n, set: true}
}

func (b Bound) or(def int) int {
	if b.set {
		return b.n
	}
	return def
}

// Slice returns a view of the elements from, from+step, ... below to.
//
// Unset bounds default to 0, Len() and 1. to is clamped to Len(). The
// second result is false when the bounds select nothing (from >= to), when
// step is zero, or when a bound is negative; callers decide whether that
// is an error. No element is copied or evaluated.
func (a Array) Slice(from, to, step Bound) (Array, bool) {
	n := a.Len()
	f := from.or(0)
	t := min(to.or(n), n)
	s := step.or(1)
	if f < 0 || t < 0 || s < 0 {
		return Array{}, false
	}
	if f >= t || s == 0 {
		return Array{}, false
	}
	return Array{impl: &sliceArray{inner: a, from: f, to: t, step: s}}, true
}

// Reversed returns a view of the array in reverse order.
func (a Array) Reversed() Array {
	return Array{impl: &reverseArray{inner: a}}
}

// Map returns a view applying fn to every element.
//
// Nothing is evaluated and fn is not called when the view is built. Each
// Get on the result evaluates the element and calls fn again; results are
// not memoized. Callers that need a single evaluation should keep the
// thunk returned by GetLazy, or materialize the array.
func (a Array) Map(fn Callable) Array {
	return Array{impl: &mappedArray{inner: a, fn: fn}}
}

// Filter evaluates every element in order and keeps those for which pred
// returns true. The first evaluation or predicate failure aborts the
// filter and is returned as is. The result is always eager.
func (a Array) Filter(pred func(Value) (bool, error)) (Array, error) {
	var out []Value
	it := a.Iter()
	for _, r := range it.All() {
		if r.Err != nil {
			return Array{}, r.Err
		}
		keep, err := pred(r.Value)
		if err != nil {
			return Array{}, err
		}
		if keep {
			out = append(out, r.Value)
		}
	}
	return FromEager(out), nil
}

// Repeated returns a view of data repeated repeats times.
//
// The second result is false if repeats is negative or if the resulting
// length does not fit in an int. An empty data array always gives an
// empty result.
func Repeated(data Array, repeats int) (Array, bool) {
	if repeats < 0 {
		return Array{}, false
	}
	n := data.Len()
	if n != 0 && repeats > math.MaxInt/n {
		return Array{}, false
	}
	return Array{impl: &repeatedArray{inner: data, repeats: repeats, total: n * repeats}}, true
}

// RangeExclusive returns the integers in [start, end).
func RangeExclusive(start, end int32) Array {
	return Array{impl: newRangeExclusive(start, end)}
}

// RangeInclusive returns the integers in [start, end].
func RangeInclusive(start, end int32) Array {
	return Array{impl: &rangeArray{start: start, end: end}}
}
