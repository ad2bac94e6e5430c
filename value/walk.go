package value

import (
	"fmt"
	"strings"
)

// Walk calls fn for a and for every array reachable from it: the operands
// of views, and arrays held by elements that are already evaluated.
//
// Nothing is evaluated. Each backing instance is visited once, so cyclic
// structures (an element whose value refers back to its own array through
// a closure) terminate. If fn returns false the children of that array
// are skipped.
func Walk(a Array, fn func(a Array, depth int) bool) {
	w := walker{seen: make(map[arrayImpl]struct{}), fn: fn}
	w.walk(a, 0)
}

type walker struct {
	seen map[arrayImpl]struct{}
	fn   func(Array, int) bool
}

func (w *walker) walk(a Array, depth int) {
	impl := a.backingImpl()
	if _, ok := w.seen[impl]; ok {
		return
	}
	w.seen[impl] = struct{}{}
	if !w.fn(a, depth) {
		return
	}

	switch x := impl.(type) {
	case *eagerArray:
		for _, v := range x.values {
			w.walkValue(v, depth+1)
		}
	case *lazyArray:
		for _, th := range x.thunks {
			w.walkThunk(th, depth+1)
		}
	case *exprArray:
		for _, th := range x.thunks {
			w.walkThunk(th, depth+1)
		}
	case *extendedArray:
		w.walk(x.a, depth+1)
		w.walk(x.b, depth+1)
	case *sliceArray:
		w.walk(x.inner, depth+1)
	case *reverseArray:
		w.walk(x.inner, depth+1)
	case *mappedArray:
		w.walk(x.inner, depth+1)
	case *repeatedArray:
		w.walk(x.inner, depth+1)
	}
}

func (w *walker) walkThunk(th *Thunk, depth int) {
	if v, ok := th.Peek(); ok {
		w.walkValue(v, depth)
	}
}

func (w *walker) walkValue(v Value, depth int) {
	switch d := v.data.(type) {
	case Array:
		w.walk(d, depth)
	case map[string]Value:
		for _, field := range d {
			w.walkValue(field, depth)
		}
	}
}

// Describe renders the backing structure of an array for debugging, for
// example "extended(eager[3], range[0..99])". Element values are not
// shown and nothing is evaluated.
func Describe(a Array) string {
	var b strings.Builder
	describe(&b, a)
	return b.String()
}

func describe(b *strings.Builder, a Array) {
	switch x := a.backingImpl().(type) {
	case *rangeArray:
		if x.end < x.start {
			b.WriteString("range[]")
			return
		}
		fmt.Fprintf(b, "range[%d..%d]", x.start, x.end)
	case *extendedArray:
		b.WriteString("extended(")
		describe(b, x.a)
		b.WriteString(", ")
		describe(b, x.b)
		b.WriteString(")")
	case *sliceArray:
		fmt.Fprintf(b, "slice[%d:%d:%d](", x.from, x.to, x.step)
		describe(b, x.inner)
		b.WriteString(")")
	case *reverseArray:
		b.WriteString("reverse(")
		describe(b, x.inner)
		b.WriteString(")")
	case *mappedArray:
		b.WriteString("mapped(")
		describe(b, x.inner)
		b.WriteString(")")
	case *repeatedArray:
		fmt.Fprintf(b, "repeated[%d](", x.repeats)
		describe(b, x.inner)
		b.WriteString(")")
	default:
		fmt.Fprintf(b, "%s[%d]", a.Backing(), a.Len())
	}
}
