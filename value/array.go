package value

import (
	"unsafe"
)

// Backing identifies the storage strategy behind an Array.
type Backing int

const (
	// BackingBytes is a raw byte buffer; elements are byte values.
	BackingBytes Backing = iota
	// BackingEager holds fully evaluated values.
	BackingEager
	// BackingLazy holds element thunks.
	BackingLazy
	// BackingExpr holds unevaluated element expressions and their context.
	BackingExpr
	// BackingRange is an integer range described by its bounds.
	BackingRange
	// BackingExtended is a concatenation view over two arrays.
	BackingExtended
	// BackingSlice is a windowed, strided view over another array.
	BackingSlice
	// BackingReverse is a reversed view over another array.
	BackingReverse
	// BackingMapped applies a callable to every element of another array.
	BackingMapped
	// BackingRepeated repeats another array a number of times.
	BackingRepeated
)

func (b Backing) String() string {
	switch b {
	case BackingBytes:
		return "bytes"
	case BackingEager:
		return "eager"
	case BackingLazy:
		return "lazy"
	case BackingExpr:
		return "expr"
	case BackingRange:
		return "range"
	case BackingExtended:
		return "extended"
	case BackingSlice:
		return "slice"
	case BackingReverse:
		return "reverse"
	case BackingMapped:
		return "mapped"
	case BackingRepeated:
		return "repeated"
	default:
		return "unknown"
	}
}

// CheapStatus is the outcome of Array.GetCheap.
type CheapStatus int

const (
	// CheapOK means the element was available without evaluation.
	CheapOK CheapStatus = iota
	// CheapOutOfBounds means the index is not below the array length.
	CheapOutOfBounds
	// CheapUnavailable means the element exists but producing it would
	// require evaluation.
	CheapUnavailable
)

// arrayImpl is implemented by exactly the ten backings in array_backings.go.
type arrayImpl interface {
	backing() Backing
	length() int
	// get evaluates element i; i is always in bounds.
	get(i int) (Value, error)
	// getLazy returns a thunk for element i without evaluating; i is in bounds.
	getLazy(i int) *Thunk
	// getCheap returns element i if it needs no evaluation; i is in bounds.
	getCheap(i int) (Value, bool)
	cheap() bool
}

// Array is an immutable, lazily evaluated array value.
//
// An Array is a small value (two machine words) that is copied freely.
// Its elements live in one of ten backings, chosen by the constructor or
// composition operator that produced it. All operations dispatch to the
// active backing; none of them mutates an existing Array, and none of the
// composition operators evaluates an element.
//
// The zero Array is empty.
type Array struct {
	impl arrayImpl
}

// Arrays are passed by value throughout the evaluator and must stay two words.
var (
	_ [unsafe.Sizeof(Array{}) - 2*unsafe.Sizeof(uintptr(0))]struct{}
	_ [2*unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(Array{})]struct{}
)

var emptyRange = &rangeArray{start: 0, end: -1}

func (a Array) backingImpl() arrayImpl {
	if a.impl == nil {
		return emptyRange
	}
	return a.impl
}

// Empty returns an array with no elements.
func Empty() Array {
	return Array{impl: emptyRange}
}

// FromBytes creates an array whose elements are the given bytes as numbers.
// The buffer must not be modified afterwards.
func FromBytes(b []byte) Array {
	return Array{impl: &bytesArray{data: b}}
}

// FromEager creates an array of already evaluated values. The slice must
// not be modified afterwards.
func FromEager(values []Value) Array {
	return Array{impl: &eagerArray{values: values}}
}

// FromLazy creates an array of element thunks. The slice must not be
// modified afterwards.
func FromLazy(thunks []*Thunk) Array {
	return Array{impl: &lazyArray{thunks: thunks}}
}

// FromExprs creates an array whose elements are evaluated from exprs in ctx
// on first access. This is what an array literal evaluates to.
func FromExprs(ctx Context, exprs []Expr) Array {
	return Array{impl: newExprArray(ctx, exprs)}
}

// Backing returns the storage strategy of the array.
func (a Array) Backing() Backing {
	return a.backingImpl().backing()
}

// Len returns the number of elements. It never evaluates.
func (a Array) Len() int {
	return a.backingImpl().length()
}

// IsEmpty reports whether the array has no elements.
func (a Array) IsEmpty() bool {
	return a.Len() == 0
}

// Get evaluates and returns the element at index.
//
// The second result is false if index is out of bounds. Evaluation
// failures of the element are returned unchanged.
func (a Array) Get(index int) (Value, bool, error) {
	impl := a.backingImpl()
	if index < 0 || index >= impl.length() {
		return Null(), false, nil
	}
	v, err := impl.get(index)
	if err != nil {
		return Null(), true, err
	}
	return v, true, nil
}

// GetLazy returns the thunk of the element at index without evaluating it.
// The second result is false if index is out of bounds.
func (a Array) GetLazy(index int) (*Thunk, bool) {
	impl := a.backingImpl()
	if index < 0 || index >= impl.length() {
		return nil, false
	}
	return impl.getLazy(index), true
}

// GetCheap returns the element at index only if it can be produced without
// any evaluation.
func (a Array) GetCheap(index int) (Value, CheapStatus) {
	impl := a.backingImpl()
	if index < 0 || index >= impl.length() {
		return Null(), CheapOutOfBounds
	}
	if v, ok := impl.getCheap(index); ok {
		return v, CheapOK
	}
	return Null(), CheapUnavailable
}

// IsCheap reports whether every element is available without evaluation.
func (a Array) IsCheap() bool {
	return a.backingImpl().cheap()
}

// SameIdentity reports whether a and b are backed by the very same storage.
//
// Only Bytes, Lazy, Expr, Eager and Extended arrays (by storage pointer)
// and Range arrays (by bounds) can be identical. Any other pairing,
// including arrays of different backings, is never identical even when
// both would yield the same elements. It is a fast path for equality, not
// a substitute for it.
func SameIdentity(a, b Array) bool {
	switch x := a.backingImpl().(type) {
	case *bytesArray:
		y, ok := b.backingImpl().(*bytesArray)
		return ok && x == y
	case *lazyArray:
		y, ok := b.backingImpl().(*lazyArray)
		return ok && x == y
	case *exprArray:
		y, ok := b.backingImpl().(*exprArray)
		return ok && x == y
	case *eagerArray:
		y, ok := b.backingImpl().(*eagerArray)
		return ok && x == y
	case *extendedArray:
		y, ok := b.backingImpl().(*extendedArray)
		return ok && x == y
	case *rangeArray:
		y, ok := b.backingImpl().(*rangeArray)
		return ok && x.start == y.start && x.end == y.end
	default:
		return false
	}
}
