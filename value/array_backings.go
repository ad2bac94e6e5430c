package value

// -----------------------------------------------------------------------------
// Storage backings
// -----------------------------------------------------------------------------

type bytesArray struct {
	data []byte
}

func (a *bytesArray) backing() Backing             { return BackingBytes }
func (a *bytesArray) length() int                  { return len(a.data) }
func (a *bytesArray) get(i int) (Value, error)     { return FromInt(int64(a.data[i])), nil }
func (a *bytesArray) getLazy(i int) *Thunk         { return Evaluated(FromInt(int64(a.data[i]))) }
func (a *bytesArray) getCheap(i int) (Value, bool) { return FromInt(int64(a.data[i])), true }
func (a *bytesArray) cheap() bool                  { return true }

type eagerArray struct {
	values []Value
}

func (a *eagerArray) backing() Backing             { return BackingEager }
func (a *eagerArray) length() int                  { return len(a.values) }
func (a *eagerArray) get(i int) (Value, error)     { return a.values[i], nil }
func (a *eagerArray) getLazy(i int) *Thunk         { return Evaluated(a.values[i]) }
func (a *eagerArray) getCheap(i int) (Value, bool) { return a.values[i], true }
func (a *eagerArray) cheap() bool                  { return true }

type lazyArray struct {
	thunks []*Thunk
}

func (a *lazyArray) backing() Backing             { return BackingLazy }
func (a *lazyArray) length() int                  { return len(a.thunks) }
func (a *lazyArray) get(i int) (Value, error)     { return a.thunks[i].Force() }
func (a *lazyArray) getLazy(i int) *Thunk         { return a.thunks[i] }
func (a *lazyArray) getCheap(i int) (Value, bool) { return Null(), false }
func (a *lazyArray) cheap() bool                  { return false }

// exprArray evaluates element expressions on demand. The thunk for an
// element is created on first access and reused afterwards, so an element
// is evaluated at most once no matter how it is reached.
type exprArray struct {
	ctx    Context
	exprs  []Expr
	thunks []*Thunk
}

func newExprArray(ctx Context, exprs []Expr) *exprArray {
	return &exprArray{ctx: ctx, exprs: exprs, thunks: make([]*Thunk, len(exprs))}
}

func (a *exprArray) backing() Backing { return BackingExpr }
func (a *exprArray) length() int      { return len(a.exprs) }

func (a *exprArray) get(i int) (Value, error) {
	return a.getLazy(i).Force()
}

func (a *exprArray) getLazy(i int) *Thunk {
	if th := a.thunks[i]; th != nil {
		return th
	}
	th := ThunkFromExpr(a.ctx, a.exprs[i])
	a.thunks[i] = th
	return th
}

func (a *exprArray) getCheap(i int) (Value, bool) { return Null(), false }
func (a *exprArray) cheap() bool                  { return false }

// rangeArray covers [start, end]; end < start means empty.
type rangeArray struct {
	start int32
	end   int32
}

func newRangeExclusive(start, end int32) *rangeArray {
	if end <= start {
		return emptyRange
	}
	return &rangeArray{start: start, end: end - 1}
}

func (a *rangeArray) backing() Backing { return BackingRange }

func (a *rangeArray) length() int {
	if a.end < a.start {
		return 0
	}
	return int(int64(a.end) - int64(a.start) + 1)
}

func (a *rangeArray) at(i int) Value {
	return FromInt(int64(a.start) + int64(i))
}

func (a *rangeArray) get(i int) (Value, error)     { return a.at(i), nil }
func (a *rangeArray) getLazy(i int) *Thunk         { return Evaluated(a.at(i)) }
func (a *rangeArray) getCheap(i int) (Value, bool) { return a.at(i), true }
func (a *rangeArray) cheap() bool                  { return true }

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

type extendedArray struct {
	a, b  Array
	split int
	total int
}

func newExtendedArray(a, b Array) *extendedArray {
	split := a.Len()
	return &extendedArray{a: a, b: b, split: split, total: split + b.Len()}
}

func (e *extendedArray) backing() Backing { return BackingExtended }
func (e *extendedArray) length() int      { return e.total }

func (e *extendedArray) route(i int) (arrayImpl, int) {
	if i < e.split {
		return e.a.backingImpl(), i
	}
	return e.b.backingImpl(), i - e.split
}

func (e *extendedArray) get(i int) (Value, error) {
	impl, j := e.route(i)
	return impl.get(j)
}

func (e *extendedArray) getLazy(i int) *Thunk {
	impl, j := e.route(i)
	return impl.getLazy(j)
}

func (e *extendedArray) getCheap(i int) (Value, bool) {
	impl, j := e.route(i)
	return impl.getCheap(j)
}

func (e *extendedArray) cheap() bool {
	return e.a.IsCheap() && e.b.IsCheap()
}

type sliceArray struct {
	inner    Array
	from, to int
	step     int
}

func (s *sliceArray) backing() Backing { return BackingSlice }

func (s *sliceArray) length() int {
	// to > from, so this cannot overflow for any step.
	return (s.to-s.from-1)/s.step + 1
}

func (s *sliceArray) index(i int) int {
	return s.from + i*s.step
}

func (s *sliceArray) get(i int) (Value, error) {
	return s.inner.backingImpl().get(s.index(i))
}

func (s *sliceArray) getLazy(i int) *Thunk {
	return s.inner.backingImpl().getLazy(s.index(i))
}

func (s *sliceArray) getCheap(i int) (Value, bool) {
	return s.inner.backingImpl().getCheap(s.index(i))
}

func (s *sliceArray) cheap() bool {
	return s.inner.IsCheap()
}

type reverseArray struct {
	inner Array
}

func (r *reverseArray) backing() Backing { return BackingReverse }
func (r *reverseArray) length() int      { return r.inner.Len() }

func (r *reverseArray) index(i int) int {
	return r.inner.Len() - 1 - i
}

func (r *reverseArray) get(i int) (Value, error) {
	return r.inner.backingImpl().get(r.index(i))
}

func (r *reverseArray) getLazy(i int) *Thunk {
	return r.inner.backingImpl().getLazy(r.index(i))
}

func (r *reverseArray) getCheap(i int) (Value, bool) {
	return r.inner.backingImpl().getCheap(r.index(i))
}

func (r *reverseArray) cheap() bool {
	return r.inner.IsCheap()
}

// mappedArray applies fn on every access; results are not cached.
type mappedArray struct {
	inner Array
	fn    Callable
}

func (m *mappedArray) backing() Backing { return BackingMapped }
func (m *mappedArray) length() int      { return m.inner.Len() }

func (m *mappedArray) get(i int) (Value, error) {
	v, err := m.inner.backingImpl().get(i)
	if err != nil {
		return Null(), err
	}
	return m.fn.Call([]Value{v})
}

func (m *mappedArray) getLazy(i int) *Thunk {
	inner := m.inner.backingImpl().getLazy(i)
	fn := m.fn
	return NewThunk(func() (Value, error) {
		v, err := inner.Force()
		if err != nil {
			return Null(), err
		}
		return fn.Call([]Value{v})
	})
}

func (m *mappedArray) getCheap(i int) (Value, bool) { return Null(), false }
func (m *mappedArray) cheap() bool                  { return false }

type repeatedArray struct {
	inner   Array
	repeats int
	total   int
}

func (r *repeatedArray) backing() Backing { return BackingRepeated }
func (r *repeatedArray) length() int      { return r.total }

func (r *repeatedArray) index(i int) int {
	return i % r.inner.Len()
}

func (r *repeatedArray) get(i int) (Value, error) {
	return r.inner.backingImpl().get(r.index(i))
}

func (r *repeatedArray) getLazy(i int) *Thunk {
	return r.inner.backingImpl().getLazy(r.index(i))
}

func (r *repeatedArray) getCheap(i int) (Value, bool) {
	return r.inner.backingImpl().getCheap(r.index(i))
}

func (r *repeatedArray) cheap() bool {
	return r.inner.IsCheap()
}
