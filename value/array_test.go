package value

import (
	"testing"
	"unsafe"

	"github.com/lazyconf/lazyconf-go/internal/errors"
)

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func ints(vals ...int64) Array {
	out := make([]Value, len(vals))
	for i, v := range vals {
		out[i] = FromInt(v)
	}
	return FromEager(out)
}

// countedLazy returns a lazy array whose thunks record their index in
// forced when evaluated.
func countedLazy(forced *[]int, vals ...int64) Array {
	thunks := make([]*Thunk, len(vals))
	for i, v := range vals {
		thunks[i] = NewThunk(func() (Value, error) {
			*forced = append(*forced, i)
			return FromInt(v), nil
		})
	}
	return FromLazy(thunks)
}

func failing(msg string) *Thunk {
	return NewThunk(func() (Value, error) {
		return Null(), errors.NewError(errors.ErrRuntime, msg)
	})
}

func literal(n int64) Expr {
	return ExprFunc(func(Context) (Value, error) {
		return FromInt(n), nil
	})
}

func ref(name string) Expr {
	return ExprFunc(func(ctx Context) (Value, error) {
		th, ok := ctx.Lookup(name)
		if !ok {
			return Null(), errors.Errorf(errors.ErrRuntime, "unknown variable %s", name)
		}
		return th.Force()
	})
}

var double = CallableFunc(func(args []Value) (Value, error) {
	n, _ := args[0].AsInt()
	return FromInt(n * 2), nil
})

func collectInts(t *testing.T, a Array) []int64 {
	t.Helper()
	vals, err := a.Collect()
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	out := make([]int64, len(vals))
	for i, v := range vals {
		n, ok := v.AsInt()
		if !ok {
			t.Fatalf("element %d = %s, want integer", i, v.Repr())
		}
		out[i] = n
	}
	return out
}

func sampleArrays() map[string]Array {
	eager := ints(1, 2, 3)
	scope := NewScope(nil, map[string]*Thunk{"x": Evaluated(FromInt(7))})
	slice, _ := RangeExclusive(10, 20).Slice(At(1), Default, At(3))
	rep, _ := Repeated(eager, 2)
	return map[string]Array{
		"bytes": FromBytes([]byte{0, 1, 255}),
		"eager": eager,
		"lazy": FromLazy([]*Thunk{
			Evaluated(FromInt(4)),
			NewThunk(func() (Value, error) { return FromInt(5), nil }),
		}),
		"expr":     FromExprs(scope, []Expr{ref("x"), literal(8)}),
		"range":    RangeExclusive(10, 15),
		"extended": ExtendedWithThreshold(eager, RangeExclusive(10, 15), 0),
		"slice":    slice,
		"reverse":  eager.Reversed(),
		"mapped":   eager.Map(double),
		"repeated": rep,
	}
}

// -----------------------------------------------------------------------------
// Representation
// -----------------------------------------------------------------------------

func TestArrayIsTwoWords(t *testing.T) {
	if got, want := unsafe.Sizeof(Array{}), 2*unsafe.Sizeof(uintptr(0)); got != want {
		t.Errorf("unsafe.Sizeof(Array{}) = %d, want %d", got, want)
	}
}

func TestSampleBackings(t *testing.T) {
	want := map[string]Backing{
		"bytes":    BackingBytes,
		"eager":    BackingEager,
		"lazy":     BackingLazy,
		"expr":     BackingExpr,
		"range":    BackingRange,
		"extended": BackingExtended,
		"slice":    BackingSlice,
		"reverse":  BackingReverse,
		"mapped":   BackingMapped,
		"repeated": BackingRepeated,
	}
	for name, arr := range sampleArrays() {
		if got := arr.Backing(); got != want[name] {
			t.Errorf("%s: Backing() = %v, want %v", name, got, want[name])
		}
	}
}

func TestZeroArrayIsEmpty(t *testing.T) {
	var a Array
	if !a.IsEmpty() || a.Len() != 0 {
		t.Errorf("zero Array has Len() = %d, want 0", a.Len())
	}
	if _, ok, _ := a.Get(0); ok {
		t.Error("zero Array Get(0) should be out of bounds")
	}
	if !a.IsCheap() {
		t.Error("zero Array should be cheap")
	}
}

// -----------------------------------------------------------------------------
// Contract properties
// -----------------------------------------------------------------------------

func TestLenMatchesIterators(t *testing.T) {
	for name, arr := range sampleArrays() {
		n := arr.Len()
		count := 0
		for _, r := range arr.Iter().All() {
			if r.Err != nil {
				t.Fatalf("%s: iteration error: %v", name, r.Err)
			}
			count++
		}
		if count != n {
			t.Errorf("%s: Iter() yielded %d elements, want %d", name, count, n)
		}
		if got := arr.IterLazy().Len(); got != n {
			t.Errorf("%s: IterLazy().Len() = %d, want %d", name, got, n)
		}
		it, ok := arr.IterCheap()
		if ok != arr.IsCheap() {
			t.Errorf("%s: IterCheap() ok = %v, IsCheap() = %v", name, ok, arr.IsCheap())
		}
		if ok && it.Len() != n {
			t.Errorf("%s: IterCheap().Len() = %d, want %d", name, it.Len(), n)
		}
	}
}

func TestGetMatchesForcedGetLazy(t *testing.T) {
	for name, arr := range sampleArrays() {
		for i := 0; i < arr.Len(); i++ {
			v, ok, err := arr.Get(i)
			if !ok || err != nil {
				t.Fatalf("%s: Get(%d) = (_, %v, %v)", name, i, ok, err)
			}
			th, ok := arr.GetLazy(i)
			if !ok {
				t.Fatalf("%s: GetLazy(%d) out of bounds", name, i)
			}
			lv, err := th.Force()
			if err != nil {
				t.Fatalf("%s: forcing GetLazy(%d): %v", name, i, err)
			}
			if eq, _ := Equal(v, lv); !eq {
				t.Errorf("%s: Get(%d) = %s, forced GetLazy = %s", name, i, v.Repr(), lv.Repr())
			}
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	for name, arr := range sampleArrays() {
		for _, idx := range []int{-1, arr.Len(), arr.Len() + 10} {
			if _, ok, err := arr.Get(idx); ok || err != nil {
				t.Errorf("%s: Get(%d) = (_, %v, %v), want out of bounds", name, idx, ok, err)
			}
			if _, ok := arr.GetLazy(idx); ok {
				t.Errorf("%s: GetLazy(%d) should be out of bounds", name, idx)
			}
			if _, status := arr.GetCheap(idx); status != CheapOutOfBounds {
				t.Errorf("%s: GetCheap(%d) status = %v, want out of bounds", name, idx, status)
			}
		}
	}
}

func TestIsCheap(t *testing.T) {
	want := map[string]bool{
		"bytes":    true,
		"eager":    true,
		"lazy":     false,
		"expr":     false,
		"range":    true,
		"extended": true,
		"slice":    true,
		"reverse":  true,
		"mapped":   false,
		"repeated": true,
	}
	for name, arr := range sampleArrays() {
		if got := arr.IsCheap(); got != want[name] {
			t.Errorf("%s: IsCheap() = %v, want %v", name, got, want[name])
		}
	}

	var forced []int
	lazy := countedLazy(&forced, 1, 2)
	views := map[string]Array{
		"extended": ExtendedWithThreshold(ints(1), lazy, 0),
		"reverse":  lazy.Reversed(),
		"repeated": func() Array { r, _ := Repeated(lazy, 2); return r }(),
	}
	for name, arr := range views {
		if arr.IsCheap() {
			t.Errorf("%s over lazy: IsCheap() = true, want false", name)
		}
	}
	if len(forced) != 0 {
		t.Errorf("IsCheap forced elements %v", forced)
	}
}

func TestGetCheapUnavailable(t *testing.T) {
	var forced []int
	lazy := countedLazy(&forced, 1, 2)
	if _, status := lazy.GetCheap(0); status != CheapUnavailable {
		t.Errorf("lazy GetCheap(0) status = %v, want unavailable", status)
	}
	ext := ExtendedWithThreshold(ints(1), lazy, 0)
	if v, status := ext.GetCheap(0); status != CheapOK {
		t.Errorf("extended GetCheap(0) status = %v, want ok", status)
	} else if n, _ := v.AsInt(); n != 1 {
		t.Errorf("extended GetCheap(0) = %s, want 1", v.Repr())
	}
	if _, status := ext.GetCheap(1); status != CheapUnavailable {
		t.Errorf("extended GetCheap(1) status = %v, want unavailable", status)
	}
	if len(forced) != 0 {
		t.Errorf("GetCheap forced elements %v", forced)
	}
}

func TestGetPropagatesError(t *testing.T) {
	arr := FromLazy([]*Thunk{Evaluated(FromInt(1)), failing("boom")})
	_, ok, err := arr.Get(1)
	if !ok {
		t.Fatal("Get(1) reported out of bounds")
	}
	if kind, _ := errors.KindOf(err); kind != errors.ErrRuntime {
		t.Errorf("Get(1) error = %v, want runtime error", err)
	}
	if _, _, err := arr.Reversed().Get(0); err == nil {
		t.Error("reversed Get(0) should propagate the error")
	}
}

// -----------------------------------------------------------------------------
// Identity
// -----------------------------------------------------------------------------

func TestSameIdentity(t *testing.T) {
	eager := ints(1, 2, 3)
	lazy := FromLazy([]*Thunk{Evaluated(FromInt(1))})
	expr := FromExprs(NewScope(nil, nil), []Expr{literal(1)})
	bytes := FromBytes([]byte("ab"))
	ext := ExtendedWithThreshold(eager, eager, 0)

	tests := []struct {
		name string
		a, b Array
		want bool
	}{
		{"eager copy", eager, eager, true},
		{"lazy copy", lazy, lazy, true},
		{"expr copy", expr, expr, true},
		{"bytes copy", bytes, bytes, true},
		{"extended copy", ext, ext, true},
		{"equal ranges", RangeExclusive(2, 5), RangeInclusive(2, 4), true},
		{"different ranges", RangeExclusive(2, 5), RangeExclusive(2, 6), false},
		{"equal eager contents", ints(1, 2, 3), ints(1, 2, 3), false},
		{"cross backing", ints(2, 3, 4), RangeExclusive(2, 5), false},
		{"reverse never identical", eager.Reversed(), eager.Reversed(), false},
		{"mapped never identical", eager.Map(double), eager.Map(double), false},
	}
	for _, tt := range tests {
		if got := SameIdentity(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: SameIdentity() = %v, want %v", tt.name, got, tt.want)
		}
	}

	rev := eager.Reversed()
	if SameIdentity(rev, rev) {
		t.Error("a reverse view should not be identical even to itself")
	}
}

// -----------------------------------------------------------------------------
// Expr arrays
// -----------------------------------------------------------------------------

func TestExprArrayEvaluatesOnce(t *testing.T) {
	calls := 0
	counting := ExprFunc(func(Context) (Value, error) {
		calls++
		return FromInt(42), nil
	})
	arr := FromExprs(NewScope(nil, nil), []Expr{counting})
	if calls != 0 {
		t.Fatalf("construction evaluated %d times", calls)
	}
	for i := 0; i < 3; i++ {
		if _, _, err := arr.Get(0); err != nil {
			t.Fatalf("Get(0) error: %v", err)
		}
	}
	th, _ := arr.GetLazy(0)
	if _, err := th.Force(); err != nil {
		t.Fatalf("Force() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expression evaluated %d times, want 1", calls)
	}
}

func TestExprArrayUsesContext(t *testing.T) {
	parent := NewScope(nil, map[string]*Thunk{"base": Evaluated(FromInt(10))})
	scope := NewScope(parent, map[string]*Thunk{"x": Evaluated(FromInt(1))})
	arr := FromExprs(scope, []Expr{ref("x"), ref("base"), ref("missing")})

	v, _, err := arr.Get(1)
	if err != nil {
		t.Fatalf("Get(1) error: %v", err)
	}
	if n, _ := v.AsInt(); n != 10 {
		t.Errorf("Get(1) = %s, want 10", v.Repr())
	}
	if _, _, err := arr.Get(2); err == nil {
		t.Error("Get(2) should fail for an unbound name")
	}
}
