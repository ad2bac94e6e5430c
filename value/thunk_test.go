package value

import (
	"testing"

	"github.com/lazyconf/lazyconf-go/internal/errors"
)

func TestThunkMemoizes(t *testing.T) {
	calls := 0
	th := NewThunk(func() (Value, error) {
		calls++
		return FromInt(7), nil
	})
	if th.IsEvaluated() {
		t.Fatal("new thunk reports evaluated")
	}
	if _, ok := th.Peek(); ok {
		t.Fatal("Peek() on a pending thunk returned a value")
	}
	for i := 0; i < 3; i++ {
		v, err := th.Force()
		if err != nil {
			t.Fatalf("Force() error: %v", err)
		}
		if n, _ := v.AsInt(); n != 7 {
			t.Errorf("Force() = %s, want 7", v.Repr())
		}
	}
	if calls != 1 {
		t.Errorf("computation ran %d times, want 1", calls)
	}
	if v, ok := th.Peek(); !ok || v.Repr() != "7" {
		t.Errorf("Peek() = (%s, %v), want (7, true)", v.Repr(), ok)
	}
}

func TestThunkMemoizesErrors(t *testing.T) {
	calls := 0
	th := NewThunk(func() (Value, error) {
		calls++
		return Null(), errors.NewError(errors.ErrRuntime, "boom")
	})
	_, err1 := th.Force()
	_, err2 := th.Force()
	if err1 == nil || err1 != err2 {
		t.Errorf("Force() errors = %v, %v; want the same failure twice", err1, err2)
	}
	if calls != 1 {
		t.Errorf("computation ran %d times, want 1", calls)
	}
	if !th.IsEvaluated() {
		t.Error("failed thunk should report evaluated")
	}
	if _, ok := th.Peek(); ok {
		t.Error("Peek() on a failed thunk should report nothing")
	}
}

func TestThunkSelfReference(t *testing.T) {
	var th *Thunk
	th = NewThunk(func() (Value, error) {
		return th.Force()
	})
	_, err := th.Force()
	if kind, _ := errors.KindOf(err); kind != errors.ErrInfiniteRecursion {
		t.Fatalf("Force() error = %v, want infinite recursion", err)
	}
	_, again := th.Force()
	if again != err {
		t.Error("recursion failure should be memoized")
	}
}

func TestArrayElementReferencingItself(t *testing.T) {
	var arr Array
	first := NewThunk(func() (Value, error) {
		v, _, err := arr.Get(0)
		return v, err
	})
	arr = FromLazy([]*Thunk{first, Evaluated(FromInt(2))})

	_, _, err := arr.Get(0)
	if kind, _ := errors.KindOf(err); kind != errors.ErrInfiniteRecursion {
		t.Errorf("Get(0) error = %v, want infinite recursion", err)
	}
	if v, _, err := arr.Get(1); err != nil || v.Repr() != "2" {
		t.Errorf("Get(1) = (%s, %v), want 2", v.Repr(), err)
	}
}

func TestThunkFromExpr(t *testing.T) {
	scope := NewScope(nil, nil)
	scope.Bind("y", Evaluated(FromString("bound")))
	th := ThunkFromExpr(scope, ref("y"))
	v, err := th.Force()
	if err != nil || v.String() != "bound" {
		t.Errorf("Force() = (%s, %v), want bound", v.Repr(), err)
	}
	_, err = ThunkFromExpr(scope, ref("missing")).Force()
	if err == nil {
		t.Error("unbound name should fail")
	}
}
