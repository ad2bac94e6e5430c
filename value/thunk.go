package value

import (
	"github.com/lazyconf/lazyconf-go/internal/errors"
)

type thunkState uint8

const (
	thunkPending thunkState = iota
	thunkForcing
	thunkDone
)

// Thunk is a lazily computed, memoizing cell holding one value.
//
// The computation runs at most once. Its result, a value or an error, is
// cached and returned by every later call to Force. Forcing a thunk from
// inside its own computation reports ErrInfiniteRecursion instead of
// recursing.
//
// Thunks belong to a single evaluation and are not safe for concurrent use.
type Thunk struct {
	state thunkState
	fn    func() (Value, error)
	val   Value
	err   error
}

// NewThunk creates a thunk that computes its value with fn on first Force.
func NewThunk(fn func() (Value, error)) *Thunk {
	return &Thunk{fn: fn}
}

// Evaluated creates a thunk holding an already known value.
func Evaluated(v Value) *Thunk {
	return &Thunk{state: thunkDone, val: v}
}

// ThunkFromExpr creates a thunk evaluating expr in ctx.
func ThunkFromExpr(ctx Context, expr Expr) *Thunk {
	return NewThunk(func() (Value, error) {
		return expr.Evaluate(ctx)
	})
}

// Force evaluates the thunk if needed and returns its result.
func (t *Thunk) Force() (Value, error) {
	switch t.state {
	case thunkDone:
		return t.val, t.err
	case thunkForcing:
		return Null(), errors.NewError(errors.ErrInfiniteRecursion,
			"value depends on itself")
	}

	t.state = thunkForcing
	fn := t.fn
	v, err := fn()
	t.fn = nil
	t.val, t.err = v, err
	t.state = thunkDone
	return v, err
}

// Peek returns the value if the thunk has already been evaluated
// successfully. It never triggers evaluation.
func (t *Thunk) Peek() (Value, bool) {
	if t == nil || t.state != thunkDone || t.err != nil {
		return Null(), false
	}
	return t.val, true
}

// IsEvaluated reports whether Force has completed, successfully or not.
func (t *Thunk) IsEvaluated() bool {
	return t.state == thunkDone
}
