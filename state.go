package lazyconf

import (
	"log/slog"
	"slices"

	"github.com/lazyconf/lazyconf-go/internal/errors"
	"github.com/lazyconf/lazyconf-go/value"
)

// maxCallDepth bounds nested builtin calls.
const maxCallDepth = 500

// State is the state of one evaluation: its fuel budget and the stack of
// builtins currently running.
//
// Builtins receive the State they were called with and use it to call
// function values and other builtins. Arrays produced during an
// evaluation may hold thunks that refer back to the State, so a State
// lives as long as the values it produced.
type State struct {
	env   *Environment
	fuel  *fuelTracker
	stack []string
}

func newState(env *Environment) *State {
	s := &State{env: env}
	if env.fuel != nil {
		s.fuel = newFuelTracker(*env.fuel)
	}
	return s
}

// Env returns the environment the state belongs to.
func (s *State) Env() *Environment {
	return s.env
}

// ExtendThreshold returns the concatenation threshold configured on the
// environment.
func (s *State) ExtendThreshold() int {
	return s.env.config.ExtendThreshold
}

// FuelLevels returns the consumed and remaining fuel. ok is false when
// fuel tracking is disabled.
func (s *State) FuelLevels() (consumed, remaining uint64, ok bool) {
	if s.fuel == nil {
		return 0, 0, false
	}
	return s.fuel.consumedFuel(), s.fuel.remainingFuel(), true
}

// Stack returns the names of the builtins currently running, outermost
// first.
func (s *State) Stack() []string {
	return slices.Clone(s.stack)
}

// Call looks up a builtin by name, binds the arguments and invokes it.
func (s *State) Call(name string, args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
	b, ok := s.env.getBuiltin(name)
	if !ok {
		return value.Null(), errors.Errorf(errors.ErrUnknownBuiltin, "unknown builtin %q", name)
	}
	return s.callBuiltin(name, b, args, kwargs)
}

func (s *State) callBuiltin(name string, b Builtin, args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
	if err := s.fuel.consume(1); err != nil {
		return value.Null(), err
	}
	if len(s.stack) >= maxCallDepth {
		return value.Null(), errors.Errorf(errors.ErrInfiniteRecursion,
			"builtin calls nested deeper than %d", maxCallDepth).WithName(name)
	}

	bound, err := bindArgs(name, b.Params(), args, kwargs)
	if err != nil {
		return value.Null(), err
	}

	s.stack = append(s.stack, name)
	rv, err := b.Call(s, bound)
	s.stack = s.stack[:len(s.stack)-1]
	if err != nil {
		s.env.logger.Debug("builtin failed",
			slog.String("builtin", name),
			slog.Int("depth", len(s.stack)),
			slog.Any("error", err))
		return value.Null(), s.attachErrorInfo(err, name)
	}
	return rv, nil
}

// Invoke calls a function value with positional arguments. Each
// invocation consumes one unit of fuel.
func (s *State) Invoke(fn value.Value, args ...value.Value) (value.Value, error) {
	c, ok := fn.AsCallable()
	if !ok {
		return value.Null(), errors.Errorf(errors.ErrTypeMismatch,
			"expected function, got %s", fn.TypeName())
	}
	if err := s.fuel.consume(1); err != nil {
		return value.Null(), err
	}
	return c.Call(args)
}

// Callable returns fn as a value.Callable whose invocations are metered
// like Invoke. It fails if fn is not a function.
func (s *State) Callable(fn value.Value) (value.Callable, error) {
	c, ok := fn.AsCallable()
	if !ok {
		return nil, errors.Errorf(errors.ErrTypeMismatch,
			"expected function, got %s", fn.TypeName())
	}
	return &meteredCallable{state: s, inner: c}, nil
}

// Builtin returns the named builtin as a function value taking positional
// arguments.
func (s *State) Builtin(name string) (value.Value, error) {
	b, ok := s.env.getBuiltin(name)
	if !ok {
		return value.Null(), errors.Errorf(errors.ErrUnknownBuiltin, "unknown builtin %q", name)
	}
	return value.FromCallable(&builtinCallable{state: s, name: name, builtin: b}), nil
}

type meteredCallable struct {
	state *State
	inner value.Callable
}

func (m *meteredCallable) Call(args []value.Value) (value.Value, error) {
	if err := m.state.fuel.consume(1); err != nil {
		return value.Null(), err
	}
	return m.inner.Call(args)
}

type builtinCallable struct {
	state   *State
	name    string
	builtin Builtin
}

func (b *builtinCallable) Call(args []value.Value) (value.Value, error) {
	return b.state.callBuiltin(b.name, b.builtin, args, nil)
}
