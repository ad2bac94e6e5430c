package lazyconf

import (
	"sort"

	"github.com/lazyconf/lazyconf-go/internal/errors"
	"github.com/lazyconf/lazyconf-go/value"
)

// BuiltinParam describes one parameter of a builtin.
type BuiltinParam struct {
	// Name is used to bind named arguments.
	Name string
	// HasDefault marks the parameter optional. Optional parameters that
	// are not supplied are passed to the builtin as null.
	HasDefault bool
}

// Builtin is a function implemented by host code.
//
// Arguments are bound against Params before Call is invoked, so Call
// always receives exactly len(Params()) values in parameter order.
type Builtin interface {
	// Name is used in error messages and call traces.
	Name() string
	// Params lists the parameters in positional order.
	Params() []BuiltinParam
	// Call invokes the builtin with bound arguments.
	Call(s *State, args []value.Value) (value.Value, error)
}

// BuiltinFunc is the signature of builtins registered with AddFunction.
type BuiltinFunc func(s *State, args []value.Value) (value.Value, error)

type builtinFunc struct {
	name   string
	params []BuiltinParam
	fn     BuiltinFunc
}

func (b *builtinFunc) Name() string           { return b.name }
func (b *builtinFunc) Params() []BuiltinParam { return b.params }

func (b *builtinFunc) Call(s *State, args []value.Value) (value.Value, error) {
	return b.fn(s, args)
}

// required returns parameters without defaults.
func required(names ...string) []BuiltinParam {
	params := make([]BuiltinParam, len(names))
	for i, name := range names {
		params[i] = BuiltinParam{Name: name}
	}
	return params
}

// NativeCallback is a Builtin for host bindings that take only required
// parameters and do not need the evaluation state.
//
// Example:
//
//	cb := lazyconf.NewNativeCallback([]string{"a", "b"}, func(args []value.Value) (value.Value, error) {
//	    return value.Add(args[0], args[1], value.DefaultExtendThreshold)
//	})
//	env.AddBuiltin("add", cb)
type NativeCallback struct {
	name    string
	params  []BuiltinParam
	handler func(args []value.Value) (value.Value, error)
}

// NewNativeCallback creates a callback with the given required parameters.
func NewNativeCallback(params []string, handler func(args []value.Value) (value.Value, error)) *NativeCallback {
	return &NativeCallback{params: required(params...), handler: handler}
}

// Name returns the name the callback was registered under, or "<native>".
func (n *NativeCallback) Name() string {
	if n.name == "" {
		return "<native>"
	}
	return n.name
}

// Params implements Builtin.
func (n *NativeCallback) Params() []BuiltinParam {
	return n.params
}

// Call implements Builtin.
func (n *NativeCallback) Call(_ *State, args []value.Value) (value.Value, error) {
	return n.handler(args)
}

// bindArgs matches positional and named arguments against params.
//
// Positional arguments bind first, in order. Named arguments then bind by
// parameter name. Binding the same parameter twice or naming an unknown
// parameter fails, as does leaving a required parameter unbound.
func bindArgs(name string, params []BuiltinParam, args []value.Value, kwargs map[string]value.Value) ([]value.Value, error) {
	if len(args) > len(params) {
		return nil, errors.Errorf(errors.ErrTooManyArguments,
			"expected at most %d arguments, got %d", len(params), len(args)).WithName(name)
	}

	bound := make([]value.Value, len(params))
	filled := make([]bool, len(params))
	for i, arg := range args {
		bound[i] = arg
		filled[i] = true
	}

	keys := make([]string, 0, len(kwargs))
	for k := range kwargs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		idx := -1
		for i, p := range params {
			if p.Name == key {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, errors.Errorf(errors.ErrUnknownArgument,
				"unknown argument %q", key).WithName(name)
		}
		if filled[idx] {
			return nil, errors.Errorf(errors.ErrUnknownArgument,
				"argument %q is bound twice", key).WithName(name)
		}
		bound[idx] = kwargs[key]
		filled[idx] = true
	}

	for i, p := range params {
		if !filled[i] && !p.HasDefault {
			return nil, errors.Errorf(errors.ErrMissingArgument,
				"missing argument %q", p.Name).WithName(name)
		}
	}
	return bound, nil
}
