package value

// Callable is an interface for function values.
//
// Callables are invoked with positional arguments only; binding of named
// arguments happens before a Callable is reached. Implementations may be
// backed by host code and are not assumed to be pure: the array layer
// only propagates their result or failure.
//
// Example implementation:
//
//	type double struct{}
//
//	func (double) Call(args []Value) (Value, error) {
//	    n, _ := args[0].AsInt()
//	    return FromInt(n * 2), nil
//	}
type Callable interface {
	// Call invokes the callable with positional arguments.
	Call(args []Value) (Value, error)
}

// CallableFunc adapts an ordinary function to the Callable interface.
type CallableFunc func(args []Value) (Value, error)

// Call implements Callable.
func (f CallableFunc) Call(args []Value) (Value, error) {
	return f(args)
}

// Context is the evaluation environment captured by an array literal.
//
// It is implemented by the expression evaluator; the array layer only
// stores it and hands it back to Expr.Evaluate.
type Context interface {
	// Lookup returns the binding for name in the current scope.
	Lookup(name string) (*Thunk, bool)
}

// Expr is an unevaluated element expression of an array literal.
type Expr interface {
	// Evaluate computes the expression's value in ctx.
	Evaluate(ctx Context) (Value, error)
}

// ExprFunc adapts an ordinary function to the Expr interface.
type ExprFunc func(ctx Context) (Value, error)

// Evaluate implements Expr.
func (f ExprFunc) Evaluate(ctx Context) (Value, error) {
	return f(ctx)
}

// Scope is a simple Context made of named thunks with an optional parent.
type Scope struct {
	parent   Context
	bindings map[string]*Thunk
}

// NewScope creates a scope with the given bindings on top of parent, which
// may be nil.
func NewScope(parent Context, bindings map[string]*Thunk) *Scope {
	if bindings == nil {
		bindings = make(map[string]*Thunk)
	}
	return &Scope{parent: parent, bindings: bindings}
}

// Lookup implements Context.
func (s *Scope) Lookup(name string) (*Thunk, bool) {
	if th, ok := s.bindings[name]; ok {
		return th, true
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	return nil, false
}

// Bind adds a binding to the scope. Scopes are expected to be fully bound
// before any array captures them.
func (s *Scope) Bind(name string, th *Thunk) {
	s.bindings[name] = th
}
