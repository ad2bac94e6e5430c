// Package errors defines the error type shared by the evaluator packages.
package errors

import (
	goerrors "errors"
	"fmt"
)

// ErrorKind describes the type of error.
type ErrorKind int

const (
	ErrRuntime ErrorKind = iota
	ErrInfiniteRecursion
	ErrTypeMismatch
	ErrMissingArgument
	ErrTooManyArguments
	ErrUnknownArgument
	ErrUnknownBuiltin
	ErrInvalidOperation
	ErrOutOfFuel
	ErrBadConfig
)

func (k ErrorKind) String() string {
	switch k {
	case ErrRuntime:
		return "runtime error"
	case ErrInfiniteRecursion:
		return "infinite recursion"
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrMissingArgument:
		return "missing argument"
	case ErrTooManyArguments:
		return "too many arguments"
	case ErrUnknownArgument:
		return "unknown argument"
	case ErrUnknownBuiltin:
		return "unknown builtin"
	case ErrInvalidOperation:
		return "invalid operation"
	case ErrOutOfFuel:
		return "out of fuel"
	case ErrBadConfig:
		return "bad config"
	default:
		return "error"
	}
}

// Error represents an error raised while evaluating values.
type Error struct {
	Kind    ErrorKind
	Message string
	Name    string   // builtin or binding the error surfaced in
	Frames  []string // builtin call path, innermost first
	cause   error
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (in %s)", e.Kind, e.Message, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same kind. This lets callers
// write errors.Is(err, errors.NewError(ErrOutOfFuel, "")).
func (e *Error) Is(target error) bool {
	var other *Error
	if !goerrors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// Format implements fmt.Formatter. The %+v verb includes the call frames
// and the full cause chain.
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			formatErrorWithDebug(f, e, true)
			return
		}
		_, _ = fmt.Fprint(f, e.Error())
	case 's':
		_, _ = fmt.Fprint(f, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	}
}

// NewError creates a new error.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Errorf creates a new error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithName adds the name of the builtin or binding to an error.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}

// WithCause records the error that caused this one.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// Clone returns a copy of e that can be named or given frames without
// changing e. Cached failures are shared, so they must not be modified.
func (e *Error) Clone() *Error {
	c := *e
	c.Frames = append([]string(nil), e.Frames...)
	return &c
}

// PushFrame returns a copy of err that records that it passed through the
// named builtin. Errors that are not an *Error are returned unchanged.
func PushFrame(err error, name string) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	c := e.Clone()
	c.Frames = append(c.Frames, name)
	return c
}

// KindOf returns the kind of err and whether err is an *Error at all.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if goerrors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
