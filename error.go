package lazyconf

import (
	"github.com/lazyconf/lazyconf-go/internal/errors"
)

// Error represents an error raised while evaluating values or calling
// builtins.
type Error = errors.Error

// ErrorKind describes the type of error that occurred.
type ErrorKind = errors.ErrorKind

const (
	ErrRuntime           = errors.ErrRuntime
	ErrInfiniteRecursion = errors.ErrInfiniteRecursion
	ErrTypeMismatch      = errors.ErrTypeMismatch
	ErrMissingArgument   = errors.ErrMissingArgument
	ErrTooManyArguments  = errors.ErrTooManyArguments
	ErrUnknownArgument   = errors.ErrUnknownArgument
	ErrUnknownBuiltin    = errors.ErrUnknownBuiltin
	ErrInvalidOperation  = errors.ErrInvalidOperation
	ErrOutOfFuel         = errors.ErrOutOfFuel
	ErrBadConfig         = errors.ErrBadConfig
)

// NewError creates a new error with the given kind and message.
func NewError(kind ErrorKind, msg string) *Error {
	return errors.NewError(kind, msg)
}

// KindOf returns the kind of err and whether err is an *Error at all.
func KindOf(err error) (ErrorKind, bool) {
	return errors.KindOf(err)
}
