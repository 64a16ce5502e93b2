package apperrors

import (
	"errors"
)

// appError is the concrete implementation behind the Error interface.
type appError struct {
	msg        string  // error message
	base       error   // ancestor for errors.Is/As
	wrapped    []error // additionally wrapped errors
	statuscode int     // HTTP status code
}

// Error returns the error message.
func (e *appError) Error() string {
	return e.msg
}

// Unwrap returns the ancestor error for compatibility with errors.Is / errors.As.
func (e *appError) Unwrap() error {
	return e.base
}

// UnwrapAll returns every wrapped error in the order added.
func (e *appError) UnwrapAll() []error {
	return e.wrapped
}

// New derives a fresh error with the receiver as ancestor. The derived error
// inherits the status code but carries no wrapped errors.
func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		base:       e,
		statuscode: e.statuscode,
	}
}

// Msg derives an error with a new message that wraps the receiver.
func (e *appError) Msg(msg string) Error {
	return &appError{
		msg:        msg,
		base:       e,
		wrapped:    append([]error{e}, e.wrapped...),
		statuscode: e.statuscode,
	}
}

// MsgErr derives an error with a new message and wraps the given errors in
// addition to the receiver.
func (e *appError) MsgErr(msg string, errs ...error) Error {
	return &appError{
		msg:        msg,
		base:       e,
		wrapped:    append([]error{e}, errs...),
		statuscode: e.statuscode,
	}
}

// Err attaches additional errors to the receiver, keeping its message.
func (e *appError) Err(errs ...error) Error {
	return &appError{
		msg:        e.msg,
		base:       e,
		wrapped:    append([]error{e}, errs...),
		statuscode: e.statuscode,
	}
}

// SetStatusCode returns a shallow copy with the given status code.
// The receiver is left unchanged.
func (e *appError) SetStatusCode(code int) Error {
	cp := *e
	cp.statuscode = code
	return &cp
}

// StatusCode returns the HTTP status code.
func (e *appError) StatusCode() int {
	return e.statuscode
}

// Is reports whether target matches the receiver's ancestor chain or any
// wrapped error.
func (e *appError) Is(target error) bool {
	if target == nil {
		return false
	}
	if errors.Is(e.base, target) {
		return true
	}
	for _, err := range e.wrapped {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// New creates a root-level error with the given message.
func New(msg string) Error {
	return &appError{
		msg: msg,
	}
}
