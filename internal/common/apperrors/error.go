// Package apperrors provides chainable application errors. An error created
// here can serve as the root of a family: derived errors keep an errors.Is
// relationship with their ancestors while carrying their own message and an
// optional HTTP status code.
package apperrors

// Error is the interface implemented by all application errors. It extends
// the standard error interface with derivation and status code management.
// Methods that produce errors return Error so calls can be chained.
type Error interface {
	error
	Unwrap() error // supports errors.Is / errors.As

	New(msg string) Error                  // derives a fresh error with the receiver as ancestor
	Msg(msg string) Error                  // derives an error with a new message, wrapping the receiver
	MsgErr(msg string, err ...error) Error // derives an error with a message and extra wrapped errors
	Err(err ...error) Error                // attaches additional errors, keeping the receiver's message
	SetStatusCode(int) Error               // sets the HTTP status code
	StatusCode() int                       // returns the HTTP status code
	UnwrapAll() []error                    // returns every wrapped error
}
