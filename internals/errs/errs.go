// file: internals/errs/errs.go
package errs

import "errors"

// Sentinels for the error taxonomy. The Fiber error handler in main.go is
// the only place that maps these to HTTP status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError carries a user-facing aggregated message plus optional
// per-field details.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

// NewValidation builds a ValidationError with a plain message.
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewValidationFields builds a ValidationError with per-field details.
func NewValidationFields(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

type wrapped struct {
	msg  string
	base error
}

func (e *wrapped) Error() string { return e.msg }
func (e *wrapped) Unwrap() error { return e.base }

// NotFound returns an ErrNotFound with a user-facing message,
// e.g. NotFound("Event") -> "Event not found."
func NotFound(entity string) error {
	return &wrapped{msg: entity + " not found.", base: ErrNotFound}
}

// Unauthorized returns an ErrUnauthorized with a user-facing message.
func Unauthorized(message string) error {
	return &wrapped{msg: message, base: ErrUnauthorized}
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized reports whether err is (or wraps) ErrUnauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
