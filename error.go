package phlyty

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Error describes a handler failure that should be rendered with a specific http status code.
type Error struct {
	status int
	err    error
}

// NewError inits a new error given the status code.
func NewError(status int, underlying error) *Error {
	return &Error{status, underlying}
}

func (e *Error) Status() int   { return e.status }
func (e *Error) Unwrap() error { return e.err }
func (e *Error) Error() string {
	status := http.StatusText(e.status)
	if status == "" {
		status = "Unknown"
	}

	return fmt.Sprintf("%s: %s", status, e.err.Error())
}

// StatusOf returns the status code of err if it is or wraps an [*Error] and 0 otherwise.
func StatusOf(err error) int {
	if herr, ok := asError(err); ok {
		return herr.Status()
	}
	return 0
}

func asError(err error) (*Error, bool) {
	var herr *Error
	ok := errors.As(err, &herr)
	return herr, ok
}
