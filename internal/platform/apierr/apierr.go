package apierr

import (
	"fmt"
	"net/http"
)

// Error is a transport-level failure raised while decoding a request, before
// any service runs. It carries its own status and code.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Err != nil:
		return e.Err.Error()
	case e.Code != "":
		return e.Code
	default:
		return fmt.Sprintf("request error (%d)", e.Status)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func BadRequest(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

// InvalidParam reports a malformed path parameter.
func InvalidParam(name, raw string) *Error {
	return BadRequest("validation", fmt.Errorf("invalid %s %q", name, raw))
}

// InvalidBody reports a request body that could not be decoded.
func InvalidBody(err error) *Error {
	return BadRequest("validation", fmt.Errorf("invalid request body: %w", err))
}
