package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrUpstream = errors.New("upstream service error")
)

// Codes for failures talking to an upstream API.
const (
	CodeTransport      = "transport"
	CodeUpstreamStatus = "upstream_status"
	CodeDecode         = "decode"
)

// Error carries a machine-readable Code next to the human message.
// HTTPStatus is set only for CodeUpstreamStatus.
type Error struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	return WrapWithCode(err, "", message)
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Status builds an upstream_status error for an unexpected HTTP status.
func Status(service string, status int) error {
	return &Error{
		Code:       CodeUpstreamStatus,
		Message:    fmt.Sprintf("%s responded with status %d", service, status),
		HTTPStatus: status,
		Err:        ErrUpstream,
	}
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of the outermost coded error, or "".
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HTTPStatus returns the upstream status carried by err, or 0.
func HTTPStatus(err error) int {
	var e *Error
	for errors.As(err, &e) {
		if e.HTTPStatus != 0 {
			return e.HTTPStatus
		}
		err = e.Err
	}
	return 0
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
