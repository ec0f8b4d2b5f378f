package common

import "errors"

type Code string

const (
	CodeConnection  Code = "connection"
	CodeSchema      Code = "schema"
	CodeValidation  Code = "validation"
	CodeNotFound    Code = "not_found"
	CodeInternal    Code = "internal"
	CodeUnavailable Code = "unavailable"
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

func NewError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the code from an error chain, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
