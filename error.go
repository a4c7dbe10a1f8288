package archwiki

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	EIO        = "io"
	EMALFORMED = "malformed"
	ENETWORK   = "network"
	ENOTFOUND  = "not_found"
	ESERIALIZE = "serialize"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
type Error struct {
	Code    string
	Message string

	err error
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("archwiki error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the error wrapped with %w in Errorf, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Errorf is a helper function to return an Error with a given code and
// formatted message. A %w verb in format is honoured for unwrapping.
func Errorf(code string, format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{
		Code:    code,
		Message: err.Error(),
		err:     errors.Unwrap(err),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var re *ResponseError
	if errors.As(err, &re) {
		return EMALFORMED
	}
	var nf *NoPageFoundError
	if errors.As(err, &nf) {
		return ENOTFOUND
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Error()
	}
	var nf *NoPageFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return "Internal error."
}

// ResponseErrorKind names the shape expectation an API payload violated.
type ResponseErrorKind int

// Shape violations reported for open search payloads.
const (
	MissingNthElement ResponseErrorKind = iota + 1
	NthElementNotArray
	ArraysLengthMismatch
)

// ResponseError reports a malformed API response. Index is the position of
// the offending element for MissingNthElement and NthElementNotArray.
type ResponseError struct {
	Kind  ResponseErrorKind
	Index int
}

func (e *ResponseError) Error() string {
	switch e.Kind {
	case MissingNthElement:
		return fmt.Sprintf("malformed open search response: missing element %d", e.Index)
	case NthElementNotArray:
		return fmt.Sprintf("malformed open search response: element %d should be an array", e.Index)
	case ArraysLengthMismatch:
		return "malformed open search response: title and url arrays differ in length"
	default:
		return "malformed api response"
	}
}

// NoPageFoundError is returned when a page has no content container.
// Suggestions holds the closest known titles, best match first.
type NoPageFoundError struct {
	Page        string
	Suggestions []string
}

func (e *NoPageFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("page %q not found", e.Page)
	}
	return fmt.Sprintf("page %q not found, did you mean:\n%s", e.Page, strings.Join(e.Suggestions, "\n"))
}
