package opentdb

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount is returned when a request is built with an amount of
// zero or less.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// ErrTypeMismatch is returned when a question is narrowed to the wrong
// variant view.
var ErrTypeMismatch = errors.New("question type mismatch")

// ErrNoToken is returned when resetting a token that was never fetched, or
// when session tokens are disabled.
var ErrNoToken = errors.New("no session token available")

// ErrorResponse wraps a non-success response code returned by the API.
// Its Code is guaranteed to report IsError() == true.
type ErrorResponse struct {
	Code    ResponseCode
	Message string

	// Err is the underlying transport failure, when the response code is
	// ResponseUnknown because the request never produced an API reply.
	Err error
}

// newErrorResponse builds an ErrorResponse with the stock message for code.
// Constructing one with a non-error code is a programming error and panics.
func newErrorResponse(code ResponseCode) *ErrorResponse {
	return newErrorResponseMessage(code, code.String())
}

func newErrorResponseMessage(code ResponseCode, message string) *ErrorResponse {
	if !code.IsError() && code != ResponseUnknown {
		panic(fmt.Sprintf("opentdb: ErrorResponse constructed with non-error response code %v", code))
	}
	return &ErrorResponse{Code: code, Message: message}
}

func (e *ErrorResponse) Error() string { return e.Message }

func (e *ErrorResponse) Unwrap() error { return e.Err }

// UnexpectedStateError signals a broken protocol invariant: the token
// endpoint, which the API is contracted to always succeed on, returned a
// non-success code. It is fatal; callers should not retry.
type UnexpectedStateError struct {
	Code ResponseCode
}

func (e *UnexpectedStateError) Error() string {
	return fmt.Sprintf("token endpoint refused to issue a token (%v)", e.Code)
}
