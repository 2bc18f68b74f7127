package pkg

import (
	"errors"
	"fmt"
)

// Transport-agnostic failure classes shared by adapters and use cases.
//
// Error taxonomy:
//   - validation failures are per-usecase sentinels (ErrInvalid*) mapped to 400
//   - ErrStoreUnavailable covers transient I/O against the tabular store (503, retryable)
//   - ErrBadRange is a configuration failure and must abort startup
var (
	ErrStoreUnavailable = errors.New("tabular store unavailable")
	ErrBadRange         = errors.New("malformed sheet range")
)

// AppError carries an application error code plus the HTTP status it maps to.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the JSON error body: {"error": "...", "code": "..."}.
type HTTPError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message, Code: e.Code}
}
