package utils

import (
	"errors"
	"net/http"
)

// ErrorCode classifies service failures so the HTTP layer can map them to
// status codes without inspecting messages.
type ErrorCode string

const (
	CodeNotFound      ErrorCode = "notFound"
	CodeForbidden     ErrorCode = "forbidden"
	CodeInvalidStatus ErrorCode = "invalidStatus"
	CodeTimeConflict  ErrorCode = "timeConflict"
	CodeInternal      ErrorCode = "internal"
)

// AppError is the error type all scheduling services return to callers.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFoundError covers both true absence and non-ownership of host-scoped
// records, so callers cannot probe for the existence of other users' data.
func NotFoundError(message string) error {
	return &AppError{Code: CodeNotFound, Message: message}
}

func ForbiddenError(message string) error {
	return &AppError{Code: CodeForbidden, Message: message}
}

func InvalidStatusError(message string) error {
	return &AppError{Code: CodeInvalidStatus, Message: message}
}

func TimeConflictError() error {
	return &AppError{Code: CodeTimeConflict, Message: "Time conflict detected"}
}

func InternalError(err error) error {
	return &AppError{Code: CodeInternal, Message: "Server error", Err: err}
}

// CodeOf extracts the error code, defaulting to CodeInternal for untyped errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// HTTPStatus maps an error to its response status code. The mapping is part
// of the public API contract and must not change.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeInvalidStatus, CodeTimeConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
