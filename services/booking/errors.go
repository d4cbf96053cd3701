package booking

import (
	"errors"
	"fmt"
)

// Service error codes. Every failure in this package is local and
// recoverable; callers map codes onto their transport.
const (
	CodeNotFound     = "notFound"
	CodeInvalidInput = "invalidInput"
	CodeConflict     = "conflict"
	CodeUnauthorized = "unauthorized"
)

type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(format string, args ...any) error {
	return &ServiceError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidInputError(format string, args ...any) error {
	return &ServiceError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...any) error {
	return &ServiceError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func NewUnauthorizedError(format string, args ...any) error {
	return &ServiceError{Code: CodeUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func errCode(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

func IsNotFound(err error) bool     { return errCode(err) == CodeNotFound }
func IsInvalidInput(err error) bool { return errCode(err) == CodeInvalidInput }
func IsConflict(err error) bool     { return errCode(err) == CodeConflict }
func IsUnauthorized(err error) bool { return errCode(err) == CodeUnauthorized }
