package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError marks a failure caused by the request's own input: a
// missing column, an unparseable date, an unsupported period and so on.
// It is terminal for the request and never retried. Everything else that
// escapes the pipeline is treated as an internal defect.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// NewValidationError creates a validation failure with a user-facing message.
func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

// Validationf creates a formatted validation failure.
func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a validation failure.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
