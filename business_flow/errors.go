// Package businessflow contains the use cases of the niche configurator
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Configuration errors
	ErrUnknownCategory   = errors.New("unknown category")
	ErrDimensionRequired = errors.New("dimension is required")
	ErrOptionRequired    = errors.New("option is required")
	ErrTooManySelections = errors.New("too many selections")

	// Event replay errors
	ErrUnknownEventType = errors.New("unknown event type")

	// Export errors
	ErrExportFailed      = errors.New("export failed")
	ErrExportUnavailable = errors.New("exporter not configured")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsUnknownCategory(err error) bool {
	return errors.Is(err, ErrUnknownCategory)
}

func IsDimensionRequired(err error) bool {
	return errors.Is(err, ErrDimensionRequired)
}

func IsOptionRequired(err error) bool {
	return errors.Is(err, ErrOptionRequired)
}

func IsTooManySelections(err error) bool {
	return errors.Is(err, ErrTooManySelections)
}

func IsUnknownEventType(err error) bool {
	return errors.Is(err, ErrUnknownEventType)
}

func IsExportFailed(err error) bool {
	return errors.Is(err, ErrExportFailed)
}

func IsExportUnavailable(err error) bool {
	return errors.Is(err, ErrExportUnavailable)
}

// ErrorCode extracts the code of the outermost BusinessError, if any
func ErrorCode(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
