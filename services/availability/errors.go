package availability

import (
	"errors"
	"fmt"
)

// Error codes surfaced to callers. All of them are recoverable: the engine
// never retries internally and never masks storage failures behind them.
const (
	CodeNotFound        = "notFound"
	CodeSlotUnavailable = "slotUnavailable"
	CodeInvalidState    = "invalidState"
	CodeHoldExpired     = "holdExpired"
	CodeInvalidInterval = "invalidInterval"
)

// AvailabilityError is a typed, caller-visible failure.
type AvailabilityError struct {
	Code    string
	Message string
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) error {
	return &AvailabilityError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsCode reports whether err carries the given availability error code.
func IsCode(err error, code string) bool {
	var ae *AvailabilityError
	return errors.As(err, &ae) && ae.Code == code
}

// ErrorCode extracts the availability error code, or "" for infrastructure
// failures that propagate unchanged.
func ErrorCode(err error) string {
	var ae *AvailabilityError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
