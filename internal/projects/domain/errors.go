package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("project not found")
	ErrNotConfigured = errors.New("project store is not configured")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ValidationField returns the offending field of a validation error, or "".
func ValidationField(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Field
	}
	return ""
}
