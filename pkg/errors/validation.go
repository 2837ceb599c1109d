package errors

import "errors"

// ValidationError reports an option or config value that cannot be used.
// Field names match the option or YAML key that was rejected.
type ValidationError struct {
	Value any    `json:"value"`
	Field string `json:"field"`
	Err   error  `json:"error"`
}

func NewValidationError(field string, value any, err error) *ValidationError {
	return &ValidationError{Err: err, Field: field, Value: value}
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Field + ": " + e.Err.Error()
	}
	return "invalid " + e.Field
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Category is always ErrorConfig.
func (e *ValidationError) Category() ErrorCategory {
	return ErrorConfig
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError returns the ValidationError wrapped in err, or nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
