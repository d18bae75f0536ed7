package forms

import (
	"errors"

	"chipselect/internal/domain"
)

// ErrRequired is reported by Required for an empty value
var ErrRequired = errors.New("a value is required")

// Validator inspects a value and returns an error when it is invalid
type Validator func(values []domain.Value) error

// Required fails when no value is present
func Required(values []domain.Value) error {
	if len(values) == 0 {
		return ErrRequired
	}
	return nil
}

// MaxItems fails when more than n values are present
func MaxItems(n int) Validator {
	return func(values []domain.Value) error {
		if len(values) > n {
			return &LimitError{Limit: n, Got: len(values)}
		}
		return nil
	}
}

// LimitError is reported by MaxItems
type LimitError struct {
	Limit int
	Got   int
}

func (e *LimitError) Error() string {
	return "too many values selected"
}
