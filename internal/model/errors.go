package model

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeAmount        = errors.New("amount cannot be negative")
	ErrNegativeConfirmations = errors.New("confirmations cannot be negative")
	ErrNegativeBalance       = errors.New("balance cannot be negative")
	ErrNegativeUnspentCount  = errors.New("unspent count cannot be negative")
	ErrNegativeHeight        = errors.New("height cannot be negative")
	ErrNonPositiveSize       = errors.New("size must be positive")
)

// ValidationError reports a payload that violates a model constraint.
type ValidationError struct {
	Entity string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Entity, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// check wraps a failed range check with the constraint it violated.
func check(entity string, constraint, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Entity: entity, Err: fmt.Errorf("%w: %w", constraint, err)}
}
