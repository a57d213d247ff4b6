// Package safe provides checked numeric conversions for values decoded from untrusted payloads.
package safe

import (
	"errors"
	"fmt"
)

var (
	// ErrNegative is returned when a value that must be >= 0 is negative.
	ErrNegative = errors.New("value is negative")
	// ErrNotPositive is returned when a value that must be > 0 is zero or negative.
	ErrNotPositive = errors.New("value is not positive")
)

// Number lists the numeric kinds accepted by the range checks.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// NonNegative reports ErrNegative for v < 0. NaN passes: it compares false against zero.
func NonNegative[T Number](v T) error {
	if v < 0 {
		return fmt.Errorf("%w: %v", ErrNegative, v)
	}
	return nil
}

// Positive reports ErrNotPositive for v <= 0.
func Positive[T Number](v T) error {
	if v <= 0 {
		return fmt.Errorf("%w: %v", ErrNotPositive, v)
	}
	return nil
}
