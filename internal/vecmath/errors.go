package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates a mathematically undefined operation.
	ErrDomain = errors.New("vecmath: undefined operation (zero divisor or zero-length vector)")

	// ErrValidation indicates malformed input such as a coordinate slice
	// that does not have exactly three elements.
	ErrValidation = errors.New("vecmath: invalid input")
)

// DimensionError reports a coordinate slice of the wrong length.
type DimensionError struct {
	Got int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: location must have %d components, got %d", ErrValidation, Dim, e.Got)
}

func (e *DimensionError) Unwrap() error {
	return ErrValidation
}
