package electro

import (
	"fmt"

	"github.com/san-kum/coulomb/internal/vecmath"
)

var (
	// ErrDomain indicates an undefined evaluation, e.g. at a charge's own
	// location.
	ErrDomain = vecmath.ErrDomain

	// ErrValidation indicates a malformed charge definition.
	ErrValidation = vecmath.ErrValidation
)

// Error wraps a kernel failure with the operation and the charge involved.
type Error struct {
	Op      string
	Charge  Charge
	At      vecmath.Vector
	Wrapped error
}

func (e *Error) Error() string {
	return fmt.Sprintf("electro: %s of %v at %v: %v", e.Op, e.Charge, e.At, e.Wrapped)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}
