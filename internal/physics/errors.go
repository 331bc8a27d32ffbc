package physics

import (
	"errors"
	"fmt"
)

// Construction errors. Numeric edge cases during stepping are absorbed by the
// epsilon guards and never reported.
var (
	// ErrInvalidBodyCount indicates a zero or negative number of bodies.
	ErrInvalidBodyCount = errors.New("physics: body count must be positive")

	// ErrInvalidMass indicates a non-positive, NaN or infinite body mass.
	ErrInvalidMass = errors.New("physics: body mass must be positive and finite")

	// ErrParameterBounds indicates a non-positive g, dt or epsilon.
	ErrParameterBounds = errors.New("physics: parameter out of valid bounds")

	// ErrUnknownLayout indicates a layout name with no registered generator.
	ErrUnknownLayout = errors.New("physics: unknown layout")
)

// BodyError wraps a construction error with the offending body.
type BodyError struct {
	Index   int
	Mass    float64
	Wrapped error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("body %d (mass=%g): %v", e.Index, e.Mass, e.Wrapped)
}

func (e *BodyError) Unwrap() error {
	return e.Wrapped
}
