package quantum

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors for simulation parameters and displays.
var (
	// ErrInvalidSize indicates a non-positive grid size.
	ErrInvalidSize = errors.New("quantum: grid size must be positive")

	// ErrNegativeSteps indicates a negative iteration count.
	ErrNegativeSteps = errors.New("quantum: steps must not be negative")

	// ErrNegativeParticles indicates a negative particle count.
	ErrNegativeParticles = errors.New("quantum: particles must not be negative")

	// ErrParameterBounds indicates a tunable outside its valid range.
	ErrParameterBounds = errors.New("quantum: parameter out of valid bounds")

	// ErrUnknownSimulation indicates a selector value with no registered simulation.
	ErrUnknownSimulation = errors.New("quantum: unknown simulation")

	// ErrDisplayClosed indicates use of a display after Close.
	ErrDisplayClosed = errors.New("quantum: display closed")
)

// ParamError reports a rejected numeric parameter.
type ParamError struct {
	Name    string
	Value   int
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s=%d: %v", e.Name, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckSize validates a grid size.
func CheckSize(size int) error {
	if size <= 0 {
		return &ParamError{Name: "size", Value: size, Wrapped: ErrInvalidSize}
	}
	return nil
}

// CheckSteps validates an iteration count.
func CheckSteps(steps int) error {
	if steps < 0 {
		return &ParamError{Name: "steps", Value: steps, Wrapped: ErrNegativeSteps}
	}
	return nil
}

// CheckParticles validates a particle count.
func CheckParticles(particles int) error {
	if particles < 0 {
		return &ParamError{Name: "particles", Value: particles, Wrapped: ErrNegativeParticles}
	}
	return nil
}
