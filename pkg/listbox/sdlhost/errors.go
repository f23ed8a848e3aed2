package sdlhost

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled is returned by Run when the user backs out (Escape or B).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("cancelled by user")

	// ErrNotInitialized is returned by Run when Init was not called.
	ErrNotInitialized = errors.New("sdl host not initialized")
)

// InfrastructureError represents a failure of the SDL host itself
// (window creation, font loading, device access). These errors are
// typically fatal.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sdlhost: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sdlhost: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
