package listbox

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

// Sentinel errors for misuse of the list box API.
var (
	// ErrNotChild is reported when an element that is neither a row nor a
	// separator of the list box is passed to Remove or SelectChild.
	ErrNotChild = errors.New("element is not a child of this list box")

	// ErrAlreadyChild is reported when Add is given an element that is
	// already a row or a separator.
	ErrAlreadyChild = errors.New("element is already a child of this list box")

	// ErrNilElement is reported when Add is given nil.
	ErrNilElement = errors.New("element is nil")

	// ErrMultipleSelection is reported when multiple selection mode is
	// requested. Only none and single are supported.
	ErrMultipleSelection = errors.New("multiple selection is not supported")

	ErrUnknownSettingsFormat = errors.New("unknown settings format")
	ErrInvalidSettings       = errors.New("invalid settings")
)

// UsageError describes a call the list box rejected. The call itself is a
// no-op; the error is logged and handed to the list box's error observer.
type UsageError struct {
	Op  string // Operation that was rejected (e.g., "remove", "set_selection_mode")
	Err error  // Underlying sentinel
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("listbox: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("listbox: %s", e.Op)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func NewUsageError(op string, err error) *UsageError {
	return &UsageError{Op: op, Err: err}
}

// IsUsageError checks if an error is a usage error.
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// reportUsage logs a rejected call and forwards it to OnUsageError, if set.
func (lb *ListBox) reportUsage(op string, err error) {
	usageErr := NewUsageError(op, err)
	internal.GetInternalLogger().Warn("Ignoring list box call", "op", op, "error", err)
	if lb.OnUsageError != nil {
		lb.OnUsageError(usageErr)
	}
}
