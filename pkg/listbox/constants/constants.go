// Package constants defines shared constants, types, and default values
// used throughout the listbox packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	LogLevelEnvVar       = "LISTBOX_LOG_LEVEL"
	BackgroundPathEnvVar = "BACKGROUND_PATH"
	WindowWidthEnvVar    = "WINDOW_WIDTH"
	WindowHeightEnvVar   = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Layout and interaction defaults.
const (
	DefaultFocusLineWidth int32 = 1 // Width of the focus indicator line
	DefaultFocusPadding   int32 = 1 // Gap between the focus indicator and the row content

	DefaultAutoScrollMargin   = 30.0                   // Distance from a viewport edge that starts drag auto-scroll
	DefaultAutoScrollInterval = 150 * time.Millisecond // Period between drag auto-scroll nudges

	// DefaultPageSize is used for page movement when no scroll adjustment
	// is attached.
	DefaultPageSize int32 = 100

	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between input events
	DoubleClickWindow = 400 * time.Millisecond

	HeaderSweepThreshold = 64 // Remembered headers before destroyed ones are forgotten
)

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	default:
		return "Unknown"
	}
}
