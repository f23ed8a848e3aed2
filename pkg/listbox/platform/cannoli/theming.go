// Package cannoli provides a list box theme matching the Cannoli custom
// firmware. Cannoli is a community-developed CFW for retro handheld gaming
// devices.
package cannoli

import (
	"github.com/BrandonKowalski/listbox/pkg/listbox/sdlhost"
)

// DefaultDevicePath is the evdev node carrying the built-in controls.
const DefaultDevicePath = "/dev/input/event1"

// Theme returns Cannoli's colors with the given font. White pills mark the
// selection and teal marks the row being pressed.
func Theme(fontPath string) sdlhost.Theme {
	return sdlhost.Theme{
		BackgroundColor:      sdlhost.HexToColor(0x000000),
		HighlightColor:       sdlhost.HexToColor(0xFFFFFF),
		PrelightColor:        sdlhost.HexToColor(0x303030),
		ActiveColor:          sdlhost.HexToColor(0x008080),
		FocusColor:           sdlhost.HexToColor(0x008080),
		BellColor:            sdlhost.HexToColor(0xFF4040),
		TextColor:            sdlhost.HexToColor(0xFFFFFF),
		HighlightedTextColor: sdlhost.HexToColor(0x000000),
		HeaderTextColor:      sdlhost.HexToColor(0x008080),
		FontPath:             fontPath,
	}
}
