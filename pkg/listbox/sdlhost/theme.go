package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
)

// Theme defines the colors and font the SDL host paints with.
type Theme struct {
	BackgroundColor      sdl.Color // List background
	HighlightColor       sdl.Color // Selected row background
	PrelightColor        sdl.Color // Hovered row background
	ActiveColor          sdl.Color // Pressed row background
	FocusColor           sdl.Color // Focus indicator around the cursor row
	BellColor            sdl.Color // Border flashed when the bell rings
	TextColor            sdl.Color // Default row text
	HighlightedTextColor sdl.Color // Text on selected rows
	HeaderTextColor      sdl.Color // Separator header text
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Optional image drawn behind the list
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme is a dark theme with a blue selection.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor:      HexToColor(0x1E1E1E),
		HighlightColor:       HexToColor(0x3A6EA5),
		PrelightColor:        HexToColor(0x2C2C2C),
		ActiveColor:          HexToColor(0x4C82BD),
		FocusColor:           HexToColor(0xC8C8C8),
		BellColor:            HexToColor(0xD04040),
		TextColor:            HexToColor(0xE6E6E6),
		HighlightedTextColor: HexToColor(0xFFFFFF),
		HeaderTextColor:      HexToColor(0x8A8A8A),
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 0xFF,
	}
}

// BackgroundFor picks the row background for a set of state flags. Active
// wins over selected, which wins over prelight.
func (t Theme) BackgroundFor(state listbox.StateFlags) (sdl.Color, bool) {
	switch {
	case state.Has(listbox.StateActive):
		return t.ActiveColor, true
	case state.Has(listbox.StateSelected):
		return t.HighlightColor, true
	case state.Has(listbox.StatePrelight):
		return t.PrelightColor, true
	}
	return sdl.Color{}, false
}
