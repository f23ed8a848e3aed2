package termhost

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
)

// Styles defines how rows are painted in the terminal. Colors use ANSI
// 256-color codes for broad terminal compatibility.
type Styles struct {
	Normal     lipgloss.Style
	Selected   lipgloss.Style
	Prelight   lipgloss.Style
	Active     lipgloss.Style
	Header     lipgloss.Style
	DropTarget lipgloss.Style

	// FocusMarker prefixes the cursor row while the list box has focus.
	FocusMarker lipgloss.Style
	// Bell replaces FocusMarker briefly when the bell rings.
	Bell lipgloss.Style
}

// DefaultStyles is a dark-terminal scheme.
func DefaultStyles() Styles {
	return Styles{
		Normal:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")).Bold(true),
		Prelight:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		Active:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("32")),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true),
		DropTarget:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Underline(true),
		FocusMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).SetString("▌"),
		Bell:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).SetString("▌"),
	}
}

// rowStyle picks the row style for a state. Active wins over selected,
// which wins over prelight.
func (s Styles) rowStyle(state listbox.StateFlags) lipgloss.Style {
	switch {
	case state.Has(listbox.StateActive):
		return s.Active
	case state.Has(listbox.StateSelected):
		return s.Selected
	case state.Has(listbox.StatePrelight):
		return s.Prelight
	}
	return s.Normal
}
