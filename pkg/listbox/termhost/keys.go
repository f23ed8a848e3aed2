package termhost

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
)

// KeyMap defines the terminal key bindings. Every list box key is also
// accepted with Ctrl held, and Ctrl+Up/Down move the cursor without moving
// the selection.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Tab      key.Binding
	Activate key.Binding
	Toggle   key.Binding

	Quit key.Binding
}

// DefaultKeyMap adds vim-style j/k next to the arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "ctrl+up", "shift+up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "ctrl+down", "shift+down"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "ctrl+left"),
		key.WithHelp("←", "out"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "ctrl+right"),
		key.WithHelp("→", "in"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g", "ctrl+home"),
		key.WithHelp("home/g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G", "ctrl+end"),
		key.WithHelp("end/G", "last"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "next"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "activate"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("ctrl+@"),
		key.WithHelp("ctrl+space", "toggle"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// modifiers reads the modifier prefix bubbletea puts on key names.
func modifiers(name string) listbox.Modifier {
	var mods listbox.Modifier
	for {
		if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
			mods |= listbox.ModControl
			name = rest
		} else if rest, ok := strings.CutPrefix(name, "shift+"); ok {
			mods |= listbox.ModShift
			name = rest
		} else if rest, ok := strings.CutPrefix(name, "alt+"); ok {
			mods |= listbox.ModAlt
			name = rest
		} else {
			return mods
		}
	}
}

// keyEvent translates a terminal key press into a list box key event.
func (k KeyMap) keyEvent(msg tea.KeyMsg) (listbox.KeyEvent, bool) {
	name := msg.String()
	mods := modifiers(name)

	var code listbox.Key
	switch {
	case key.Matches(msg, k.Up):
		code = listbox.KeyUp
	case key.Matches(msg, k.Down):
		code = listbox.KeyDown
	case key.Matches(msg, k.Left):
		code = listbox.KeyLeft
	case key.Matches(msg, k.Right):
		code = listbox.KeyRight
	case key.Matches(msg, k.Home):
		code = listbox.KeyHome
	case key.Matches(msg, k.End):
		code = listbox.KeyEnd
	case key.Matches(msg, k.PageUp):
		code = listbox.KeyPageUp
	case key.Matches(msg, k.PageDown):
		code = listbox.KeyPageDown
	case key.Matches(msg, k.Tab):
		code = listbox.KeyTab
	case key.Matches(msg, k.Activate):
		if name == " " {
			code = listbox.KeySpace
		} else {
			code = listbox.KeyEnter
		}
	case key.Matches(msg, k.Toggle):
		code = listbox.KeySpace
		mods |= listbox.ModControl
	default:
		return listbox.KeyEvent{}, false
	}
	return listbox.KeyEvent{Key: code, Mods: mods}, true
}
