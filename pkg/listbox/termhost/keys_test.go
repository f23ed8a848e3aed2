package termhost

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
)

func TestKeyTranslation(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want listbox.KeyEvent
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, listbox.KeyEvent{Key: listbox.KeyUp}},
		{"k", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, listbox.KeyEvent{Key: listbox.KeyUp}},
		{"ctrl+down", tea.KeyMsg{Type: tea.KeyCtrlDown}, listbox.KeyEvent{Key: listbox.KeyDown, Mods: listbox.ModControl}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, listbox.KeyEvent{Key: listbox.KeyTab, Mods: listbox.ModShift}},
		{"ctrl+pgdown", tea.KeyMsg{Type: tea.KeyCtrlPgDown}, listbox.KeyEvent{Key: listbox.KeyPageDown, Mods: listbox.ModControl}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, listbox.KeyEvent{Key: listbox.KeySpace}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, listbox.KeyEvent{Key: listbox.KeyEnter}},
		{"ctrl+space", tea.KeyMsg{Type: tea.KeyCtrlAt}, listbox.KeyEvent{Key: listbox.KeySpace, Mods: listbox.ModControl}},
		{"G", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, listbox.KeyEvent{Key: listbox.KeyEnd}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DefaultKeyMap.keyEvent(tt.msg)
			if !ok || got != tt.want {
				t.Fatalf("keyEvent(%q) = %+v, %v; want %+v", tt.msg.String(), got, ok, tt.want)
			}
		})
	}

	if _, ok := DefaultKeyMap.keyEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}); ok {
		t.Fatal("unbound key translated")
	}
}

func TestModifierPrefixes(t *testing.T) {
	got := modifiers("ctrl+shift+alt+up")
	if want := listbox.ModControl | listbox.ModShift | listbox.ModAlt; got != want {
		t.Fatalf("modifiers = %v, want %v", got, want)
	}
	if modifiers("up") != 0 {
		t.Fatal("plain key reported modifiers")
	}
}

func TestLineCanvasMergesState(t *testing.T) {
	c := NewLineCanvas(10, 20, 3)

	c.RenderBackground(listbox.Rect{Y: 0, W: 20, H: 40}, listbox.StateFocused)
	c.RenderBackground(listbox.Rect{Y: 11, W: 20, H: 1}, listbox.StateSelected)
	c.RenderBackground(listbox.Rect{Y: 11, W: 20, H: 1}, listbox.StatePrelight)
	c.RenderFocus(listbox.Rect{Y: 12, W: 20, H: 1})
	c.WriteText(listbox.Rect{Y: 9, W: 20, H: 2}, "above\ninside", false, false)

	if c.lines[0].state != 0 {
		t.Fatal("list background leaked a row state")
	}
	if c.lines[1].state != listbox.StateSelected|listbox.StatePrelight {
		t.Fatalf("line 11 state = %b", c.lines[1].state)
	}
	if !c.lines[2].focus || c.lines[1].focus {
		t.Fatal("focus not on line 12 only")
	}
	if c.lines[0].text != "inside" {
		t.Fatalf("line 10 text = %q, want the second line of the row", c.lines[0].text)
	}

	out := c.Render(DefaultStyles(), false)
	if n := strings.Count(out, "\n"); n != 2 {
		t.Fatalf("rendered %d line breaks, want 2", n)
	}
	if !strings.Contains(out, "inside") {
		t.Fatalf("render = %q", out)
	}
}

func TestTextRowMeasuresLines(t *testing.T) {
	r := NewTextRow("Wish You\nWere Here")

	if _, nat := r.PreferredWidth(); nat != 9 {
		t.Fatalf("natural width = %d, want 9", nat)
	}
	if h, _ := r.PreferredHeightForWidth(20); h != 2 {
		t.Fatalf("height = %d, want 2", h)
	}
	if !NewHeaderRow("A").IsHeader() || r.IsHeader() {
		t.Fatal("header flag wrong")
	}
}
