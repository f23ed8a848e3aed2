package sdlhost

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
)

func TestHexToColor(t *testing.T) {
	got := HexToColor(0x3A6EA5)
	want := sdl.Color{R: 0x3A, G: 0x6E, B: 0xA5, A: 0xFF}
	if got != want {
		t.Fatalf("HexToColor = %+v, want %+v", got, want)
	}
}

func TestBackgroundPriority(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name  string
		state listbox.StateFlags
		want  sdl.Color
		ok    bool
	}{
		{"active beats selected", listbox.StateActive | listbox.StateSelected, theme.ActiveColor, true},
		{"selected beats prelight", listbox.StateSelected | listbox.StatePrelight, theme.HighlightColor, true},
		{"prelight", listbox.StatePrelight | listbox.StateFocused, theme.PrelightColor, true},
		{"plain row", listbox.StateNormal, sdl.Color{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := theme.BackgroundFor(tt.state)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("BackgroundFor = %+v, %v", got, ok)
			}
		})
	}
}

func TestSetTheme(t *testing.T) {
	old := GetTheme()
	t.Cleanup(func() { SetTheme(old) })

	custom := DefaultTheme()
	custom.HighlightColor = HexToColor(0x00FF00)
	SetTheme(custom)

	if GetTheme().HighlightColor != custom.HighlightColor {
		t.Fatal("SetTheme did not take effect")
	}
}
