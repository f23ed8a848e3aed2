//go:build linux

package sdlhost

import (
	"testing"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/listbox/pkg/listbox/constants"
)

func TestDeviceButtonMapping(t *testing.T) {
	tests := []struct {
		code evdev.EvCode
		want constants.VirtualButton
	}{
		{evdev.KEY_UP, constants.VirtualButtonUp},
		{evdev.BTN_DPAD_DOWN, constants.VirtualButtonDown},
		{evdev.BTN_EAST, constants.VirtualButtonA},
		{evdev.BTN_SOUTH, constants.VirtualButtonB},
		{evdev.BTN_TR, constants.VirtualButtonR1},
		{evdev.BTN_SELECT, constants.VirtualButtonSelect},
		{evdev.KEY_VOLUMEUP, constants.VirtualButtonUnassigned},
	}
	for _, tt := range tests {
		if got := deviceButton(tt.code); got != tt.want {
			t.Errorf("deviceButton(%d) = %s, want %s", tt.code, got.GetName(), tt.want.GetName())
		}
	}
}

func TestWatchDeviceMissingPath(t *testing.T) {
	_, err := WatchDevice("/nonexistent/input/event99")
	if !IsInfrastructureError(err) {
		t.Fatalf("err = %v, want an infrastructure error", err)
	}
}
