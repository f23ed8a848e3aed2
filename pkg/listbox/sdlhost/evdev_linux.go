//go:build linux

package sdlhost

import (
	"errors"
	"os"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/listbox/pkg/listbox/constants"
	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

// DeviceInput reads buttons straight from an evdev node, for handhelds whose
// built-in controls are not exposed as an SDL game controller.
type DeviceInput struct {
	path    string
	dev     *evdev.InputDevice
	out     chan buttonEvent
	stopped *atomic.Bool
	done    chan struct{}
}

// WatchDevice opens the device at path (e.g. /dev/input/event1) and starts
// reading it. Hand the result to App.AddDevice.
func WatchDevice(path string) (*DeviceInput, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, NewInfrastructureError("open_device", err)
	}

	d := &DeviceInput{
		path:    path,
		dev:     dev,
		out:     make(chan buttonEvent, 32),
		stopped: atomic.NewBool(false),
		done:    make(chan struct{}),
	}

	if name, err := dev.Name(); err == nil {
		internal.GetInternalLogger().Debug("Watching input device", "path", path, "name", name)
	}

	go d.read()
	return d, nil
}

func (d *DeviceInput) read() {
	defer close(d.done)
	defer close(d.out)

	for {
		ev, err := d.dev.ReadOne()
		if d.stopped.Load() {
			return
		}
		if err != nil {
			if !errors.Is(err, os.ErrClosed) {
				internal.GetInternalLogger().Error("Input device read failed", "path", d.path, "error", err)
			}
			return
		}
		if ev.Type != evdev.EV_KEY || ev.Value == 2 {
			continue
		}

		button := deviceButton(ev.Code)
		if button == constants.VirtualButtonUnassigned {
			continue
		}

		select {
		case d.out <- buttonEvent{Button: button, Pressed: ev.Value == 1}:
		default:
			internal.GetInternalLogger().Debug("Dropping device input; loop is behind", "button", button.GetName())
		}
	}
}

func (d *DeviceInput) events() <-chan buttonEvent {
	return d.out
}

// Close stops the reader and releases the device.
func (d *DeviceInput) Close() error {
	if d.stopped.Swap(true) {
		return nil
	}
	err := d.dev.Close()
	<-d.done
	return err
}

func deviceButton(code evdev.EvCode) constants.VirtualButton {
	switch code {
	case evdev.KEY_UP, evdev.BTN_DPAD_UP:
		return constants.VirtualButtonUp
	case evdev.KEY_DOWN, evdev.BTN_DPAD_DOWN:
		return constants.VirtualButtonDown
	case evdev.KEY_LEFT, evdev.BTN_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case evdev.KEY_RIGHT, evdev.BTN_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case evdev.BTN_EAST, evdev.KEY_ENTER:
		return constants.VirtualButtonA
	case evdev.BTN_SOUTH:
		return constants.VirtualButtonB
	case evdev.BTN_NORTH:
		return constants.VirtualButtonX
	case evdev.BTN_WEST:
		return constants.VirtualButtonY
	case evdev.BTN_TL, evdev.KEY_PAGEUP:
		return constants.VirtualButtonL1
	case evdev.BTN_TR, evdev.KEY_PAGEDOWN:
		return constants.VirtualButtonR1
	case evdev.BTN_START:
		return constants.VirtualButtonStart
	case evdev.BTN_SELECT:
		return constants.VirtualButtonSelect
	}
	return constants.VirtualButtonUnassigned
}
