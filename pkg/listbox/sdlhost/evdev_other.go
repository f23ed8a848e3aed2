//go:build !linux

package sdlhost

import "errors"

var errNoEvdev = errors.New("evdev input is only available on linux")

// DeviceInput is unavailable off linux.
type DeviceInput struct{}

func WatchDevice(path string) (*DeviceInput, error) {
	return nil, NewInfrastructureError("open_device", errNoEvdev)
}

func (d *DeviceInput) events() <-chan buttonEvent { return nil }

func (d *DeviceInput) Close() error { return nil }
