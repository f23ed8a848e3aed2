package internal

import (
	"time"

	"github.com/BrandonKowalski/listbox/pkg/listbox/constants"
)

// Direction is a repeatable navigation intent coming from a held button.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionPageUp
	DirectionPageDown
)

// DirectionalInput tracks held navigation buttons and decides when a held
// button should fire again. Hosts call SetHeld on press/release and Update
// once per frame.
type DirectionalInput struct {
	held struct {
		up, down, pageUp, pageDown bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput uses a 300ms delay before the first repeat and 50ms
// between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetClock replaces the time source. Used by tests.
func (d *DirectionalInput) SetClock(now func() time.Time) {
	d.now = now
	d.lastRepeatTime = now()
}

// SetHeld updates the held state for a virtual button.
// Returns true if the button is one that repeats.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	var slot *bool
	switch button {
	case constants.VirtualButtonUp:
		slot = &d.held.up
	case constants.VirtualButtonDown:
		slot = &d.held.down
	case constants.VirtualButtonL1:
		slot = &d.held.pageUp
	case constants.VirtualButtonR1:
		slot = &d.held.pageDown
	default:
		return false
	}

	*slot = held
	if held {
		d.lastRepeatTime = d.now()
	}
	d.hasRepeated = false
	return true
}

func (d *DirectionalInput) IsHeld() bool {
	return d.held.up || d.held.down || d.held.pageUp || d.held.pageDown
}

// HeldDirection returns the held direction with priority up, down,
// page up, page down.
func (d *DirectionalInput) HeldDirection() Direction {
	switch {
	case d.held.up:
		return DirectionUp
	case d.held.down:
		return DirectionDown
	case d.held.pageUp:
		return DirectionPageUp
	case d.held.pageDown:
		return DirectionPageDown
	}
	return DirectionNone
}

// Update returns the direction to process this frame, or DirectionNone.
// The first repeat fires after the delay, later ones after the interval.
func (d *DirectionalInput) Update() Direction {
	now := d.now()
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

func (d *DirectionalInput) Reset() {
	d.held.up = false
	d.held.down = false
	d.held.pageUp = false
	d.held.pageDown = false
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionPageUp:
		return "page-up"
	case DirectionPageDown:
		return "page-down"
	default:
		return ""
	}
}
