package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
	"github.com/BrandonKowalski/listbox/pkg/listbox/constants"
	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

// buttonEvent is a press or release of a virtual button, whatever device it
// came from.
type buttonEvent struct {
	Button  constants.VirtualButton
	Pressed bool
}

// keyEvent translates an SDL key press into a list box key event.
func keyEvent(sym sdl.Keycode, mod uint16) (listbox.KeyEvent, bool) {
	var key listbox.Key
	switch sym {
	case sdl.K_UP:
		key = listbox.KeyUp
	case sdl.K_DOWN:
		key = listbox.KeyDown
	case sdl.K_LEFT:
		key = listbox.KeyLeft
	case sdl.K_RIGHT:
		key = listbox.KeyRight
	case sdl.K_HOME, sdl.K_KP_7:
		key = listbox.KeyHome
	case sdl.K_END, sdl.K_KP_1:
		key = listbox.KeyEnd
	case sdl.K_PAGEUP, sdl.K_KP_9:
		key = listbox.KeyPageUp
	case sdl.K_PAGEDOWN, sdl.K_KP_3:
		key = listbox.KeyPageDown
	case sdl.K_TAB:
		key = listbox.KeyTab
	case sdl.K_SPACE:
		key = listbox.KeySpace
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		key = listbox.KeyEnter
	default:
		return listbox.KeyEvent{}, false
	}
	return listbox.KeyEvent{Key: key, Mods: modifiers(mod)}, true
}

func modifiers(mod uint16) listbox.Modifier {
	m := uint32(mod)
	var mods listbox.Modifier
	if m&uint32(sdl.KMOD_SHIFT) != 0 {
		mods |= listbox.ModShift
	}
	if m&uint32(sdl.KMOD_CTRL) != 0 {
		mods |= listbox.ModControl
	}
	if m&uint32(sdl.KMOD_ALT) != 0 {
		mods |= listbox.ModAlt
	}
	if m&uint32(sdl.KMOD_GUI) != 0 {
		mods |= listbox.ModSuper
	}
	return mods
}

// controllerButton maps a game controller button to a virtual button.
// Face buttons follow the Nintendo layout used on most handhelds.
func controllerButton(button uint8) constants.VirtualButton {
	switch int(button) {
	case int(sdl.CONTROLLER_BUTTON_DPAD_UP):
		return constants.VirtualButtonUp
	case int(sdl.CONTROLLER_BUTTON_DPAD_DOWN):
		return constants.VirtualButtonDown
	case int(sdl.CONTROLLER_BUTTON_DPAD_LEFT):
		return constants.VirtualButtonLeft
	case int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):
		return constants.VirtualButtonRight
	case int(sdl.CONTROLLER_BUTTON_A):
		return constants.VirtualButtonB
	case int(sdl.CONTROLLER_BUTTON_B):
		return constants.VirtualButtonA
	case int(sdl.CONTROLLER_BUTTON_X):
		return constants.VirtualButtonY
	case int(sdl.CONTROLLER_BUTTON_Y):
		return constants.VirtualButtonX
	case int(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):
		return constants.VirtualButtonL1
	case int(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER):
		return constants.VirtualButtonR1
	case int(sdl.CONTROLLER_BUTTON_START):
		return constants.VirtualButtonStart
	case int(sdl.CONTROLLER_BUTTON_BACK):
		return constants.VirtualButtonSelect
	}
	return constants.VirtualButtonUnassigned
}

// buttonKey gives the key a virtual button stands for.
//
//	D-pad        Up, Down, Left, Right
//	L1, R1       Page Up, Page Down
//	A            Enter
//	X            Ctrl+Space
//	Start        Home
//	Select       End
func buttonKey(button constants.VirtualButton) (listbox.KeyEvent, bool) {
	switch button {
	case constants.VirtualButtonUp:
		return listbox.KeyEvent{Key: listbox.KeyUp}, true
	case constants.VirtualButtonDown:
		return listbox.KeyEvent{Key: listbox.KeyDown}, true
	case constants.VirtualButtonLeft:
		return listbox.KeyEvent{Key: listbox.KeyLeft}, true
	case constants.VirtualButtonRight:
		return listbox.KeyEvent{Key: listbox.KeyRight}, true
	case constants.VirtualButtonL1:
		return listbox.KeyEvent{Key: listbox.KeyPageUp}, true
	case constants.VirtualButtonR1:
		return listbox.KeyEvent{Key: listbox.KeyPageDown}, true
	case constants.VirtualButtonA:
		return listbox.KeyEvent{Key: listbox.KeyEnter}, true
	case constants.VirtualButtonX:
		return listbox.KeyEvent{Key: listbox.KeySpace, Mods: listbox.ModControl}, true
	case constants.VirtualButtonStart:
		return listbox.KeyEvent{Key: listbox.KeyHome}, true
	case constants.VirtualButtonSelect:
		return listbox.KeyEvent{Key: listbox.KeyEnd}, true
	}
	return listbox.KeyEvent{}, false
}

// repeatKey gives the key for a held direction firing again.
func repeatKey(d internal.Direction) (listbox.KeyEvent, bool) {
	switch d {
	case internal.DirectionUp:
		return listbox.KeyEvent{Key: listbox.KeyUp}, true
	case internal.DirectionDown:
		return listbox.KeyEvent{Key: listbox.KeyDown}, true
	case internal.DirectionPageUp:
		return listbox.KeyEvent{Key: listbox.KeyPageUp}, true
	case internal.DirectionPageDown:
		return listbox.KeyEvent{Key: listbox.KeyPageDown}, true
	}
	return listbox.KeyEvent{}, false
}
