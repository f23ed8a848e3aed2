package sdlhost

import (
	"context"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
	"github.com/BrandonKowalski/listbox/pkg/listbox/constants"
	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

// App drives one list box in the window opened by Init.
type App struct {
	Box      *listbox.ListBox
	Viewport *Viewport
	Timers   *listbox.LoopTimers

	host        *frameHost
	directional internal.DirectionalInput
	devices     []*DeviceInput

	pointerInside bool
	dragging      bool
	lastX, lastY  int32
}

// NewApp puts box in a viewport filling the window and routes its redraw,
// relayout, bell and timer requests through the event loop.
func NewApp(box *listbox.ListBox) *App {
	a := &App{
		Box:         box,
		Timers:      listbox.NewLoopTimers(nil),
		host:        newFrameHost(nil),
		directional: internal.NewDirectionalInput(),
	}

	var w, h int32
	if window != nil {
		w, h = window.Size()
	}
	a.Viewport = NewViewport(0, 0, w, h)

	box.SetHost(a.host)
	box.SetTimers(a.Timers)
	box.AddToScrolled(a.Viewport)
	a.Viewport.VAdjustment().ValueChanged.Connect(func(float64) {
		a.host.QueueDraw()
	})
	return a
}

// AddDevice feeds buttons from a raw input device into the loop.
func (a *App) AddDevice(d *DeviceInput) {
	if d != nil {
		a.devices = append(a.devices, d)
	}
}

// Run processes events until the window is closed (nil), the user backs
// out (ErrCancelled) or ctx is done (ctx.Err()). Devices added with
// AddDevice are closed on return.
func (a *App) Run(ctx context.Context) error {
	if window == nil {
		return ErrNotInitialized
	}
	defer a.closeDevices()

	a.Box.Focus(listbox.DirTabForward)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if done, err := a.handleEvent(event); done {
				return err
			}
		}

		if a.pollDevices() {
			return ErrCancelled
		}

		if ev, ok := repeatKey(a.directional.Update()); ok {
			a.Box.HandleKey(ev)
		}

		a.Timers.Dispatch(time.Now())

		if a.host.takeLayout() {
			a.Viewport.Layout()
		}

		ringing := a.host.ringing()
		if a.host.takeDraw() || ringing {
			a.render(ringing)
		} else {
			sdl.Delay(uint32(constants.DefaultInputDelay.Milliseconds()))
		}
	}
}

func (a *App) handleEvent(event sdl.Event) (bool, error) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true, nil

	case *sdl.WindowEvent:
		a.handleWindowEvent(e)

	case *sdl.MouseMotionEvent:
		a.handleMotion(e.X, e.Y)

	case *sdl.MouseButtonEvent:
		a.handleMouseButton(e)

	case *sdl.MouseWheelEvent:
		dy := float64(e.Y)
		if int(e.Direction) == int(sdl.MOUSEWHEEL_FLIPPED) {
			dy = -dy
		}
		a.Viewport.ScrollBy(-dy)
		if a.pointerInside {
			a.handleMotion(a.lastX, a.lastY)
		}

	case *sdl.KeyboardEvent:
		if int(e.State) != int(sdl.PRESSED) {
			return false, nil
		}
		if e.Keysym.Sym == sdl.K_ESCAPE {
			return true, ErrCancelled
		}
		if ev, ok := keyEvent(e.Keysym.Sym, e.Keysym.Mod); ok {
			a.Box.HandleKey(ev)
		}

	case *sdl.ControllerButtonEvent:
		pressed := int(e.State) == int(sdl.PRESSED)
		if a.handleButton(buttonEvent{Button: controllerButton(e.Button), Pressed: pressed}) {
			return true, ErrCancelled
		}

	case *sdl.ControllerDeviceEvent:
		if int(e.Type) == int(sdl.CONTROLLERDEVICEADDED) {
			openController(int(e.Which))
		}
	}
	return false, nil
}

func (a *App) handleWindowEvent(e *sdl.WindowEvent) {
	switch int(e.Event) {
	case int(sdl.WINDOWEVENT_SIZE_CHANGED):
		a.Viewport.SetArea(a.Viewport.X, a.Viewport.Y, e.Data1, e.Data2)
		a.host.QueueResize()
	case int(sdl.WINDOWEVENT_LEAVE):
		if a.dragging {
			a.Box.DragLeave()
		}
		a.pointerInside = false
		a.Box.HandleLeave(listbox.PointerEvent{})
	case int(sdl.WINDOWEVENT_FOCUS_LOST):
		a.directional.Reset()
		a.Box.Blur()
	case int(sdl.WINDOWEVENT_FOCUS_GAINED):
		a.Box.GrabFocus()
	case int(sdl.WINDOWEVENT_EXPOSED):
		a.host.QueueDraw()
	}
}

func (a *App) pointer(x, y int32) listbox.PointerEvent {
	cx, cy := a.Viewport.ToChild(x, y)
	return listbox.PointerEvent{X: cx, Y: cy, Mods: modifiers(uint16(sdl.GetModState()))}
}

func (a *App) handleMotion(x, y int32) {
	a.lastX, a.lastY = x, y
	ev := a.pointer(x, y)

	inside := a.Viewport.Contains(x, y)
	switch {
	case inside && !a.pointerInside:
		a.pointerInside = true
		a.Box.HandleEnter(ev)
	case !inside && a.pointerInside:
		a.pointerInside = false
		a.Box.HandleLeave(ev)
		return
	case !inside:
		return
	}

	if a.dragging {
		a.Box.DragMotion(ev.X, ev.Y)
		if target := a.Box.ChildAtY(int32(ev.Y)); target != nil {
			a.Box.DragHighlightWidget(target)
		}
		a.host.QueueDraw()
		return
	}
	a.Box.HandleMotion(ev)
}

// handleMouseButton routes the primary buttons to the list box. The right
// button drags: SDL has no drag-and-drop inside a window, so a held right
// button stands in for a drag over the list.
func (a *App) handleMouseButton(e *sdl.MouseButtonEvent) {
	pressed := int(e.State) == int(sdl.PRESSED)

	if int(e.Button) == int(sdl.BUTTON_RIGHT) {
		a.dragging = pressed
		if pressed {
			a.handleMotion(e.X, e.Y)
		} else {
			a.Box.DragLeave()
			a.host.QueueDraw()
		}
		return
	}

	ev := a.pointer(e.X, e.Y)
	ev.Button = int(e.Button)
	ev.Clicks = int(e.Clicks)
	if pressed {
		a.Box.HandleButtonPress(ev)
	} else {
		a.Box.HandleButtonRelease(ev)
	}
}

// handleButton applies a virtual button press or release and reports
// whether the user backed out.
func (a *App) handleButton(ev buttonEvent) bool {
	if ev.Button == constants.VirtualButtonUnassigned {
		return false
	}
	a.directional.SetHeld(ev.Button, ev.Pressed)
	if !ev.Pressed {
		return false
	}
	if ev.Button == constants.VirtualButtonB {
		return true
	}
	if key, ok := buttonKey(ev.Button); ok {
		a.Box.HandleKey(key)
	}
	return false
}

// pollDevices drains device input without blocking and reports whether
// the user backed out.
func (a *App) pollDevices() bool {
	live := a.devices[:0]
	quit := false
	for _, d := range a.devices {
		open := true
	drain:
		for !quit {
			select {
			case ev, ok := <-d.events():
				if !ok {
					open = false
					break drain
				}
				quit = a.handleButton(ev)
			default:
				break drain
			}
		}
		if open {
			live = append(live, d)
		} else {
			_ = d.Close()
		}
	}
	a.devices = live
	return quit
}

func (a *App) closeDevices() {
	for _, d := range a.devices {
		if err := d.Close(); err != nil {
			internal.GetInternalLogger().Warn("Failed to close input device", "error", err)
		}
	}
	a.devices = nil
}

func (a *App) render(ringing bool) {
	window.RenderBackground()

	vp := a.Viewport
	clip := sdl.Rect{X: vp.X, Y: vp.Y, W: vp.W, H: vp.H}
	ox, oy := vp.Origin()

	window.Renderer.SetClipRect(&clip)
	canvas := NewCanvas(window.Renderer, GetTheme(), ox, oy, clip)
	a.Box.Draw(canvas)
	if ringing {
		canvas.Flash()
	}
	window.Renderer.SetClipRect(nil)

	window.Present()
}
