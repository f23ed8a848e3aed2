package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects the SDL window flags. The zero value means a shown,
// resizable window.
type WindowOptions struct {
	Borderless        bool
	Resizable         bool // The viewport relayouts the list on every size change
	Fullscreen        bool
	FullscreenDesktop bool // Takes precedence over Fullscreen
	AllowHighDPI      bool // Renders text at the display's pixel density
	Hidden            bool
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if wo.Hidden {
		flags = sdl.WINDOW_HIDDEN
	}

	for _, opt := range []struct {
		on   bool
		flag uint32
	}{
		{wo.Resizable, sdl.WINDOW_RESIZABLE},
		{wo.Borderless, sdl.WINDOW_BORDERLESS},
		{wo.AllowHighDPI, sdl.WINDOW_ALLOW_HIGHDPI},
	} {
		if opt.on {
			flags |= opt.flag
		}
	}

	switch {
	case wo.FullscreenDesktop:
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	case wo.Fullscreen:
		flags |= sdl.WINDOW_FULLSCREEN
	}
	return flags
}
