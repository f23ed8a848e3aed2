package sdlhost

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/listbox/pkg/listbox/constants"
	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

// Window wraps the SDL window and renderer the list box is painted into.
type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	Background *sdl.Texture

	hasVSync        bool
	lastPresentTime uint64
}

func openWindow(title string, width, height int32, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = int32(50), int32(50)
		width = envSize(constants.WindowWidthEnvVar, width, 1024)
		height = envSize(constants.WindowHeightEnvVar, height, 768)
	}

	if width <= 0 || height <= 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = 1024, 768
		} else {
			width, height = mode.W, mode.H
		}
	}

	internal.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable; falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, NewInfrastructureError("create_renderer", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}
	win.loadBackground()

	return win, nil
}

// envSize reads a window dimension override, warning and falling back on
// garbage.
func envSize(name string, current, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		if current > 0 {
			return current
		}
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size override; using default", "env", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if env := os.Getenv(constants.BackgroundPathEnvVar); env != "" {
		path = env
	}
	if path == "" {
		return
	}

	tex, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		internal.GetInternalLogger().Debug("No background image", "path", path, "error", err)
		return
	}
	w.Background = tex
}

func (w *Window) Size() (int32, int32) {
	return w.Window.GetSize()
}

func (w *Window) RenderBackground() {
	theme := GetTheme()
	c := theme.BackgroundColor
	w.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.Renderer.Clear()

	if w.Background != nil {
		width, height := w.Size()
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{X: 0, Y: 0, W: width, H: height})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) close() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}
