// Package sdlhost runs a list box inside an SDL2 window. It owns the window,
// the fonts and the event loop, translates mouse, keyboard, game controller
// and raw evdev input into list box calls, and paints through a Canvas.
package sdlhost

import (
	"errors"
	"log/slog"
	"os"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

// Options configures the SDL host.
type Options struct {
	WindowTitle    string        // Window title displayed in windowed mode
	Width, Height  int32         // Window size; the display size is used when zero
	WindowOptions  WindowOptions // SDL window flags (borderless, resizable, etc.)
	FontPath       string        // Overrides the theme font
	FontSize       int           // Row text size; 28 when zero
	HeaderFontSize int           // Header text size; 20 when zero
	LogPath        string        // Full path for log file including filename (creates parent directories)
	Debug          bool          // Log host internals at debug level
}

type fontSet struct {
	row    *ttf.Font
	header *ttf.Font
}

var (
	window *Window
	fonts  fontSet
)

// fallbackFonts are tried when neither the options nor the theme name a font.
var fallbackFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

// Init initializes SDL, opens the window and loads fonts. Must be called
// before Run or before any Label is measured.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.Debug {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return NewInfrastructureError("sdl_init", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return NewInfrastructureError("ttf_init", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		internal.GetInternalLogger().Warn("Image loaders unavailable; backgrounds disabled", "error", err)
	}

	winOpts := options.WindowOptions
	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	win, err := openWindow(options.WindowTitle, options.Width, options.Height, winOpts)
	if err != nil {
		shutdownSubsystems()
		return err
	}
	window = win

	if err := loadFonts(options); err != nil {
		window.close()
		window = nil
		shutdownSubsystems()
		return err
	}

	openControllers()
	return nil
}

// Close tears down everything Init created.
func Close() {
	closeControllers()
	closeFonts()
	if window != nil {
		window.close()
		window = nil
	}
	shutdownSubsystems()
	internal.CloseLogger()
}

// GetWindow returns the window opened by Init, or nil.
func GetWindow() *Window {
	return window
}

func shutdownSubsystems() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

func loadFonts(options Options) error {
	rowSize := options.FontSize
	if rowSize <= 0 {
		rowSize = 28
	}
	headerSize := options.HeaderFontSize
	if headerSize <= 0 {
		headerSize = 20
	}

	path := resolveFontPath(options.FontPath, GetTheme().FontPath)
	if path == "" {
		return NewInfrastructureError("load_font", errors.New("no usable font found"))
	}

	row, err := ttf.OpenFont(path, rowSize)
	if err != nil {
		return NewInfrastructureError("load_font", err)
	}
	header, err := ttf.OpenFont(path, headerSize)
	if err != nil {
		row.Close()
		return NewInfrastructureError("load_font", err)
	}

	fonts = fontSet{row: row, header: header}
	internal.GetInternalLogger().Debug("Loaded fonts", "path", path, "row_size", rowSize, "header_size", headerSize)
	return nil
}

func resolveFontPath(candidates ...string) string {
	for _, p := range append(candidates, fallbackFonts...) {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func closeFonts() {
	if fonts.row != nil {
		fonts.row.Close()
	}
	if fonts.header != nil {
		fonts.header.Close()
	}
	fonts = fontSet{}
}

var controllers []*sdl.GameController

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		openController(i)
	}
}

func openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	c := sdl.GameControllerOpen(index)
	if c == nil {
		internal.GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	internal.GetInternalLogger().Debug("Opened game controller", "index", index, "name", c.Name())
	controllers = append(controllers, c)
}

func closeControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}
