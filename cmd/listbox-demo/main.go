// listbox-demo shows a sorted, grouped and filterable game library in a
// list box. It runs either in the terminal (the default) or in an SDL
// window, optionally reading buttons from an evdev device as handheld
// firmwares do.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
	"github.com/BrandonKowalski/listbox/pkg/listbox/constants"
	"github.com/BrandonKowalski/listbox/pkg/listbox/platform/cannoli"
	"github.com/BrandonKowalski/listbox/pkg/listbox/sdlhost"
	"github.com/BrandonKowalski/listbox/pkg/listbox/termhost"
)

type config struct {
	backend      string
	settingsPath string
	libraryPath  string
	lang         string
	query        string
	theme        string
	device       string
	logPath      string
	logLevel     string
	debug        bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config

	flagSet := pflag.NewFlagSet("listbox-demo", pflag.ContinueOnError)
	flagSet.StringVar(&cfg.backend, "backend", "term", "where to show the list: term or sdl")
	flagSet.StringVar(&cfg.settingsPath, "settings", "", "list box settings file (.toml, .yaml or .yml)")
	flagSet.StringVar(&cfg.libraryPath, "library", "", "YAML game library (default: built-in sample)")
	flagSet.StringVar(&cfg.lang, "lang", os.Getenv("LANG"), "language for headers and sorting")
	flagSet.StringVarP(&cfg.query, "query", "q", "", "only show games fuzzy-matching this text")
	flagSet.StringVar(&cfg.theme, "theme", "default", "SDL theme: default or cannoli")
	flagSet.StringVar(&cfg.device, "device", "", "evdev device to read buttons from (sdl backend, Linux only)")
	flagSet.StringVar(&cfg.logPath, "log-path", "", "also write JSON log records to this file")
	flagSet.StringVar(&cfg.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flagSet.BoolVar(&cfg.debug, "debug", false, "log list box and host internals")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	if cfg.logPath != "" {
		listbox.SetLogPath(cfg.logPath)
	}
	if cfg.logLevel != "" {
		listbox.SetRawLogLevel(cfg.logLevel)
	}
	if cfg.debug {
		listbox.SetDiagnosticsLevel(slog.LevelDebug)
	}
	defer listbox.CloseLogger()

	library, err := loadLibrary(cfg.libraryPath)
	if err != nil {
		return err
	}

	cat, err := newCatalog(localeTag(cfg.lang), cfg.query, library)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.backend {
	case "term":
		return runTerminal(ctx, cfg, cat)
	case "sdl":
		return runSDL(ctx, cfg, cat)
	default:
		return fmt.Errorf("unknown backend %q (want term or sdl)", cfg.backend)
	}
}

// settings reads the settings file, or returns base when none was given.
func settings(cfg config, base listbox.Settings) (listbox.Settings, error) {
	if cfg.settingsPath == "" {
		return base, nil
	}
	return listbox.LoadSettings(cfg.settingsPath)
}

func runTerminal(ctx context.Context, cfg config, cat *catalog) error {
	s, err := settings(cfg, termhost.Settings())
	if err != nil {
		return err
	}

	box := listbox.New(listbox.Options{Settings: &s})
	defer box.Destroy()
	cat.populate(box, terminalRows)

	err = termhost.Run(ctx, box)
	if errors.Is(err, context.Canceled) || errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

var terminalRows = rowFactory{
	row: func(e entry) listbox.Element {
		marker := "  "
		if e.Favorite {
			marker = "★ "
		}
		return termhost.NewTextRow(marker + e.Title)
	},
	header: func(text string) listbox.Element {
		return termhost.NewHeaderRow(text)
	},
}

func runSDL(ctx context.Context, cfg config, cat *catalog) error {
	s, err := settings(cfg, listbox.DefaultSettings())
	if err != nil {
		return err
	}

	device := cfg.device
	switch cfg.theme {
	case "default":
	case "cannoli":
		sdlhost.SetTheme(cannoli.Theme(sdlhost.GetTheme().FontPath))
		if device == "" {
			device = cannoli.DefaultDevicePath
		}
	default:
		return fmt.Errorf("unknown theme %q (want default or cannoli)", cfg.theme)
	}

	err = sdlhost.Init(sdlhost.Options{
		WindowTitle: cat.windowTitle(),
		WindowOptions: sdlhost.WindowOptions{
			Resizable: constants.IsDevMode(),
		},
		Debug: cfg.debug,
	})
	if err != nil {
		return err
	}
	defer sdlhost.Close()

	w, h := sdlhost.GetWindow().Size()
	listbox.GetLogger().Info("Window opened", "width", w, "height", h, "theme", cfg.theme)

	box := listbox.New(listbox.Options{Settings: &s})
	defer cat.release()
	defer box.Destroy()
	cat.populate(box, sdlRows)

	app := sdlhost.NewApp(box)
	if device != "" {
		input, err := sdlhost.WatchDevice(device)
		if err != nil {
			listbox.GetLogger().Warn("Continuing without input device", "path", device, "error", err)
		} else {
			app.AddDevice(input)
		}
	}

	err = app.Run(ctx)
	if errors.Is(err, sdlhost.ErrCancelled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

var sdlRows = rowFactory{
	row: func(e entry) listbox.Element {
		icon := constants.IconFile
		if e.Favorite {
			icon = constants.IconStar
		}
		return sdlhost.NewLabel(e.Title).WithIcon(icon)
	},
	header: func(text string) listbox.Element {
		return sdlhost.NewHeader(text)
	},
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `listbox-demo shows a game library in a list box.

Games are grouped by platform under localized headers, sorted by title in
the chosen language and filtered by --query.

Keys: arrows move, Ctrl+arrows move the cursor only, Ctrl+Space toggles
the selection, Enter activates, Home/End/PageUp/PageDown jump. In the
terminal q quits; in the SDL window Escape or the B button backs out.

Usage:
  listbox-demo [flags]

Examples:
  # Browse the built-in library in the terminal
  listbox-demo

  # German headers and collation, only games matching "met"
  listbox-demo --lang de --query met

  # SDL window with the Cannoli theme and handheld buttons
  listbox-demo --backend sdl --theme cannoli

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
