package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrandonKowalski/listbox/pkg/listbox/constants"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logOutput io.Writer = os.Stdout

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	diagnosticsOnce   sync.Once
	diagnostics       *slog.Logger
	diagnosticsLevels = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Must be called before the
// first logger is requested to take effect.
func SetLogPath(path string) {
	logPath = path
}

// SetLogOutput replaces the destination of both loggers. Intended for tests
// and for hosts that own their own output stream.
func SetLogOutput(w io.Writer) {
	setupOnce.Do(func() {})
	logOutput = w
	loggerOnce = sync.Once{}
	diagnosticsOnce = sync.Once{}
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Console only.
			return
		}

		logFile = f
		logOutput = io.MultiWriter(os.Stdout, logFile)
	})
}

func newJSONLogger(level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		setup()
		if raw := os.Getenv(constants.LogLevelEnvVar); raw != "" {
			levelVar.Set(ParseLevel(raw))
		}
		logger = newJSONLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger used for widget diagnostics
// (usage errors, rejected settings). It defaults to Warn.
func GetInternalLogger() *slog.Logger {
	diagnosticsOnce.Do(func() {
		setup()
		diagnosticsLevels.Set(slog.LevelWarn)
		if raw := os.Getenv(constants.LogLevelEnvVar); raw != "" {
			diagnosticsLevels.Set(ParseLevel(raw))
		}
		diagnostics = newJSONLogger(diagnosticsLevels).With("component", "listbox")
	})
	return diagnostics
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	diagnosticsLevels.Set(level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
