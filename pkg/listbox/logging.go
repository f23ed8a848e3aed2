package listbox

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/listbox/pkg/listbox/internal"
)

// GetLogger returns the application logger. Its level comes from the
// LISTBOX_LOG_LEVEL environment variable and defaults to info.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel changes the application logger level.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug",
// "info", "error"). Unknown names mean info.
func SetRawLogLevel(level string) {
	internal.SetLogLevel(internal.ParseLevel(level))
}

// SetDiagnosticsLevel changes the level of the list box's own diagnostics.
// Rejected calls are logged at warn.
func SetDiagnosticsLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetLogPath additionally writes logs to the given file, creating parent
// directories as needed. Must be called before the first log line.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput replaces stdout as the log destination.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// CloseLogger flushes and closes the log file, if one is open.
func CloseLogger() {
	internal.CloseLogger()
}
