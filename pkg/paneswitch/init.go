// Package paneswitch provides single-active-view navigation for applications built
// from mutually exclusive screens or panes.
//
// The navigation subpackage holds the controller itself. The remaining packages wire
// it to descriptor files (config), localized titles (titles), hardware buttons (input)
// and a drawable tab bar (tabbar).
package paneswitch

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/constants"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/internal"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/platform/cannoli"
)

// Options configures logging and theming for paneswitch.
type Options struct {
	LogPath              string // Full path for log file including filename (creates parent directories)
	LogLevel             string // Application log level name ("debug", "info", "warn", "error")
	Debug                bool   // Report transitions from paneswitch packages at debug level
	PrimaryThemeColorHex uint32 // Custom accent color for the tab bar
}

// Init applies options. Call it before creating controllers: the log file is
// opened when the first logger is created.
// The LOG_LEVEL environment variable, when set, overrides options.LogLevel.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	internal.SetRawLogLevel(level)

	if options.Debug || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := cannoli.InitCannoliTheme()
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
