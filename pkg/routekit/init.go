// Package routekit provides declarative navigation for applications with a
// tree of presented screens: pushed pages, modal sheets and alerts.
//
// The navigation state lives in the router subpackage. This package wires
// up the ambient pieces around it: logging and localization.
package routekit

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/routekit/pkg/routekit/constants"
	"github.com/BrandonKowalski/routekit/pkg/routekit/internal"
	"github.com/BrandonKowalski/routekit/pkg/routekit/router"
)

// Options configures routekit initialization.
type Options struct {
	LogPath          string // Full path for the log file including filename (creates parent directories)
	LogLevel         string // Application logger level: debug, info, warn or error
	InternalLogLevel string // Level of routekit's own logger
	Console          bool   // Also write log records to stderr
	LogMaxSizeMB     int    // Rotate the log file after this many megabytes
	LogMaxBackups    int    // Rotated log files to keep
	LogMaxAgeDays    int    // Days to keep rotated log files
	Language         string // BCP 47 tag for built-in strings such as the default alert action
}

// Init configures logging and localization. Call it before creating routers
// so they pick up the configured logger.
// If ROUTEKIT_DEBUG is set, routekit's own logger runs at debug level.
// ENVIRONMENT=DEV does the same and also logs to the console.
func Init(options Options) error {
	options = applyEnvironment(options)
	internal.ConfigureLogging(internal.LogSettings{
		Path:       options.LogPath,
		Console:    options.Console,
		MaxSizeMB:  options.LogMaxSizeMB,
		MaxBackups: options.LogMaxBackups,
		MaxAgeDays: options.LogMaxAgeDays,
	})

	internal.SetRawLogLevel(options.LogLevel)
	if options.InternalLogLevel != "" {
		internal.SetInternalLogLevel(internal.ParseLevel(options.InternalLogLevel))
	}

	if options.Language == "" {
		return nil
	}
	if err := internal.SetLanguage(options.Language); err != nil {
		internal.GetInternalLogger().Error("Failed to set language", "language", options.Language, "error", err)
		return err
	}
	return nil
}

// applyEnvironment layers the environment variable overrides onto options.
func applyEnvironment(options Options) Options {
	if constants.IsDevMode() {
		options.Console = true
		options.InternalLogLevel = slog.LevelDebug.String()
	}
	if os.Getenv(constants.DebugEnvVar) != "" {
		options.InternalLogLevel = slog.LevelDebug.String()
	}
	if env := os.Getenv(constants.LanguageEnvVar); env != "" {
		options.Language = env
	}
	return options
}

// Close flushes and closes the log file.
// Must be called before program exit.
func Close() {
	internal.CloseLogger()
}

// NewRouter creates a router that logs through routekit's internal logger.
func NewRouter(opts ...router.Option) *router.Router {
	return router.New(opts...)
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

// SetLanguage switches the language of built-in strings.
func SetLanguage(lang string) error {
	return internal.SetLanguage(lang)
}

// Localize returns a built-in string in the active language.
func Localize(messageID string) string {
	return internal.Localize(messageID)
}
