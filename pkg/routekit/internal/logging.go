package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/BrandonKowalski/routekit/pkg/routekit/constants"
)

// LogSettings controls where log records go. Zero values fall back to the
// defaults in the constants package.
type LogSettings struct {
	Path       string
	Console    bool
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	settings LogSettings

	setupOnce sync.Once
	rotator   *lumberjack.Logger
	output    io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// ConfigureLogging sets the log destination. It only has an effect before
// the first logger is requested.
func ConfigureLogging(s LogSettings) {
	settings = s
}

func setup() {
	setupOnce.Do(func() {
		path := settings.Path
		if env := os.Getenv(constants.LogPathEnvVar); env != "" {
			path = env
		}
		if path == "" {
			path = constants.DefaultLogPath
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			// No writable log directory, stderr only
			output = os.Stderr
			return
		}

		rotator = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    orDefault(settings.MaxSizeMB, constants.DefaultLogMaxSize),
			MaxBackups: orDefault(settings.MaxBackups, constants.DefaultLogBackups),
			MaxAge:     orDefault(settings.MaxAgeDays, constants.DefaultLogMaxAge),
		}

		if settings.Console {
			output = io.MultiWriter(os.Stderr, rotator)
		} else {
			output = rotator
		}
	})
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func newLogger(lv *slog.LevelVar) *slog.Logger {
	setup()
	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level:     lv,
		AddSource: false,
	}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger routekit itself writes to. It is
// separate from the application logger so the two can run at different levels.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)
		internalLogger = newLogger(internalLevelVar).With("component", "routekit")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if rotator != nil {
		rotator.Close()
	}
}
