package routekit

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/routekit/pkg/routekit/constants"
)

// Config mirrors the layout of a routekit TOML file:
//
//	[log]
//	path = "logs/demo.log"
//	level = "info"
//	internal_level = "debug"
//	console = false
//	max_size_mb = 1
//	max_backups = 2
//	max_age_days = 30
//
//	[locale]
//	language = "it"
type Config struct {
	Log    LogConfig    `toml:"log"`
	Locale LocaleConfig `toml:"locale"`
}

type LogConfig struct {
	Path          string `toml:"path"`
	Level         string `toml:"level"`
	InternalLevel string `toml:"internal_level"`
	Console       bool   `toml:"console"`
	MaxSizeMB     int    `toml:"max_size_mb"`
	MaxBackups    int    `toml:"max_backups"`
	MaxAgeDays    int    `toml:"max_age_days"`
}

type LocaleConfig struct {
	Language string `toml:"language"`
}

var validLevels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "warning": true, "error": true}

// LoadConfig reads a TOML config file and returns the Options it describes.
// Keys the file leaves out keep their defaults.
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config: %w", err)
	}
	opts, err := ParseConfig(string(data))
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// LoadConfigIfExists behaves like LoadConfig but returns DefaultOptions when
// the file does not exist.
func LoadConfigIfExists(path string) (Options, error) {
	opts, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultOptions(), nil
	}
	return opts, err
}

// ParseConfig decodes TOML config data into Options.
func ParseConfig(data string) (Options, error) {
	var cfg Config
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Options{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Options{}, err
	}
	return cfg.options(), nil
}

func (c Config) validate() error {
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if !validLevels[strings.ToLower(c.Log.InternalLevel)] {
		return fmt.Errorf("invalid internal log level %q", c.Log.InternalLevel)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New("log rotation values must not be negative")
	}
	if c.Locale.Language != "" {
		if _, err := language.Parse(c.Locale.Language); err != nil {
			return fmt.Errorf("invalid language %q: %w", c.Locale.Language, err)
		}
	}
	return nil
}

func (c Config) options() Options {
	opts := DefaultOptions()
	if c.Log.Path != "" {
		opts.LogPath = c.Log.Path
	}
	if c.Log.Level != "" {
		opts.LogLevel = c.Log.Level
	}
	if c.Log.InternalLevel != "" {
		opts.InternalLogLevel = c.Log.InternalLevel
	}
	opts.Console = c.Log.Console
	opts.LogMaxSizeMB = c.Log.MaxSizeMB
	opts.LogMaxBackups = c.Log.MaxBackups
	opts.LogMaxAgeDays = c.Log.MaxAgeDays
	if c.Locale.Language != "" {
		opts.Language = c.Locale.Language
	}
	return opts
}

// DefaultOptions returns the options used when no config is given.
func DefaultOptions() Options {
	return Options{
		LogPath:          constants.DefaultLogPath,
		LogLevel:         "info",
		InternalLogLevel: "error",
		Language:         constants.DefaultLanguage,
	}
}
