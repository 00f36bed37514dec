// Package constants defines shared constants, types, and configuration values
// used throughout routekit.
package constants

import "os"

// EnvironmentEnvVar selects the runtime environment. Development turns on
// console logging and debug output from the router.
const (
	EnvironmentEnvVar = "ENVIRONMENT"
	Development       = "DEV"
)

// DebugEnvVar raises the internal router logger to debug level when set.
const DebugEnvVar = "ROUTEKIT_DEBUG"

// LogPathEnvVar overrides the configured log file path.
const LogPathEnvVar = "ROUTEKIT_LOG_FILE"

// LanguageEnvVar overrides the configured UI language.
const LanguageEnvVar = "ROUTEKIT_LANG"

// IsDevMode reports whether ENVIRONMENT is set to DEV.
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Default logging and locale values.
const (
	DefaultLogPath     = "logs/routekit.log"
	DefaultLogMaxSize  = 1  // megabytes
	DefaultLogBackups  = 2  // rotated files kept
	DefaultLogMaxAge   = 30 // days
	DefaultLanguage    = "en"
	DefaultConfigFile  = "routekit.toml"
	DefaultMaxAlertAct = 9 // numbered actions selectable from the keyboard
)

// Message IDs for localized strings.
const (
	MessageAlertOK      = "alert_ok"
	MessageBackHint     = "hint_back"
	MessageQuitHint     = "hint_quit"
	MessageRootTitle    = "root_title"
	MessageSheetLabel   = "sheet_label"
	MessageActionPrompt = "alert_action_prompt"
)

// Key represents an abstract navigation input, mapped from terminal key strings.
type Key int

const (
	KeyUnassigned Key = iota
	KeyBack
	KeyQuit
	KeyUp
	KeyDown
	KeySelect
)

// GetName returns the key's name as it appears in logs.
func (k Key) GetName() string {
	switch k {
	case KeyUnassigned:
		return "Unassigned"
	case KeyBack:
		return "Back"
	case KeyQuit:
		return "Quit"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// KeyFromString maps a Bubble Tea key string to a Key.
func KeyFromString(s string) Key {
	switch s {
	case "esc", "backspace", "left", "h":
		return KeyBack
	case "ctrl+c", "q":
		return KeyQuit
	case "up", "k":
		return KeyUp
	case "down", "j":
		return KeyDown
	case "enter", " ", "right", "l":
		return KeySelect
	default:
		return KeyUnassigned
	}
}
