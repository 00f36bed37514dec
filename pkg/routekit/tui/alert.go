package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BrandonKowalski/routekit/pkg/routekit/constants"
	"github.com/BrandonKowalski/routekit/pkg/routekit/internal"
	"github.com/BrandonKowalski/routekit/pkg/routekit/router"
)

// AlertKeyHandler is implemented by custom alerts that take keyboard input.
// Keys other than esc and ctrl+c go to the alert while it is shown.
type AlertKeyHandler interface {
	// HandleAlertKey returns true once the alert is done and should close.
	HandleAlertKey(key string) bool
}

// PromptAlert is a custom alert with a single line of text input.
type PromptAlert struct {
	title    string
	message  string
	input    []rune
	onSubmit func(string)
}

var (
	_ router.Alert    = (*PromptAlert)(nil)
	_ AlertKeyHandler = (*PromptAlert)(nil)
)

// NewPromptAlert creates a prompt. onSubmit receives the text when enter is pressed.
func NewPromptAlert(title, message string, onSubmit func(string)) *PromptAlert {
	return &PromptAlert{
		title:    title,
		message:  message,
		onSubmit: onSubmit,
	}
}

func (a *PromptAlert) Title() string {
	return a.title
}

func (a *PromptAlert) Message() any {
	return a.message
}

// Actions returns the text typed so far.
func (a *PromptAlert) Actions() any {
	return string(a.input)
}

func (a *PromptAlert) HandleAlertKey(key string) bool {
	switch key {
	case "enter":
		if a.onSubmit != nil {
			a.onSubmit(string(a.input))
		}
		return true
	case "backspace":
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	default:
		if utf8.RuneCountInString(key) == 1 {
			a.input = append(a.input, []rune(key)...)
		}
	}
	return false
}

func renderAlert(alert router.Alert) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(alert.Title()))

	switch a := alert.(type) {
	case *router.TextAlert:
		if text := a.Text(); text != "" {
			b.WriteString("\n" + text)
		}
		b.WriteString("\n")
		for i, action := range a.TextActions() {
			if i >= constants.DefaultMaxAlertAct {
				break
			}
			label := fmt.Sprintf("[%d] %s", i+1, action.Title)
			switch action.Role {
			case router.RoleDestructive:
				label = destructiveStyle.Render(label)
			case router.RoleCancel:
				label = cancelStyle.Render(label)
			}
			b.WriteString("\n" + label)
		}
		b.WriteString("\n" + crumbStyle.Render(internal.Localize(constants.MessageActionPrompt)))

	case *PromptAlert:
		if msg, _ := a.Message().(string); msg != "" {
			b.WriteString("\n" + msg)
		}
		b.WriteString("\n> " + a.Actions().(string) + "_")

	default:
		if msg := alert.Message(); msg != nil {
			b.WriteString("\n" + fmt.Sprint(msg))
		}
	}

	return alertStyle.Render(b.String())
}
