package router

import (
	"github.com/BrandonKowalski/routekit/pkg/routekit/constants"
	"github.com/BrandonKowalski/routekit/pkg/routekit/internal"
)

// Alert describes an alert presented from a node.
//
// Message and Actions return adapter-specific content. For TextAlert they
// return a string and a []AlertAction; custom alerts return whatever their
// adapter knows how to render.
type Alert interface {
	Title() string
	Message() any
	Actions() any
}

// ButtonRole hints how an adapter should style an alert action.
type ButtonRole int

const (
	RoleNone        ButtonRole = iota // Plain action
	RoleCancel                        // Dismissive action
	RoleDestructive                   // Action that destroys data
)

func (r ButtonRole) String() string {
	switch r {
	case RoleCancel:
		return "cancel"
	case RoleDestructive:
		return "destructive"
	default:
		return "none"
	}
}

// AlertAction is one button of a text alert. Actions have identity: two
// actions with the same title are still distinct.
type AlertAction struct {
	ID     uint64
	Title  string
	Role   ButtonRole
	Action func()
}

// NewAlertAction creates an action. action may be nil.
func NewAlertAction(title string, role ButtonRole, action func()) AlertAction {
	return AlertAction{
		ID:     internal.NextActionID(),
		Title:  title,
		Role:   role,
		Action: action,
	}
}

// Run invokes the action's callback, if any.
func (a AlertAction) Run() {
	if a.Action != nil {
		a.Action()
	}
}

// TextAlert is an alert whose title, message and actions are plain text.
type TextAlert struct {
	title   string
	message string
	actions []AlertAction
}

// NewTextAlert creates a text alert. An empty message shows no message.
// Without actions the alert gets a single "OK" action, localized in the
// language active at creation, that only dismisses it.
func NewTextAlert(title, message string, actions ...AlertAction) *TextAlert {
	if len(actions) == 0 {
		actions = []AlertAction{
			NewAlertAction(internal.Localize(constants.MessageAlertOK), RoleCancel, nil),
		}
	}
	return &TextAlert{
		title:   title,
		message: message,
		actions: actions,
	}
}

func (a *TextAlert) Title() string {
	return a.title
}

// Message returns the message string.
func (a *TextAlert) Message() any {
	return a.message
}

// Actions returns a []AlertAction.
func (a *TextAlert) Actions() any {
	return a.TextActions()
}

// Text returns the message as a string.
func (a *TextAlert) Text() string {
	return a.message
}

// TextActions returns a copy of the alert's actions.
func (a *TextAlert) TextActions() []AlertAction {
	out := make([]AlertAction, len(a.actions))
	copy(out, a.actions)
	return out
}
