package tui

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/routekit/pkg/routekit/constants"
	"github.com/BrandonKowalski/routekit/pkg/routekit/router"
)

// Screen is destination content the terminal adapter knows how to render.
// Destinations whose content is not a Screen are shown as plain text.
type Screen interface {
	Title() string
	View() string
	// HandleKey receives keys the adapter did not consume itself.
	HandleKey(key string, r *router.Router)
}

// MenuItem is one selectable entry of a Menu.
type MenuItem struct {
	Text   string
	Action func(r *router.Router) // Runs when the item is selected; may be nil
}

// Menu is a Screen with a body and a vertical list of actions.
type Menu struct {
	title  string
	body   func() string
	items  []MenuItem
	cursor int
}

// NewMenu creates a menu screen.
func NewMenu(title string, items ...MenuItem) *Menu {
	return &Menu{
		title: title,
		items: items,
	}
}

// WithBody sets a function producing the text shown above the items.
// It runs on every render so it can reflect changing state.
func (m *Menu) WithBody(body func() string) *Menu {
	m.body = body
	return m
}

func (m *Menu) Title() string {
	return m.title
}

// Cursor returns the index of the focused item.
func (m *Menu) Cursor() int {
	return m.cursor
}

func (m *Menu) View() string {
	var b strings.Builder
	if m.body != nil {
		if body := m.body(); body != "" {
			b.WriteString(body)
			b.WriteString("\n\n")
		}
	}
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("▸ " + item.Text))
		} else {
			b.WriteString("  " + item.Text)
		}
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Menu) HandleKey(key string, r *router.Router) {
	if len(m.items) == 0 {
		return
	}
	switch constants.KeyFromString(key) {
	case constants.KeyUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
	case constants.KeyDown:
		m.cursor = (m.cursor + 1) % len(m.items)
	case constants.KeySelect:
		if action := m.items[m.cursor].Action; action != nil {
			action(r)
		}
	}
}

// textScreen renders content that is not a Screen.
type textScreen struct {
	content any
}

func (s textScreen) Title() string {
	return fmt.Sprintf("%T", s.content)
}

func (s textScreen) View() string {
	return fmt.Sprint(s.content)
}

func (s textScreen) HandleKey(string, *router.Router) {}
