// Package tui renders a router's navigation state in the terminal with
// Bubble Tea.
//
// The Model draws the chain of nodes from the root to the current node:
// a breadcrumb per navigation context, a frame per presented sheet, and the
// current node's alert. The back key plays the role of a native dismiss
// gesture: it closes the alert, swipes the current sheet away, or pops the
// top page, and reports that to the router through the node it changed.
package tui

import (
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/routekit/pkg/routekit/constants"
	"github.com/BrandonKowalski/routekit/pkg/routekit/internal"
	"github.com/BrandonKowalski/routekit/pkg/routekit/router"
)

// Model is a tea.Model bound to one router.
type Model struct {
	router *router.Router
	root   Screen
	logger *slog.Logger

	// Resolved content and subscriptions, keyed by node ID
	screens     map[uint64]Screen
	unsubscribe map[uint64]func()

	chain []*router.Node
	dirty bool

	width  int
	height int
}

// New creates a model rendering r, with root as the content of the root node.
func New(r *router.Router, root Screen) *Model {
	if root == nil {
		root = NewMenu(internal.Localize(constants.MessageRootTitle))
	}
	m := &Model{
		router:      r,
		root:        root,
		logger:      internal.GetInternalLogger(),
		screens:     make(map[uint64]Screen),
		unsubscribe: make(map[uint64]func()),
		dirty:       true,
	}
	m.sync()
	return m
}

// Run starts a full-screen program for r and blocks until the user quits.
func Run(r *router.Router, root Screen, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(r, root), opts...).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		cmd = m.handleKey(msg.String())
	}
	m.sync()
	return m, cmd
}

func (m *Model) handleKey(key string) tea.Cmd {
	if key == "ctrl+c" {
		return tea.Quit
	}

	current := m.router.Current()
	if alert := current.Alert(); alert != nil {
		m.handleAlertKey(current, alert, key)
		return nil
	}

	k := constants.KeyFromString(key)
	m.logger.Debug("Key pressed", "key", key, "input", k.GetName(), "node", current.ID())

	switch k {
	case constants.KeyQuit:
		return tea.Quit
	case constants.KeyBack:
		m.back()
	default:
		m.screenFor(current).HandleKey(key, m.router)
	}
	return nil
}

// Alerts are modal: while one is shown it receives every key.
func (m *Model) handleAlertKey(node *router.Node, alert router.Alert, key string) {
	if key == "esc" {
		node.CloseAlert()
		return
	}

	switch a := alert.(type) {
	case AlertKeyHandler:
		if a.HandleAlertKey(key) && node.Alert() == alert {
			node.CloseAlert()
		}
	case *router.TextAlert:
		idx, err := strconv.Atoi(key)
		if err != nil {
			return
		}
		actions := a.TextActions()
		if idx < 1 || idx > len(actions) || idx > constants.DefaultMaxAlertAct {
			return
		}
		// Close first so the action can present from this node
		node.CloseAlert()
		actions[idx-1].Run()
	}
}

// back mirrors the native dismiss gesture for whatever is on top.
func (m *Model) back() {
	current := m.router.Current()
	switch {
	case current.IsRoot():
		return
	case current.IsPathNode():
		m.logger.Debug("Sheet dismissed by user", "node", current.ID())
		current.Previous().CloseSheet()
	default:
		m.logger.Debug("Page popped by user", "node", current.ID())
		m.router.PathNode().PopPath(1)
	}
}

// sync refreshes the rendered chain after a node reported a change.
func (m *Model) sync() {
	if !m.dirty {
		return
	}
	m.dirty = false
	m.chain = m.router.Chain()

	live := make(map[uint64]bool, len(m.chain))
	for _, n := range m.chain {
		live[n.ID()] = true
		if _, ok := m.unsubscribe[n.ID()]; !ok {
			m.unsubscribe[n.ID()] = n.Subscribe(m.invalidate)
		}
	}

	for id, unsubscribe := range m.unsubscribe {
		if !live[id] {
			unsubscribe()
			delete(m.unsubscribe, id)
			delete(m.screens, id)
		}
	}
}

func (m *Model) invalidate(*router.Node) {
	m.dirty = true
}

func (m *Model) screenFor(n *router.Node) Screen {
	if n.IsRoot() {
		return m.root
	}
	if s, ok := m.screens[n.ID()]; ok {
		return s
	}

	d, _ := n.Destination()
	p := m.router.Resolve(d)
	s, ok := p.Content.(Screen)
	if !ok {
		s = textScreen{content: p.Content}
	}
	m.screens[n.ID()] = s
	return s
}

func (m *Model) View() string {
	m.sync()
	current := m.router.Current()
	screen := m.screenFor(current)

	var b strings.Builder
	b.WriteString(m.breadcrumbs())
	b.WriteString("\n\n")

	body := titleStyle.Render(screen.Title()) + "\n\n" + screen.View()
	if tr := current.Transition(); tr != nil && tr.Kind == router.TransitionZoom {
		body = crumbStyle.Render("zoom from "+tr.SourceID) + "\n" + body
	}
	for i := 0; i < m.sheetLevel(); i++ {
		body = sheetStyle.Render(body)
	}
	b.WriteString(body)

	if alert := current.Alert(); alert != nil {
		b.WriteString("\n")
		b.WriteString(renderAlert(alert))
	}

	help := internal.Localize(constants.MessageBackHint) + " • " + internal.Localize(constants.MessageQuitHint)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func (m *Model) sheetLevel() int {
	level := 0
	for _, n := range m.chain {
		if n.IsPathNode() && !n.IsRoot() {
			level++
		}
	}
	return level
}

// breadcrumbs renders one segment per navigation context.
func (m *Model) breadcrumbs() string {
	var b strings.Builder
	for i, n := range m.chain {
		switch {
		case n.IsRoot():
			b.WriteString(internal.Localize(constants.MessageRootTitle) + ": " + m.root.Title())
			continue
		case n.IsPathNode():
			b.WriteString(" ┃ " + internal.Localize(constants.MessageSheetLabel) + ": ")
		default:
			b.WriteString(" › ")
		}
		title := m.screenFor(n).Title()
		if i == len(m.chain)-1 {
			b.WriteString(title)
		} else {
			b.WriteString(crumbStyle.Render(title))
		}
	}
	return b.String()
}
