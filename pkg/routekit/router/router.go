package router

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/routekit/pkg/routekit/internal"
)

// Router owns the navigation tree and runs navigation commands against its
// current node.
//
// A Router is not safe for concurrent use. All commands and pop
// notifications are expected on the goroutine that drives rendering.
// Construct one per application root and pass it to the screens that need it.
type Router struct {
	root    *Node
	current *Node

	// Multi-step dismissal in flight, consumed once its target is current.
	pending    DismissOption
	hasPending bool

	// Depth of Dismiss calls on the stack and whether a pop notification
	// arrived during the current step.
	dispatching int
	resume      bool

	logger *slog.Logger
}

// New creates a Router whose current node is a fresh root with an empty path.
func New(opts ...Option) *Router {
	r := &Router{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = internal.GetInternalLogger()
	}
	r.root = newRootNode(r)
	r.current = r.root
	return r
}

// Root returns the root node. It exists for the lifetime of the router.
func (r *Router) Root() *Node {
	return r.root
}

// Current returns the deepest active presentation.
func (r *Router) Current() *Node {
	return r.current
}

// PathNode returns the nearest node at or above the current node that owns a path.
func (r *Router) PathNode() *Node {
	return pathNodeOf(r.current)
}

// PendingDismissal returns the multi-step dismissal waiting for its next
// pop notification, if any.
func (r *Router) PendingDismissal() (DismissOption, bool) {
	return r.pending, r.hasPending
}

// Depth returns the number of presentations above the root.
func (r *Router) Depth() int {
	depth := 0
	for n := r.current; n.previous != nil; n = n.previous {
		depth++
	}
	return depth
}

// Chain returns the nodes from the root to the current node.
func (r *Router) Chain() []*Node {
	var chain []*Node
	for n := r.current; n != nil; n = n.previous {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// pathNodeOf walks up from n to the first node that owns a path.
func pathNodeOf(n *Node) *Node {
	for n.path == nil {
		if n.previous == nil {
			panic(fmt.Sprintf("router: %s has no path node above it", n))
		}
		n = n.previous
	}
	return n
}

// Navigate presents destination using the given navigation type.
func (r *Router) Navigate(destination Destination, typ NavigationType, opts ...PresentOption) {
	switch typ {
	case NavigationPush:
		r.Push(destination, opts...)
	case NavigationSheet:
		r.Sheet(destination, opts...)
	default:
		panic(fmt.Sprintf("router: unknown navigation type %d", typ))
	}
}

// Push appends destination to the nearest path and makes the new node current.
func (r *Router) Push(destination Destination, opts ...PresentOption) {
	mustPresentable(destination)
	p := collectPresentation(opts)

	pathNode := pathNodeOf(r.current)
	pathNode.pushDestination(destination)

	node := newNode(r.current, destination, false, p, r)
	r.current = node
	r.clearPending()

	r.logger.Debug("Pushed destination",
		"destination", destination.ID(),
		"node", node.ID(),
		"path_node", pathNode.ID(),
		"path_len", pathNode.path.Len())

	pathNode.markDirty()
}

// Sheet presents destination modally from the current node. The sheet gets
// its own empty path, so pushes inside it never touch the presenter's path.
func (r *Router) Sheet(destination Destination, opts ...PresentOption) {
	mustPresentable(destination)
	p := collectPresentation(opts)

	presenter := r.current
	presenter.sheetItem = destination

	node := newNode(presenter, destination, true, p, r)
	r.current = node
	r.clearPending()

	r.logger.Debug("Presented sheet",
		"destination", destination.ID(),
		"node", node.ID(),
		"presenter", presenter.ID())

	presenter.markDirty()
}

// ShowAlert presents alert from the current node, replacing any alert the
// node already shows.
func (r *Router) ShowAlert(alert Alert) {
	if alert == nil {
		return
	}
	r.current.alert = alert
	r.logger.Debug("Showing alert", "node", r.current.ID(), "title", alert.Title())
	r.current.markDirty()
}

// ShowTextAlert presents a TextAlert from the current node.
func (r *Router) ShowTextAlert(title, message string, actions ...AlertAction) {
	r.ShowAlert(NewTextAlert(title, message, actions...))
}

// Dismiss removes presentations according to option.
//
// ToPreviousView removes one level: the current node's alert, the presenter's
// alert, the sheet the current node lives in, or the top path entry, in that
// order. ToRoot and ToNavigationBegin repeat that step, one pop notification
// at a time, until their target node is current. Dismissing toward a target
// that is already current does nothing.
func (r *Router) Dismiss(option DismissOption) {
	if option == ToPreviousView {
		r.clearPending()
	} else {
		r.pending, r.hasPending = option, true
	}

	r.dispatching++
	defer func() { r.dispatching-- }()

	for {
		if option != ToPreviousView {
			if !r.hasPending {
				// Consumed or superseded by a command from a dismiss callback
				return
			}
			option = r.pending
			if r.reached(option) {
				r.logger.Debug("Dismissal target reached", "option", option.String(), "node", r.current.ID())
				r.clearPending()
				return
			}
		}

		r.resume = false
		kind := r.step()

		if option == ToPreviousView {
			return
		}

		switch kind {
		case stepNone:
			r.clearPending()
			return
		case stepPopped:
			if !r.resume {
				// Continued by the next pop notification
				return
			}
		case stepAlert:
			// Alerts send no notification, keep unwinding here
		}
	}
}

func (r *Router) reached(option DismissOption) bool {
	switch option {
	case ToRoot:
		return r.current == r.root
	case ToNavigationBegin:
		return r.current.path != nil
	default:
		return false
	}
}

type stepKind int

const (
	stepNone   stepKind = iota // Nothing left to remove
	stepAlert                  // An alert was cleared
	stepPopped                 // A sheet or path entry was removed
)

// step removes exactly one level of presentation from the current node.
func (r *Router) step() stepKind {
	cur := r.current
	if cur.alert != nil {
		r.logger.Debug("Dismissing alert", "node", cur.ID())
		cur.CloseAlert()
		return stepAlert
	}

	prev := cur.previous
	if prev != nil && prev.alert != nil {
		r.logger.Debug("Dismissing alert", "node", prev.ID())
		prev.CloseAlert()
		return stepAlert
	}

	if prev != nil && cur.path != nil && !prev.sheetItem.IsZero() {
		r.logger.Debug("Dismissing sheet", "node", cur.ID(), "presenter", prev.ID())
		prev.CloseSheet()
		return stepPopped
	}

	pathNode := pathNodeOf(cur)
	if pathNode.PopPath(1) == 0 {
		r.logger.Debug("Nothing to dismiss", "node", cur.ID())
		return stepNone
	}
	return stepPopped
}

func (r *Router) clearPending() {
	r.pending, r.hasPending = ToPreviousView, false
}

// Presentation is a resolved destination ready for rendering.
type Presentation struct {
	Node       *Node
	Content    any
	Transition *Transition
}

// Lookup finds the active node presenting destination, searching from the
// current node toward the root. When a destination is presented more than
// once, the deepest node wins.
func (r *Router) Lookup(destination Destination) (*Node, error) {
	if !destination.IsZero() {
		for n := r.current; n != nil; n = n.previous {
			if n.destination.Equal(destination) {
				return n, nil
			}
		}
	}
	return nil, NewDesyncError("resolve", destination, ErrNotRequested)
}

// Resolve produces the content of destination together with the node that
// presents it. Asking for a destination the router does not present means
// the adapter and router are out of sync; Resolve panics with a *DesyncError.
func (r *Router) Resolve(destination Destination) Presentation {
	node, err := r.Lookup(destination)
	if err != nil {
		r.logger.Error("Adapter and router out of sync", "destination", destination.ID(), "error", err)
		panic(err)
	}
	return Presentation{
		Node:       node,
		Content:    destination.Content(),
		Transition: node.transition,
	}
}

func mustPresentable(d Destination) {
	if d.IsZero() {
		panic("router: cannot present the zero Destination")
	}
}
