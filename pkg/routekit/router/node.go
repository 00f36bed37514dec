package router

import (
	"fmt"

	"github.com/BrandonKowalski/routekit/pkg/routekit/internal"
)

// Node is one navigation context in the presentation tree.
//
// The root node and every node presented as a sheet own a Path; nodes
// created by a push do not. A node holds a non-owning link to the node that
// presented it; the Router keeps the chain alive through its current node.
//
// Adapters read a node's state to render it and report native dismissals
// through PopPath, CloseSheet and CloseAlert.
type Node struct {
	id          uint64
	destination Destination
	previous    *Node
	path        *Path
	sheetItem   Destination
	alert       Alert
	transition  *Transition
	onDismiss   func()
	dismissed   bool
	handler     PopHandler

	listeners  []nodeListener
	listenerID int
}

type nodeListener struct {
	id int
	fn func(*Node)
}

func newRootNode(handler PopHandler) *Node {
	return &Node{
		id:      internal.NextNodeID(),
		path:    newPath(),
		handler: handler,
	}
}

func newNode(previous *Node, destination Destination, withPath bool, p presentation, handler PopHandler) *Node {
	n := &Node{
		id:          internal.NextNodeID(),
		destination: destination,
		previous:    previous,
		transition:  p.transition,
		onDismiss:   p.onDismiss,
		handler:     handler,
	}
	if withPath {
		n.path = newPath()
	}
	return n
}

// ID returns the node's identity.
func (n *Node) ID() uint64 {
	return n.id
}

// Destination returns the destination this node presents. The root presents
// none and returns false.
func (n *Node) Destination() (Destination, bool) {
	return n.destination, !n.destination.IsZero()
}

// Previous returns the presenting node, or nil for the root.
func (n *Node) Previous() *Node {
	return n.previous
}

// IsRoot reports whether n is the root of its tree.
func (n *Node) IsRoot() bool {
	return n.previous == nil
}

// IsPathNode reports whether n owns a path.
func (n *Node) IsPathNode() bool {
	return n.path != nil
}

// Path returns the node's push stack, or nil if n is a plain pushed node.
func (n *Node) Path() *Path {
	return n.path
}

// SheetItem returns the destination presented modally from n, if any.
func (n *Node) SheetItem() (Destination, bool) {
	return n.sheetItem, !n.sheetItem.IsZero()
}

// Alert returns the alert presented from n, or nil.
func (n *Node) Alert() Alert {
	return n.alert
}

// Transition returns the presentation transition hint, or nil.
func (n *Node) Transition() *Transition {
	return n.transition
}

// Dismissed reports whether the node's presentation has been removed.
func (n *Node) Dismissed() bool {
	return n.dismissed
}

// Subscribe registers fn to be called whenever n is marked dirty.
// The returned function removes the subscription.
func (n *Node) Subscribe(fn func(*Node)) (unsubscribe func()) {
	n.listenerID++
	id := n.listenerID
	n.listeners = append(n.listeners, nodeListener{id: id, fn: fn})

	return func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// markDirty signals subscribers that n needs to be rendered again.
func (n *Node) markDirty() {
	// Listeners may unsubscribe while being notified
	snapshot := make([]nodeListener, len(n.listeners))
	copy(snapshot, n.listeners)
	for _, l := range snapshot {
		l.fn(n)
	}
}

// PopPath removes up to count entries from the top of n's path and reports
// the removal through the pop protocol. It returns the number of entries
// removed; zero when n has no path or the path is empty.
func (n *Node) PopPath(count int) int {
	if n.path == nil {
		return 0
	}
	removed := n.path.truncate(count)
	if removed > 0 && n.handler != nil {
		n.handler.OnPathViewPop(n, removed)
	}
	return removed
}

// CloseSheet clears the sheet presented from n and reports the removal
// through the pop protocol. It returns false if no sheet was presented.
func (n *Node) CloseSheet() bool {
	if n.sheetItem.IsZero() {
		return false
	}
	n.sheetItem = Destination{}
	if n.handler != nil {
		n.handler.OnSheetItemPop(n)
	}
	return true
}

// CloseAlert clears the alert presented from n. Alerts carry no node of their
// own, so no pop notification is sent. It returns false if no alert was shown.
func (n *Node) CloseAlert() bool {
	if n.alert == nil {
		return false
	}
	n.alert = nil
	n.markDirty()
	return true
}

func (n *Node) pushDestination(d Destination) {
	if n.path == nil {
		panic(fmt.Sprintf("router: push into node %d without a path", n.id))
	}
	n.path.push(d)
}

func (n *Node) fireDismiss() {
	if n.dismissed {
		return
	}
	n.dismissed = true
	if n.onDismiss != nil {
		n.onDismiss()
	}
}

func (n *Node) String() string {
	switch {
	case n.previous == nil:
		return fmt.Sprintf("node(%d root)", n.id)
	case n.path != nil:
		return fmt.Sprintf("node(%d sheet %s)", n.id, n.destination)
	default:
		return fmt.Sprintf("node(%d push %s)", n.id, n.destination)
	}
}
