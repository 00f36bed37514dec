package router

// PopHandler receives pop notifications from nodes.
//
// A node notifies its handler every time its path shrinks or its sheet is
// cleared, whether the router removed it or the rendering adapter reported a
// native dismissal such as a back swipe. Router implements PopHandler.
type PopHandler interface {
	// OnPathViewPop is called after removed entries were taken off node's path.
	OnPathViewPop(node *Node, removed int)
	// OnSheetItemPop is called after presenter's sheet was cleared.
	OnSheetItemPop(presenter *Node)
}

var _ PopHandler = (*Router)(nil)

// OnPathViewPop moves the current node back one level per removed entry and
// fires the dismiss callbacks of the removed presentations.
func (r *Router) OnPathViewPop(node *Node, removed int) {
	pathNode := pathNodeOf(r.current)
	if node != pathNode {
		r.logger.Error("Path pop outside the current navigation context",
			"node", node.ID(),
			"path_node", pathNode.ID(),
			"removed", removed)
		node.markDirty()
		return
	}

	popped := make([]*Node, 0, removed)
	for i := 0; i < removed && r.current != pathNode; i++ {
		popped = append(popped, r.current)
		r.current = r.current.previous
	}

	top, _ := pathNode.path.Peek()
	r.logger.Debug("Path popped",
		"path_node", pathNode.ID(),
		"removed", removed,
		"top", top.String(),
		"current", r.current.ID())

	pathNode.markDirty()
	for _, n := range popped {
		n.fireDismiss()
	}
	r.continuePending()
}

// OnSheetItemPop makes presenter current again and fires the dismiss
// callbacks of the sheet and of everything presented inside it, deepest first.
func (r *Router) OnSheetItemPop(presenter *Node) {
	var popped []*Node
	n := r.current
	for n != nil && !(n.path != nil && n.previous == presenter) {
		popped = append(popped, n)
		n = n.previous
	}
	if n == nil {
		r.logger.Error("Sheet pop from a node that presents no active sheet",
			"presenter", presenter.ID(),
			"current", r.current.ID())
		presenter.markDirty()
		return
	}
	popped = append(popped, n)

	r.current = presenter
	for _, p := range popped {
		// Sheets stacked inside the closed one go with it
		p.sheetItem = Destination{}
	}

	r.logger.Debug("Sheet popped",
		"sheet", n.ID(),
		"presenter", presenter.ID(),
		"dismissed", len(popped))

	presenter.markDirty()
	for _, p := range popped {
		p.fireDismiss()
	}
	r.continuePending()
}

// continuePending drives the next step of a multi-step dismissal. While a
// Dismiss call is on the stack it only asks that call to loop again.
func (r *Router) continuePending() {
	if !r.hasPending {
		return
	}
	if r.dispatching > 0 {
		r.resume = true
		return
	}
	r.Dismiss(r.pending)
}
