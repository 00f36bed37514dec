package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingHandler captures pop notifications without reacting to them.
type recordingHandler struct {
	pathPops  []int
	sheetPops []*Node
}

func (h *recordingHandler) OnPathViewPop(_ *Node, removed int) {
	h.pathPops = append(h.pathPops, removed)
}

func (h *recordingHandler) OnSheetItemPop(presenter *Node) {
	h.sheetPops = append(h.sheetPops, presenter)
}

func TestNode_PopNotifications(t *testing.T) {
	h := &recordingHandler{}
	root := newRootNode(h)

	root.pushDestination(dest("a"))
	root.pushDestination(dest("b"))
	require.Empty(t, h.pathPops, "growth is not a pop")

	require.Equal(t, 2, root.PopPath(2))
	require.Equal(t, []int{2}, h.pathPops)

	require.Equal(t, 0, root.PopPath(1))
	require.Equal(t, []int{2}, h.pathPops, "no shrink, no notification")

	root.sheetItem = dest("sheet")
	require.True(t, root.CloseSheet())
	require.False(t, root.CloseSheet())
	require.Equal(t, []*Node{root}, h.sheetPops)
}

func TestNode_CloseAlert(t *testing.T) {
	h := &recordingHandler{}
	root := newRootNode(h)
	dirty := 0
	root.Subscribe(func(*Node) { dirty++ })

	require.False(t, root.CloseAlert())
	root.alert = NewTextAlert("title", "")
	require.True(t, root.CloseAlert())
	require.Nil(t, root.Alert())
	require.Equal(t, 1, dirty)
	require.Empty(t, h.sheetPops)
	require.Empty(t, h.pathPops)
}

func TestNode_Subscribe(t *testing.T) {
	n := newRootNode(nil)
	var calls []string

	unsubA := n.Subscribe(func(*Node) { calls = append(calls, "a") })
	var unsubB func()
	unsubB = n.Subscribe(func(*Node) {
		calls = append(calls, "b")
		unsubB()
	})
	n.Subscribe(func(*Node) { calls = append(calls, "c") })

	n.markDirty()
	require.Equal(t, []string{"a", "b", "c"}, calls)

	calls = nil
	unsubA()
	unsubA()
	n.markDirty()
	require.Equal(t, []string{"c"}, calls)
}

func TestNode_PushWithoutPathPanics(t *testing.T) {
	root := newRootNode(nil)
	child := newNode(root, dest("child"), false, presentation{}, nil)

	require.Panics(t, func() { child.pushDestination(dest("x")) })
	require.Equal(t, 0, child.PopPath(1))
}

func TestNode_String(t *testing.T) {
	root := newRootNode(nil)
	pushed := newNode(root, dest("p"), false, presentation{}, nil)
	sheet := newNode(root, dest("s"), true, presentation{}, nil)

	require.Contains(t, root.String(), "root")
	require.Contains(t, pushed.String(), "push")
	require.Contains(t, sheet.String(), "sheet")
}
