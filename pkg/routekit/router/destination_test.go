package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDestination_Identity(t *testing.T) {
	content := func() any { return "same" }
	a := NewDestination(content)
	b := NewDestination(content)

	require.NotZero(t, a.ID())
	require.False(t, a.Equal(b), "equal content must not make destinations equal")
	require.True(t, a.Equal(a))

	seen := map[uint64]Destination{a.ID(): a, b.ID(): b}
	require.Len(t, seen, 2)
}

func TestDestination_DeferredContent(t *testing.T) {
	calls := 0
	d := NewDestination(func() any {
		calls++
		return calls
	})
	require.Equal(t, 0, calls)

	require.Equal(t, 1, d.Content())
	require.Equal(t, 2, d.Content(), "content runs on every call")
}

func TestDestination_Zero(t *testing.T) {
	var d Destination
	require.True(t, d.IsZero())
	require.Nil(t, d.Content())
	require.Equal(t, "destination(none)", d.String())

	withoutContent := NewDestination(nil)
	require.False(t, withoutContent.IsZero())
	require.Nil(t, withoutContent.Content())
}

func TestPath(t *testing.T) {
	p := newPath()
	require.True(t, p.IsEmpty())
	_, ok := p.Peek()
	require.False(t, ok)

	a, b, c := dest("a"), dest("b"), dest("c")
	p.push(a)
	p.push(b)
	p.push(c)
	require.Equal(t, 3, p.Len())
	top, ok := p.Peek()
	require.True(t, ok)
	require.True(t, top.Equal(c))
	require.Equal(t, []uint64{a.ID(), b.ID(), c.ID()}, ids(p.Entries()...))

	entries := p.Entries()
	entries[0] = c
	first := p.Entries()[0]
	require.True(t, first.Equal(a), "Entries returns a copy")

	tests := []struct {
		name    string
		n       int
		removed int
		left    int
	}{
		{"negative", -1, 0, 3},
		{"zero", 0, 0, 3},
		{"one", 1, 1, 2},
		{"more than left", 5, 2, 0},
		{"empty", 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.removed, p.truncate(tt.n))
			require.Equal(t, tt.left, p.Len())
		})
	}
}
