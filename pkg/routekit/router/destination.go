package router

import (
	"fmt"

	"github.com/BrandonKowalski/routekit/pkg/routekit/internal"
)

// ContentFunc produces the renderable content of a destination.
// What "renderable" means is up to the rendering adapter.
type ContentFunc func() any

// Destination is an identity-bearing reference to deferred content.
//
// Two destinations are equal only if they are the same destination, even if
// their content functions produce identical content. Use ID as a map key or
// reconciliation key.
type Destination struct {
	id      uint64
	content ContentFunc
}

// NewDestination captures content without calling it. The function runs each
// time Content is called, usually when an adapter renders the destination.
func NewDestination(content ContentFunc) Destination {
	return Destination{
		id:      internal.NextDestinationID(),
		content: content,
	}
}

// ID returns the destination's identity. It is never zero for a destination
// created with NewDestination.
func (d Destination) ID() uint64 {
	return d.id
}

// IsZero reports whether d is the zero Destination (no destination).
func (d Destination) IsZero() bool {
	return d.id == 0
}

// Equal reports whether d and other are the same destination.
func (d Destination) Equal(other Destination) bool {
	return d.id == other.id
}

// Content invokes the content function. It returns nil for a destination
// without one.
func (d Destination) Content() any {
	if d.content == nil {
		return nil
	}
	return d.content()
}

func (d Destination) String() string {
	if d.IsZero() {
		return "destination(none)"
	}
	return fmt.Sprintf("destination(%d)", d.id)
}
