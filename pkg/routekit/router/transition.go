package router

import "github.com/google/uuid"

// TransitionKind identifies a presentation transition style.
type TransitionKind int

const (
	TransitionZoom TransitionKind = iota + 1 // Zoom from a matched source element
)

// Namespace scopes transition source IDs, so the same source ID can be used
// on different screens without matching each other.
type Namespace string

// NewNamespace returns a unique namespace token.
func NewNamespace() Namespace {
	return Namespace(uuid.NewString())
}

// Transition is a presentation hint. The router only stores it; adapters
// that support the style apply it when rendering the presented node.
type Transition struct {
	Kind      TransitionKind
	SourceID  string
	Namespace Namespace
}

// Zoom returns a zoom transition from the element sourceID in namespace.
func Zoom(sourceID string, namespace Namespace) *Transition {
	return &Transition{
		Kind:      TransitionZoom,
		SourceID:  sourceID,
		Namespace: namespace,
	}
}
