package router

import "log/slog"

// DismissOption selects how far Dismiss unwinds.
type DismissOption int

const (
	// ToPreviousView dismisses only the top-most presentation: an alert,
	// a sheet or a pushed page. It is the zero value.
	ToPreviousView DismissOption = iota
	// ToRoot dismisses everything until the root node is current.
	ToRoot
	// ToNavigationBegin dismisses everything until the nearest path node
	// (a sheet or the root) is current.
	ToNavigationBegin
)

func (o DismissOption) String() string {
	switch o {
	case ToPreviousView:
		return "toPreviousView"
	case ToRoot:
		return "toRoot"
	case ToNavigationBegin:
		return "toNavigationBegin"
	default:
		return "unknown"
	}
}

// NavigationType selects how Navigate presents a destination.
type NavigationType int

const (
	NavigationPush  NavigationType = iota // Horizontal navigation on the nearest path
	NavigationSheet                       // Modal presentation with its own path
)

func (t NavigationType) String() string {
	switch t {
	case NavigationPush:
		return "push"
	case NavigationSheet:
		return "sheet"
	default:
		return "unknown"
	}
}

type presentation struct {
	transition *Transition
	onDismiss  func()
}

// PresentOption configures a single Push, Sheet or Navigate call.
type PresentOption func(*presentation)

// WithTransition attaches a transition hint for the rendering adapter.
func WithTransition(t *Transition) PresentOption {
	return func(p *presentation) {
		p.transition = t
	}
}

// WithOnDismiss registers fn to run once when the presentation is removed.
func WithOnDismiss(fn func()) PresentOption {
	return func(p *presentation) {
		p.onDismiss = fn
	}
}

func collectPresentation(opts []PresentOption) presentation {
	var p presentation
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Option configures a Router.
type Option func(*Router)

// WithLogger replaces the internal routekit logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}
