// Package router provides declarative navigation state for UI adapters.
//
// The router keeps a tree of navigation nodes describing what is presented
// where: pages pushed on a path, sheets presented modally with a path of
// their own, and alerts. Application code issues commands; a rendering
// adapter observes nodes and renders them.
//
// # Basic Usage
//
//	// Destinations wrap deferred content
//	var (
//	    settings = router.NewDestination(func() any { return SettingsScreen{} })
//	    about    = router.NewDestination(func() any { return AboutScreen{} })
//	)
//
//	// One router per application root, passed to the screens that need it
//	r := router.New()
//
//	r.Push(settings, router.WithOnDismiss(func() {
//	    log.Println("settings closed")
//	}))
//	r.Sheet(about)
//	r.ShowTextAlert("Saved", "Your settings were saved")
//
//	r.Dismiss(router.ToPreviousView) // closes the alert
//	r.Dismiss(router.ToRoot)         // closes the sheet, then pops settings
//
// # Adapters
//
// An adapter renders the chain of nodes from Router.Root to Router.Current.
// It subscribes to nodes with Node.Subscribe to learn when to render again,
// and resolves each presented destination with Router.Resolve.
//
// When the user dismisses something natively (a back gesture, a sheet swiped
// away) the adapter reports it with Node.PopPath or Node.CloseSheet. These go
// through the same pop notifications the router uses for its own dismissals,
// so dismiss callbacks fire exactly once either way.
//
// # Multi-step Dismissal
//
// ToRoot and ToNavigationBegin unwind one level at a time. Each level is
// removed, its pop notification moves the current node back, and the
// notification triggers the next level until the target is current.
package router
