package main

import (
	"log/slog"

	"github.com/BrandonKowalski/routekit/pkg/routekit/router"
	"github.com/BrandonKowalski/routekit/pkg/routekit/tui"
)

// demo holds the destinations of the demo app. Destinations refer to each
// other, so they are built once and shared by every screen.
type demo struct {
	logger *slog.Logger
	zoom   router.Namespace
	note   string

	page2  router.Destination
	page3  router.Destination
	sheet1 router.Destination
	sheet2 router.Destination
}

func newDemo(logger *slog.Logger) *demo {
	d := &demo{
		logger: logger,
		zoom:   router.NewNamespace(),
	}
	d.page2 = router.NewDestination(func() any { return d.page2Screen() })
	d.page3 = router.NewDestination(func() any { return d.page3Screen() })
	d.sheet1 = router.NewDestination(func() any { return d.sheet1Screen() })
	d.sheet2 = router.NewDestination(func() any { return d.sheet2Screen() })
	return d
}

func (d *demo) goBack() tui.MenuItem {
	return tui.MenuItem{
		Text:   "Go back",
		Action: func(r *router.Router) { r.Dismiss(router.ToPreviousView) },
	}
}

func (d *demo) goToRoot() tui.MenuItem {
	return tui.MenuItem{
		Text:   "Go to root",
		Action: func(r *router.Router) { r.Dismiss(router.ToRoot) },
	}
}

func (d *demo) page1Screen() tui.Screen {
	return tui.NewMenu("Page 1",
		tui.MenuItem{
			Text: "Zoom transition",
			Action: func(r *router.Router) {
				r.Sheet(d.sheet1, router.WithTransition(router.Zoom("ZoomId", d.zoom)))
			},
		},
		tui.MenuItem{
			Text: "Go to Page 2",
			Action: func(r *router.Router) {
				r.Push(d.page2, router.WithOnDismiss(func() {
					d.logger.Info("Page 2 dismissed")
				}))
			},
		},
		tui.MenuItem{
			Text: "Show alert",
			Action: func(r *router.Router) {
				r.ShowTextAlert("Alert title", "This is an example of alert!",
					router.NewAlertAction("Destroy it", router.RoleDestructive, func() {
						d.logger.Info("Destroying..")
					}),
				)
			},
		},
		tui.MenuItem{
			Text: "Go to Sheet 1",
			Action: func(r *router.Router) {
				r.Navigate(d.sheet1, router.NavigationSheet, router.WithOnDismiss(func() {
					d.logger.Info("Sheet 1 dismissed")
				}))
			},
		},
	)
}

func (d *demo) page2Screen() tui.Screen {
	return tui.NewMenu("Page 2",
		tui.MenuItem{
			Text:   "Go to Page 3",
			Action: func(r *router.Router) { r.Push(d.page3) },
		},
		tui.MenuItem{
			Text:   "Go to Sheet 1",
			Action: func(r *router.Router) { r.Sheet(d.sheet1) },
		},
		d.goBack(),
	)
}

func (d *demo) page3Screen() tui.Screen {
	return tui.NewMenu("Page 3",
		tui.MenuItem{
			Text:   "Go to Page 2",
			Action: func(r *router.Router) { r.Push(d.page2) },
		},
		d.goToRoot(),
		d.goBack(),
	)
}

func (d *demo) sheet1Screen() tui.Screen {
	return tui.NewMenu("Sheet 1",
		tui.MenuItem{
			Text:   "Go to Sheet 2",
			Action: func(r *router.Router) { r.Push(d.sheet2) },
		},
		tui.MenuItem{
			Text: "Show alert",
			Action: func(r *router.Router) {
				r.ShowAlert(tui.NewPromptAlert("Some Custom Alert", "This is the message", func(text string) {
					d.note = text
				}))
			},
		},
		d.goBack(),
	).WithBody(func() string {
		body := "Hello, this is a sheet\nUse the alert to write some text"
		if d.note != "" {
			body += "\n\nAlert says: " + d.note
		}
		return body
	})
}

func (d *demo) sheet2Screen() tui.Screen {
	return tui.NewMenu("Sheet 2",
		d.goToRoot(),
		tui.MenuItem{
			Text:   "Go to navigation begin",
			Action: func(r *router.Router) { r.Dismiss(router.ToNavigationBegin) },
		},
		d.goBack(),
	).WithBody(func() string { return "Some content" })
}
