package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// layout wraps an authenticated page with the sidebar and header. It
// subscribes to the session so the header greeting appears as soon as
// profile hydration resolves.
type layout struct {
	app.Compo

	Title   string
	Content app.UI

	unsub func()
}

func (l *layout) OnMount(ctx app.Context) {
	l.unsub = store.Subscribe(func() {
		ctx.Dispatch(func(app.Context) {})
	})
}

func (l *layout) OnDismount() {
	if l.unsub != nil {
		l.unsub()
		l.unsub = nil
	}
}

func (l *layout) Render() app.UI {
	name := ""
	if u := store.Snapshot().User; u != nil {
		name = u.Name
	}

	return app.Div().Class("shell").Body(
		&sidebar{},
		app.Div().Class("shell-main").Body(
			app.Header().Class("topbar").Body(
				app.H2().Class("topbar-title").Text(l.Title),
				app.Span().Class("topbar-user").Text("Welcome back "+name),
			),
			app.Main().Class("content").Body(l.Content),
		),
	)
}

// sidebar holds the navigation links and the logout button.
type sidebar struct {
	app.Compo
}

func (s *sidebar) Render() app.UI {
	path := app.Window().URL().Path

	link := func(label, href string) app.UI {
		cls := "nav-link"
		if path == href {
			cls += " active"
		}
		return app.A().Class(cls).Href(href).Text(label)
	}

	return app.Aside().Class("sidebar").Body(
		app.Div().Class("sidebar-brand").Text("Acme Inc."),
		app.P().Class("sidebar-section").Text("Home"),
		app.Nav().Class("sidebar-nav").Body(
			link("Dashboard", "/dashboard"),
			link("Joined Project", "/project/joined"),
		),
		app.Div().Class("sidebar-footer").Body(
			app.Button().Class("btn btn-logout").Text("Logout").
				OnClick(func(ctx app.Context, e app.Event) {
					store.Logout()
					ctx.Navigate("/login")
				}),
		),
	)
}
