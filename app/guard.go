package main

import (
	"context"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskboard/internal/models"
	"taskboard/internal/session"
)

// guard gates a routed view on session state. It evaluates on mount, on
// navigation and whenever the session changes; a redirect replaces the
// attempted navigation and the guarded content never renders.
type guard struct {
	app.Compo

	role  models.Role
	child app.Composer
	unsub func()
}

// requireAuth gates child on an authenticated session.
func requireAuth(child app.Composer) app.Composer {
	return &guard{child: child}
}

// requireRole additionally demands a matching user role. While the
// profile is still hydrating the role is unknown and access is denied.
func requireRole(role models.Role, child app.Composer) app.Composer {
	return &guard{role: role, child: child}
}

func (g *guard) OnMount(ctx app.Context) {
	// First guard to mount kicks off profile hydration; the store runs
	// it once per process.
	ctx.Async(func() {
		store.Bootstrap(context.Background())
	})
	g.unsub = store.Subscribe(func() {
		ctx.Dispatch(g.check)
	})
	g.check(ctx)
}

func (g *guard) OnNav(ctx app.Context) {
	g.check(ctx)
}

func (g *guard) OnDismount() {
	if g.unsub != nil {
		g.unsub()
		g.unsub = nil
	}
}

func (g *guard) check(ctx app.Context) {
	switch session.Decide(store.Snapshot(), g.role) {
	case session.RedirectLogin:
		ctx.Navigate("/login")
	case session.RedirectUnauthorized:
		ctx.Navigate("/unauthorized")
	}
}

func (g *guard) Render() app.UI {
	if session.Decide(store.Snapshot(), g.role) != session.Allow {
		return app.Div()
	}
	return g.child
}
