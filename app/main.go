package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskboard/internal/api"
	"taskboard/internal/session"
)

// The gateway and session store are shared by every view. The gateway
// issues relative /api requests served by the shell's reverse proxy, and
// the session is primed from the token persisted in localStorage.
var (
	gateway = api.New("/api", browserTokens{})
	store   = session.New(gateway, browserTokens{})
)

func main() {
	app.Route("/", func() app.Composer { return requireAuth(&homeView{}) })
	app.Route("/dashboard", func() app.Composer { return requireAuth(&dashboardView{}) })
	app.Route("/project/joined", func() app.Composer { return requireAuth(&joinedView{}) })
	app.RouteWithRegexp(`^/project/\d+$`, func() app.Composer { return requireAuth(&tasksView{}) })
	app.Route("/login", func() app.Composer { return &loginView{} })
	app.Route("/register", func() app.Composer { return &registerView{} })
	app.Route("/unauthorized", func() app.Composer { return &unauthorizedView{} })
	app.RunWhenOnBrowser()
}

// homeView only forwards / to the dashboard.
type homeView struct {
	app.Compo
}

func (h *homeView) OnMount(ctx app.Context) {
	ctx.Navigate("/dashboard")
}

func (h *homeView) Render() app.UI {
	return app.Div()
}
