package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// unauthorizedView is the landing page for role-guard rejections.
type unauthorizedView struct {
	app.Compo
}

func (u *unauthorizedView) Render() app.UI {
	return app.Div().Class("auth-page").Body(
		app.Div().Class("card auth-card").Body(
			app.H1().Class("auth-title").Text("Unauthorized"),
			app.P().Text("You don't have permission to view this page."),
			app.A().Class("btn btn-primary btn-block").Href("/dashboard").Text("Back to Dashboard"),
		),
	)
}
