package main

import (
	"context"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type loginView struct {
	app.Compo

	email    string
	password string
	unsub    func()
}

func (l *loginView) OnMount(ctx app.Context) {
	l.unsub = store.Subscribe(func() {
		ctx.Dispatch(func(app.Context) {})
	})
}

func (l *loginView) OnDismount() {
	if l.unsub != nil {
		l.unsub()
		l.unsub = nil
	}
}

func (l *loginView) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	email, password := l.email, l.password
	ctx.Async(func() {
		if err := store.Login(context.Background(), email, password); err != nil {
			return
		}
		// Navigate regardless of the profile result: a valid token is
		// enough to enter, guards handle the rest.
		store.FetchProfile(context.Background())
		ctx.Dispatch(func(ctx app.Context) {
			ctx.Navigate("/dashboard")
		})
	})
}

func (l *loginView) Render() app.UI {
	st := store.Snapshot()

	submitLabel := "Login"
	if st.Loading {
		submitLabel = "Loading..."
	}

	return app.Div().Class("auth-page").Body(
		app.Div().Class("card auth-card").Body(
			app.H1().Class("auth-title").Text("Login"),
			app.If(st.Err != "", func() app.UI {
				return app.P().Class("form-error").Text(st.Err)
			}),
			app.Form().OnSubmit(l.submit).Body(
				app.Label().For("email").Text("Email"),
				app.Input().ID("email").Type("email").
					Placeholder("you@example.com").
					Value(l.email).
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						l.email = e.Get("target").Get("value").String()
					}),
				app.Label().For("password").Text("Password"),
				app.Input().ID("password").Type("password").
					Placeholder("******").
					Value(l.password).
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						l.password = e.Get("target").Get("value").String()
					}),
				app.Button().Class("btn btn-primary btn-block").Type("submit").Text(submitLabel),
			),
			app.P().Class("auth-switch").Body(
				app.Text("Don't have an account? "),
				app.A().Href("/register").Text("Register"),
			),
		),
	)
}
