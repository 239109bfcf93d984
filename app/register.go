package main

import (
	"context"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type registerView struct {
	app.Compo

	name     string
	email    string
	password string
	unsub    func()
}

func (r *registerView) OnMount(ctx app.Context) {
	r.unsub = store.Subscribe(func() {
		ctx.Dispatch(func(app.Context) {})
	})
}

func (r *registerView) OnDismount() {
	if r.unsub != nil {
		r.unsub()
		r.unsub = nil
	}
}

func (r *registerView) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	name, email, password := r.name, r.email, r.password
	ctx.Async(func() {
		if err := store.Register(context.Background(), name, email, password); err != nil {
			return
		}
		ctx.Dispatch(func(ctx app.Context) {
			showSuccess("Account created, please log in.")
			ctx.Navigate("/login")
		})
	})
}

func (r *registerView) Render() app.UI {
	st := store.Snapshot()

	submitLabel := "Register"
	if st.Loading {
		submitLabel = "Loading..."
	}

	return app.Div().Class("auth-page").Body(
		app.Div().Class("card auth-card").Body(
			app.H1().Class("auth-title").Text("Register"),
			app.If(st.Err != "", func() app.UI {
				return app.P().Class("form-error").Text(st.Err)
			}),
			app.Form().OnSubmit(r.submit).Body(
				app.Label().For("name").Text("Name"),
				app.Input().ID("name").Type("text").
					Value(r.name).
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						r.name = e.Get("target").Get("value").String()
					}),
				app.Label().For("email").Text("Email"),
				app.Input().ID("email").Type("email").
					Placeholder("you@example.com").
					Value(r.email).
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						r.email = e.Get("target").Get("value").String()
					}),
				app.Label().For("password").Text("Password"),
				app.Input().ID("password").Type("password").
					Placeholder("******").
					Value(r.password).
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						r.password = e.Get("target").Get("value").String()
					}),
				app.Button().Class("btn btn-primary btn-block").Type("submit").Text(submitLabel),
			),
			app.P().Class("auth-switch").Body(
				app.Text("Already have an account? "),
				app.A().Href("/login").Text("Login"),
			),
		),
	)
}
