package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

const tokenKey = "token"

// browserTokens persists the bearer token in the browser's localStorage,
// the single durable key surviving page reloads.
type browserTokens struct{}

func (browserTokens) Token() string {
	v := app.Window().Get("localStorage").Call("getItem", tokenKey)
	if !v.Truthy() {
		return ""
	}
	return v.String()
}

func (browserTokens) SetToken(token string) {
	app.Window().Get("localStorage").Call("setItem", tokenKey, token)
}

func (browserTokens) Clear() {
	app.Window().Get("localStorage").Call("removeItem", tokenKey)
}
