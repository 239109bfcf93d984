package main

import (
	"errors"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskboard/internal/api"
)

// Notifications and confirmations go through the browser's native
// dialogs.

func showSuccess(msg string) {
	app.Window().Call("alert", msg)
}

func showError(msg string) {
	app.Window().Call("alert", msg)
}

// confirmDelete blocks until the user answers the confirmation dialog.
func confirmDelete() bool {
	return app.Window().Call("confirm", "Are you sure you want to delete it? Data cannot be returned!").Truthy()
}

// errText shows the server-provided message when the API sent one.
func errText(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
