package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskboard/internal/models"
)

// projectModal is the create/edit form dialog for projects. The parent
// owns the open/closed state; the modal reports the submitted draft or a
// cancel, and the parent closes it unconditionally once the server call
// resolves.
type projectModal struct {
	app.Compo

	Mode     string // "add" or "edit"
	Initial  models.ProjectDraft
	OnSubmit func(ctx app.Context, draft models.ProjectDraft)
	OnCancel func(ctx app.Context)

	draft models.ProjectDraft
}

func (m *projectModal) OnMount(ctx app.Context) {
	m.draft = m.Initial
}

func (m *projectModal) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	m.OnSubmit(ctx, m.draft)
}

func (m *projectModal) Render() app.UI {
	title := "Add Project"
	action := "Submit"
	if m.Mode == "edit" {
		title = "Edit Project"
		action = "Save"
	}

	return app.Div().Class("modal-overlay").Body(
		app.Div().Class("modal card").Body(
			app.Div().Class("modal-header").Body(
				app.H3().Text(title),
				app.Button().Class("btn btn-ghost").Text("×").
					OnClick(func(ctx app.Context, e app.Event) {
						m.OnCancel(ctx)
					}),
			),
			app.Form().OnSubmit(m.submit).Body(
				app.Label().For("project-title").Text("Title"),
				app.Input().ID("project-title").Type("text").
					Value(m.draft.Title).
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						m.draft.Title = e.Get("target").Get("value").String()
					}),
				app.Label().For("project-description").Text("Description"),
				app.Textarea().ID("project-description").
					Text(m.draft.Description).
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						m.draft.Description = e.Get("target").Get("value").String()
					}),
				app.Div().Class("form-row").Body(
					app.Div().Body(
						app.Label().For("project-start").Text("Start Date"),
						app.Input().ID("project-start").Type("date").
							Value(dateValue(m.draft.StartDate)).
							Required(true).
							OnInput(func(ctx app.Context, e app.Event) {
								m.draft.StartDate = e.Get("target").Get("value").String()
							}),
					),
					app.Div().Body(
						app.Label().For("project-end").Text("End Date"),
						app.Input().ID("project-end").Type("date").
							Value(dateValue(m.draft.EndDate)).
							Required(true).
							OnInput(func(ctx app.Context, e app.Event) {
								m.draft.EndDate = e.Get("target").Get("value").String()
							}),
					),
				),
				app.Button().Class("btn btn-primary btn-block").Type("submit").Text(action),
			),
		),
	)
}

// dateValue trims a wire timestamp to the yyyy-mm-dd form a date input
// expects.
func dateValue(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
