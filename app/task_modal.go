package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskboard/internal/models"
)

// taskModal is the create/edit form dialog for tasks.
type taskModal struct {
	app.Compo

	Mode     string // "add" or "edit"
	Initial  models.TaskDraft
	OnSubmit func(ctx app.Context, draft models.TaskDraft)
	OnCancel func(ctx app.Context)

	draft models.TaskDraft
}

func (m *taskModal) OnMount(ctx app.Context) {
	m.draft = m.Initial
}

func (m *taskModal) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	m.OnSubmit(ctx, m.draft)
}

func (m *taskModal) Render() app.UI {
	title := "Add Task"
	action := "Add Task"
	if m.Mode == "edit" {
		title = "Edit Task"
		action = "Edit Task"
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
				app.Label().For("task-title").Text("Task"),
				app.Input().ID("task-title").Type("text").
					Value(m.draft.Title).
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						m.draft.Title = e.Get("target").Get("value").String()
					}),
				app.Label().For("task-status").Text("Status"),
				app.Select().ID("task-status").
					OnChange(func(ctx app.Context, e app.Event) {
						m.draft.Status = models.Status(e.Get("target").Get("value").String())
					}).
					Body(
						app.Option().Value("").
							Selected(m.draft.Status == "").
							Disabled(true).
							Text("Select status"),
						app.Range(models.Statuses).Slice(func(i int) app.UI {
							status := models.Statuses[i]
							return app.Option().Value(string(status)).
								Selected(m.draft.Status == status).
								Text(string(status))
						}),
					),
				app.Button().Class("btn btn-primary btn-block").Type("submit").Text(action),
			),
		),
	)
}
