package main

import (
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskboard/internal/models"
)

// assignModal picks a participant of the project to assign to a task, or
// none to unassign. The submitted value is the user id, nil for
// unassign.
type assignModal struct {
	app.Compo

	Users    []models.User
	Initial  int64 // currently assigned user id, 0 when unassigned
	OnSubmit func(ctx app.Context, userID *int64)
	OnCancel func(ctx app.Context)

	selected int64
}

func (m *assignModal) OnMount(ctx app.Context) {
	m.selected = m.Initial
}

func (m *assignModal) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if m.selected == 0 {
		m.OnSubmit(ctx, nil)
		return
	}
	id := m.selected
	m.OnSubmit(ctx, &id)
}

func (m *assignModal) Render() app.UI {
	return app.Div().Class("modal-overlay").Body(
		app.Div().Class("modal card").Body(
			app.Div().Class("modal-header").Body(
				app.H3().Text("Assign User"),
				app.Button().Class("btn btn-ghost").Text("×").
					OnClick(func(ctx app.Context, e app.Event) {
						m.OnCancel(ctx)
					}),
			),
			app.Form().OnSubmit(m.submit).Body(
				app.Select().Class("select-block").
					OnChange(func(ctx app.Context, e app.Event) {
						id, _ := strconv.ParseInt(e.Get("target").Get("value").String(), 10, 64)
						m.selected = id
					}).
					Body(
						app.Option().Value("0").
							Selected(m.selected == 0).
							Text("Unassigned"),
						app.Range(m.Users).Slice(func(i int) app.UI {
							u := m.Users[i]
							return app.Option().Value(strconv.FormatInt(u.ID, 10)).
								Selected(m.selected == u.ID).
								Text(u.Name)
						}),
					),
				app.Button().Class("btn btn-primary btn-block").Type("submit").Text("Assign"),
			),
		),
	)
}
