package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskboard/internal/models"
)

// statusFilter is the multiselect narrowing the task table by status. An
// empty selection shows everything.
type statusFilter struct {
	app.Compo

	Selected []models.Status
	OnChange func(ctx app.Context, selected []models.Status)

	open bool
}

func (f *statusFilter) toggle(ctx app.Context, status models.Status) {
	selected := make([]models.Status, 0, len(f.Selected)+1)
	found := false
	for _, s := range f.Selected {
		if s == status {
			found = true
			continue
		}
		selected = append(selected, s)
	}
	if !found {
		selected = append(selected, status)
	}
	f.OnChange(ctx, selected)
}

func (f *statusFilter) checked(status models.Status) bool {
	for _, s := range f.Selected {
		if s == status {
			return true
		}
	}
	return false
}

func (f *statusFilter) Render() app.UI {
	return app.Div().Class("status-filter").Body(
		app.Button().Class("btn btn-outline").Text("⊕ Status").
			OnClick(func(ctx app.Context, e app.Event) {
				f.open = !f.open
			}),
		app.If(f.open, func() app.UI {
			return app.Div().Class("status-filter-menu card").Body(
				app.Range(models.Statuses).Slice(func(i int) app.UI {
					status := models.Statuses[i]
					return app.Label().Class("status-filter-item").Body(
						app.Input().Type("checkbox").
							Checked(f.checked(status)).
							OnChange(func(ctx app.Context, e app.Event) {
								f.toggle(ctx, status)
							}),
						app.Span().Text(string(status)),
					)
				}),
			)
		}),
	)
}
