package main

import (
	"context"
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskboard/internal/models"
)

// joinedView lists only the projects the current user participates in.
type joinedView struct {
	app.Compo

	projects []models.Project
	search   string
	loading  bool

	live bool
}

func (j *joinedView) OnMount(ctx app.Context) {
	j.live = true
	j.loading = true
	ctx.Async(func() {
		projects, err := gateway.JoinedProjects(context.Background())
		ctx.Dispatch(func(app.Context) {
			if !j.live {
				return
			}
			j.loading = false
			if err != nil {
				app.Log("load joined projects:", err)
				showError("Failed to load joined projects")
				return
			}
			j.projects = projects
		})
	})
}

func (j *joinedView) OnDismount() {
	j.live = false
}

func (j *joinedView) Render() app.UI {
	visible := models.FilterProjects(j.projects, j.search)

	return &layout{Title: "Project Joined", Content: app.Div().Body(
		app.Div().Class("toolbar-row").Body(
			app.Input().Class("search-input").Type("search").
				Placeholder("Search Project...").
				Value(j.search).
				OnInput(func(ctx app.Context, e app.Event) {
					j.search = e.Get("target").Get("value").String()
				}),
		),
		app.If(j.loading, func() app.UI {
			return app.Div().Class("loading-overlay").Body(
				app.Div().Class("loading-spinner"),
			)
		}).Else(func() app.UI {
			return app.Div().Class("card-grid").Body(
				app.Range(visible).Slice(func(i int) app.UI {
					p := visible[i]
					return app.Div().Class("card project-card").Body(
						app.H3().Class("card-title").Text(p.Title),
						app.P().Class("card-description").Text(p.Description),
						app.Button().Class("btn btn-primary").Text("Go to Project").
							OnClick(func(ctx app.Context, e app.Event) {
								ctx.Navigate(fmt.Sprintf("/project/%d", p.ID))
							}),
					)
				}),
			)
		}),
	)}
}
