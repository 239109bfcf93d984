package main

import (
	"context"
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskboard/internal/models"
)

// dashboardView lists every project. Mutations are applied to the local
// list only after the server confirms them.
type dashboardView struct {
	app.Compo

	projects []models.Project
	search   string
	loading  bool
	showAdd  bool
	editID   int64

	live  bool
	unsub func()
}

func (d *dashboardView) OnMount(ctx app.Context) {
	d.live = true
	// Re-render when hydration resolves: the admin affordances depend
	// on the profile.
	d.unsub = store.Subscribe(func() {
		ctx.Dispatch(func(app.Context) {})
	})
	d.load(ctx)
}

func (d *dashboardView) OnDismount() {
	d.live = false
	if d.unsub != nil {
		d.unsub()
		d.unsub = nil
	}
}

func (d *dashboardView) load(ctx app.Context) {
	d.loading = true
	ctx.Async(func() {
		projects, err := gateway.Projects(context.Background())
		ctx.Dispatch(func(app.Context) {
			if !d.live {
				return
			}
			d.loading = false
			if err != nil {
				app.Log("load projects:", err)
				showError("Failed to load projects")
				return
			}
			d.projects = projects
		})
	})
}

func (d *dashboardView) createProject(ctx app.Context, draft models.ProjectDraft) {
	ctx.Async(func() {
		created, err := gateway.CreateProject(context.Background(), draft)
		ctx.Dispatch(func(app.Context) {
			if !d.live {
				return
			}
			d.showAdd = false
			if err != nil {
				app.Log("create project:", err)
				showError("Failed to create project")
				return
			}
			d.projects = append(d.projects, created)
			showSuccess("Project created successfully!")
		})
	})
}

func (d *dashboardView) editProject(ctx app.Context, id int64, draft models.ProjectDraft) {
	ctx.Async(func() {
		updated, err := gateway.UpdateProject(context.Background(), id, draft)
		ctx.Dispatch(func(app.Context) {
			if !d.live {
				return
			}
			d.editID = 0
			if err != nil {
				app.Log("update project:", err)
				showError("Failed to update project")
				return
			}
			d.projects = models.ReplaceProject(d.projects, updated)
			showSuccess("Project updated successfully!")
		})
	})
}

func (d *dashboardView) deleteProject(ctx app.Context, id int64) {
	if !confirmDelete() {
		return
	}
	ctx.Async(func() {
		err := gateway.DeleteProject(context.Background(), id)
		ctx.Dispatch(func(app.Context) {
			if !d.live {
				return
			}
			if err != nil {
				app.Log("delete project:", err)
				showError("Failed to delete project")
				return
			}
			d.projects = models.RemoveProject(d.projects, id)
			showSuccess("Project deleted successfully!")
		})
	})
}

func (d *dashboardView) joinProject(ctx app.Context, id int64) {
	ctx.Async(func() {
		err := gateway.JoinProject(context.Background(), id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				app.Log("join project:", err)
				showError("Failed to join project")
				return
			}
			ctx.Navigate(fmt.Sprintf("/project/%d", id))
		})
	})
}

func (d *dashboardView) Render() app.UI {
	visible := models.FilterProjects(d.projects, d.search)
	admin := store.Snapshot().User.IsAdmin()

	return &layout{Title: "Dashboard", Content: app.Div().Body(
		app.Div().Class("toolbar-row").Body(
			app.Input().Class("search-input").Type("search").
				Placeholder("Search Project...").
				Value(d.search).
				OnInput(func(ctx app.Context, e app.Event) {
					d.search = e.Get("target").Get("value").String()
				}),
			app.If(admin, func() app.UI {
				return app.Button().Class("btn btn-primary").Text("+ Add Project").
					OnClick(func(ctx app.Context, e app.Event) {
						d.showAdd = true
					})
			}),
		),

		app.If(d.loading, func() app.UI {
			return app.Div().Class("loading-overlay").Body(
				app.Div().Class("loading-spinner"),
			)
		}).Else(func() app.UI {
			return app.Div().Class("card-grid").Body(
				app.Range(visible).Slice(func(i int) app.UI {
					return d.renderCard(visible[i], admin)
				}),
			)
		}),

		app.If(d.showAdd, func() app.UI {
			return &projectModal{
				Mode:     "add",
				OnSubmit: d.createProject,
				OnCancel: func(ctx app.Context) { d.showAdd = false },
			}
		}),
		app.If(d.editID != 0, func() app.UI {
			return d.renderEditModal()
		}),
	)}
}

func (d *dashboardView) renderCard(p models.Project, admin bool) app.UI {
	projectLabel := "Join"
	if p.Joined {
		projectLabel = "Go to Project"
	}

	return app.Div().Class("card project-card").Body(
		app.H3().Class("card-title").Text(p.Title),
		app.P().Class("card-description").Text(p.Description),
		app.Div().Class("card-actions").Body(
			app.Button().Class("btn btn-primary").Text(projectLabel).
				OnClick(func(ctx app.Context, e app.Event) {
					if p.Joined {
						ctx.Navigate(fmt.Sprintf("/project/%d", p.ID))
						return
					}
					d.joinProject(ctx, p.ID)
				}),
			app.If(admin, func() app.UI {
				return app.Div().Class("card-admin-actions").Body(
					app.Button().Class("btn btn-edit").Text("Edit").
						OnClick(func(ctx app.Context, e app.Event) {
							d.editID = p.ID
						}),
					app.Button().Class("btn btn-danger").Text("Delete").
						OnClick(func(ctx app.Context, e app.Event) {
							d.deleteProject(ctx, p.ID)
						}),
				)
			}),
		),
	)
}

func (d *dashboardView) renderEditModal() app.UI {
	var editing *models.Project
	for i := range d.projects {
		if d.projects[i].ID == d.editID {
			editing = &d.projects[i]
		}
	}
	if editing == nil {
		return app.Div()
	}
	id := editing.ID

	return &projectModal{
		Mode: "edit",
		Initial: models.ProjectDraft{
			Title:       editing.Title,
			Description: editing.Description,
			StartDate:   editing.StartDate,
			EndDate:     editing.EndDate,
		},
		OnSubmit: func(ctx app.Context, draft models.ProjectDraft) {
			d.editProject(ctx, id, draft)
		},
		OnCancel: func(ctx app.Context) { d.editID = 0 },
	}
}
