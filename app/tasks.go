package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskboard/internal/models"
)

// tasksView is the task table of a single project, identified by the
// /project/{id} route.
type tasksView struct {
	app.Compo

	projectID int64
	tasks     []models.Task
	joined    []models.User

	search   string
	statuses []models.Status
	loading  bool

	showAdd  bool
	editID   int64
	assignID int64

	live  bool
	unsub func()
}

func (t *tasksView) OnMount(ctx app.Context) {
	t.live = true
	// Delete is admin-only, so hydration must re-render the table.
	t.unsub = store.Subscribe(func() {
		ctx.Dispatch(func(app.Context) {})
	})
	t.loadFromURL(ctx)
}

func (t *tasksView) OnNav(ctx app.Context) {
	t.loadFromURL(ctx)
}

func (t *tasksView) OnDismount() {
	t.live = false
	if t.unsub != nil {
		t.unsub()
		t.unsub = nil
	}
}

func (t *tasksView) loadFromURL(ctx app.Context) {
	path := ctx.Page().URL().Path
	raw := strings.TrimPrefix(strings.Trim(path, "/"), "project/")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		app.Log("bad project id in path:", path)
		return
	}
	t.projectID = id
	t.loadTasks(ctx)
	t.loadJoinedUsers(ctx)
}

func (t *tasksView) loadTasks(ctx app.Context) {
	t.loading = true
	ctx.Async(func() {
		tasks, err := gateway.Tasks(context.Background(), t.projectID)
		ctx.Dispatch(func(app.Context) {
			if !t.live {
				return
			}
			t.loading = false
			if err != nil {
				app.Log("load tasks:", err)
				showError("Failed to load tasks")
				return
			}
			t.tasks = tasks
		})
	})
}

func (t *tasksView) loadJoinedUsers(ctx app.Context) {
	ctx.Async(func() {
		users, err := gateway.JoinedUsers(context.Background(), t.projectID)
		ctx.Dispatch(func(app.Context) {
			if !t.live {
				return
			}
			if err != nil {
				app.Log("load joined users:", err)
				showError("Failed to load project members")
				return
			}
			t.joined = users
		})
	})
}

func (t *tasksView) createTask(ctx app.Context, draft models.TaskDraft) {
	ctx.Async(func() {
		created, err := gateway.CreateTask(context.Background(), t.projectID, draft)
		ctx.Dispatch(func(app.Context) {
			if !t.live {
				return
			}
			t.showAdd = false
			if err != nil {
				app.Log("create task:", err)
				showError("Failed to create task")
				return
			}
			t.tasks = append(t.tasks, created)
			showSuccess("Task created successfully!")
		})
	})
}

func (t *tasksView) editTask(ctx app.Context, id int64, draft models.TaskDraft) {
	ctx.Async(func() {
		updated, err := gateway.UpdateTask(context.Background(), id, draft)
		ctx.Dispatch(func(app.Context) {
			if !t.live {
				return
			}
			t.editID = 0
			if err != nil {
				app.Log("update task:", err)
				showError(errText(err, "Failed to update task"))
				return
			}
			t.tasks = models.ReplaceTask(t.tasks, updated)
			showSuccess("Task updated successfully!")
		})
	})
}

func (t *tasksView) deleteTask(ctx app.Context, id int64) {
	if !confirmDelete() {
		return
	}
	ctx.Async(func() {
		err := gateway.DeleteTask(context.Background(), id)
		ctx.Dispatch(func(app.Context) {
			if !t.live {
				return
			}
			if err != nil {
				app.Log("delete task:", err)
				showError("Failed to delete task")
				return
			}
			t.tasks = models.RemoveTask(t.tasks, id)
			showSuccess("Task deleted successfully!")
		})
	})
}

// assignTask assigns or unassigns, then refetches the whole list: the
// assign response lacks the denormalized assignee fields the table
// shows.
func (t *tasksView) assignTask(ctx app.Context, taskID int64, userID *int64) {
	ctx.Async(func() {
		_, err := gateway.AssignTask(context.Background(), taskID, userID)
		ctx.Dispatch(func(ctx app.Context) {
			if !t.live {
				return
			}
			t.assignID = 0
			if err != nil {
				app.Log("assign task:", err)
				showError("Failed to assign user")
				return
			}
			t.loadTasks(ctx)
		})
	})
}

func (t *tasksView) visibleTasks() []models.Task {
	return models.FilterTasksByStatus(models.FilterTasks(t.tasks, t.search), t.statuses)
}

func (t *tasksView) Render() app.UI {
	visible := t.visibleTasks()
	admin := store.Snapshot().User.IsAdmin()

	return &layout{Title: "Task List", Content: app.Div().Body(
		app.Div().Class("toolbar-row").Body(
			app.Div().Class("toolbar-group").Body(
				app.Input().Class("search-input").Type("search").
					Placeholder("Search Task...").
					Value(t.search).
					OnInput(func(ctx app.Context, e app.Event) {
						t.search = e.Get("target").Get("value").String()
					}),
				&statusFilter{
					Selected: t.statuses,
					OnChange: func(ctx app.Context, selected []models.Status) {
						t.statuses = selected
					},
				},
			),
			app.Button().Class("btn btn-primary").Text("Add Task").
				OnClick(func(ctx app.Context, e app.Event) {
					t.showAdd = true
				}),
		),

		app.If(t.loading, func() app.UI {
			return app.Div().Class("loading-overlay").Body(
				app.Div().Class("loading-spinner"),
			)
		}).Else(func() app.UI {
			return t.renderTable(visible, admin)
		}),

		app.If(t.showAdd, func() app.UI {
			return &taskModal{
				Mode:     "add",
				OnSubmit: t.createTask,
				OnCancel: func(ctx app.Context) { t.showAdd = false },
			}
		}),
		app.If(t.editID != 0, func() app.UI {
			return t.renderEditModal()
		}),
		app.If(t.assignID != 0, func() app.UI {
			return t.renderAssignModal()
		}),
	)}
}

func (t *tasksView) renderTable(visible []models.Task, admin bool) app.UI {
	return app.Table().Class("task-table").Body(
		app.THead().Body(
			app.Tr().Body(
				app.Th().Text("No"),
				app.Th().Text("Title"),
				app.Th().Text("Status"),
				app.Th().Text("Created By"),
				app.Th().Text("Assign"),
				app.Th(),
			),
		),
		app.TBody().Body(
			app.If(len(visible) == 0, func() app.UI {
				return app.Tr().Body(
					app.Td().ColSpan(6).Class("table-empty").Text("No work yet."),
				)
			}).Else(func() app.UI {
				return app.Range(visible).Slice(func(i int) app.UI {
					return t.renderRow(i, visible[i], admin)
				})
			}),
		),
	)
}

func (t *tasksView) renderRow(i int, task models.Task, admin bool) app.UI {
	return app.Tr().Body(
		app.Td().Text(strconv.Itoa(i+1)),
		app.Td().Text(task.Title),
		app.Td().Body(
			app.Span().Class("status-badge "+statusClass(task.Status)).Text(string(task.Status)),
		),
		app.Td().Text(task.CreatorName()),
		app.Td().Body(
			app.If(task.Assignee != nil, func() app.UI {
				return app.Text(task.AssigneeName())
			}).Else(func() app.UI {
				return app.I().Class("unassigned").Text("Unassigned")
			}),
		),
		app.Td().Class("row-actions").Body(
			app.Button().Class("btn btn-ghost").Text("Edit").
				OnClick(func(ctx app.Context, e app.Event) {
					t.editID = task.ID
				}),
			app.Button().Class("btn btn-ghost").Text("Assign User").
				OnClick(func(ctx app.Context, e app.Event) {
					t.assignID = task.ID
				}),
			app.If(admin, func() app.UI {
				return app.Button().Class("btn btn-ghost btn-danger-text").Text("Delete").
					OnClick(func(ctx app.Context, e app.Event) {
						t.deleteTask(ctx, task.ID)
					})
			}),
		),
	)
}

func (t *tasksView) renderEditModal() app.UI {
	editing, ok := t.findTask(t.editID)
	if !ok {
		return app.Div()
	}
	id := editing.ID

	return &taskModal{
		Mode: "edit",
		Initial: models.TaskDraft{
			Title:     editing.Title,
			Status:    editing.Status,
			CreatedBy: editing.CreatedBy,
		},
		OnSubmit: func(ctx app.Context, draft models.TaskDraft) {
			t.editTask(ctx, id, draft)
		},
		OnCancel: func(ctx app.Context) { t.editID = 0 },
	}
}

func (t *tasksView) renderAssignModal() app.UI {
	task, ok := t.findTask(t.assignID)
	if !ok {
		return app.Div()
	}
	id := task.ID

	return &assignModal{
		Users:   t.joined,
		Initial: task.AssignedTo,
		OnSubmit: func(ctx app.Context, userID *int64) {
			t.assignTask(ctx, id, userID)
		},
		OnCancel: func(ctx app.Context) { t.assignID = 0 },
	}
}

func (t *tasksView) findTask(id int64) (models.Task, bool) {
	for _, task := range t.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return models.Task{}, false
}

func statusClass(s models.Status) string {
	switch s {
	case models.StatusTodo:
		return "status-todo"
	case models.StatusInProgress:
		return "status-in-progress"
	case models.StatusDone:
		return "status-done"
	}
	return ""
}
