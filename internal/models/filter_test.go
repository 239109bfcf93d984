package models

import (
	"reflect"
	"testing"
)

func sampleProjects() []Project {
	return []Project{
		{ID: 1, Title: "Website Redesign", Description: "New marketing site"},
		{ID: 2, Title: "Mobile App", Description: "iOS and Android client"},
		{ID: 3, Title: "Backend", Description: "REST API and website glue"},
	}
}

func TestFilterProjectsEmptyQueryReturnsAll(t *testing.T) {
	items := sampleProjects()
	got := FilterProjects(items, "")
	if len(got) != len(items) {
		t.Fatalf("expected %d projects, got %d", len(items), len(got))
	}
}

func TestFilterProjectsCaseInsensitive(t *testing.T) {
	got := FilterProjects(sampleProjects(), "WEBSITE")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestFilterProjectsMatchesDescription(t *testing.T) {
	got := FilterProjects(sampleProjects(), "android")
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected project 2, got %+v", got)
	}
}

func TestFilterProjectsIsPure(t *testing.T) {
	items := sampleProjects()
	first := FilterProjects(items, "app")
	second := FilterProjects(items, "app")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("filtering twice diverged: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(items, sampleProjects()) {
		t.Fatalf("input slice was mutated: %+v", items)
	}
}

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Title: "Write docs", Status: StatusTodo, Assignee: &User{ID: 7, Name: "Alice"}},
		{ID: 2, Title: "Review PR", Status: StatusDone},
		{ID: 3, Title: "Deploy", Status: StatusDone, Assignee: &User{ID: 9, Name: "Bob"}},
	}
}

func TestFilterTasksMatchesTitleStatusAssignee(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"by title", "docs", []int64{1}},
		{"by status", "done", []int64{2, 3}},
		{"by assignee name", "alice", []int64{1}},
		{"empty query", "", []int64{1, 2, 3}},
		{"no match", "zzz", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterTasks(sampleTasks(), tc.query)
			var ids []int64
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			if !reflect.DeepEqual(ids, tc.want) {
				t.Fatalf("FilterTasks(%q) ids = %v, want %v", tc.query, ids, tc.want)
			}
		})
	}
}

func TestFilterTasksByStatusDone(t *testing.T) {
	got := FilterTasksByStatus(sampleTasks(), []Status{StatusDone})
	if len(got) != 2 {
		t.Fatalf("expected 2 Done tasks, got %d", len(got))
	}
	for _, task := range got {
		if task.Status != StatusDone {
			t.Fatalf("unexpected status %q in filtered set", task.Status)
		}
	}
}

func TestFilterTasksByStatusEmptySelectionShowsAll(t *testing.T) {
	items := sampleTasks()
	got := FilterTasksByStatus(items, nil)
	if len(got) != len(items) {
		t.Fatalf("empty selection filtered the list: %d of %d left", len(got), len(items))
	}
}

func TestFilterTasksComposesWithStatusFilter(t *testing.T) {
	got := FilterTasksByStatus(FilterTasks(sampleTasks(), "e"), []Status{StatusDone})
	for _, task := range got {
		if task.Status != StatusDone {
			t.Fatalf("status filter did not hold after search: %+v", task)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Fatalf("status %q should be valid", s)
		}
	}
	if Status("Blocked").Valid() {
		t.Fatal("unknown status should not be valid")
	}
}

func TestIsAdmin(t *testing.T) {
	var nilUser *User
	if nilUser.IsAdmin() {
		t.Fatal("nil user must not be admin")
	}
	if (&User{Role: RoleMember}).IsAdmin() {
		t.Fatal("member must not be admin")
	}
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Fatal("admin role not recognized")
	}
}
