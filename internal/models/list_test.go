package models

import (
	"reflect"
	"testing"
)

func TestReplaceProjectSwapsById(t *testing.T) {
	items := []Project{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	got := ReplaceProject(items, Project{ID: 2, Title: "updated"})
	if got[1].Title != "updated" {
		t.Fatalf("entry 2 not replaced: %+v", got)
	}
	if items[1].Title != "b" {
		t.Fatal("input slice was mutated")
	}
}

func TestReplaceProjectUnknownIdNoop(t *testing.T) {
	items := []Project{{ID: 1, Title: "a"}}
	got := ReplaceProject(items, Project{ID: 99, Title: "ghost"})
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("unknown id changed the list: %+v", got)
	}
}

func TestRemoveProject(t *testing.T) {
	items := []Project{{ID: 1}, {ID: 2}, {ID: 3}}
	got := RemoveProject(items, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, p := range got {
		if p.ID == 2 {
			t.Fatal("id 2 still present after removal")
		}
	}
	if len(items) != 3 {
		t.Fatal("input slice was mutated")
	}
}

func TestReplaceTaskSwapsWholesale(t *testing.T) {
	items := []Task{
		{ID: 5, Title: "old", Status: StatusTodo, Assignee: &User{ID: 1, Name: "Alice"}},
	}
	got := ReplaceTask(items, Task{ID: 5, Title: "new", Status: StatusDone})
	if got[0].Title != "new" || got[0].Status != StatusDone {
		t.Fatalf("task not replaced: %+v", got[0])
	}
	// Replacement, not a merge: fields absent from the server entity do
	// not survive from the old one.
	if got[0].Assignee != nil {
		t.Fatalf("stale assignee survived replacement: %+v", got[0].Assignee)
	}
}

func TestRemoveTask(t *testing.T) {
	items := []Task{{ID: 42}, {ID: 43}}
	got := RemoveTask(items, 42)
	if len(got) != 1 || got[0].ID != 43 {
		t.Fatalf("unexpected result: %+v", got)
	}
}
