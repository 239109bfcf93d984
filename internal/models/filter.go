package models

import "strings"

// FilterProjects returns the projects whose title or description contains
// query, case-insensitively. An empty query returns the full list. The
// input slice is never mutated.
func FilterProjects(items []Project, query string) []Project {
	q := strings.ToLower(query)
	out := make([]Project, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterTasks returns the tasks whose title, status or assignee name
// contains query, case-insensitively. An empty query returns the full
// list.
func FilterTasks(items []Task, query string) []Task {
	q := strings.ToLower(query)
	out := make([]Task, 0, len(items))
	for _, t := range items {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(string(t.Status)), q) ||
			strings.Contains(strings.ToLower(t.AssigneeName()), q) {
			out = append(out, t)
		}
	}
	return out
}

// FilterTasksByStatus narrows tasks to those whose status is in selected.
// An empty selection means no filter: the full list is returned.
func FilterTasksByStatus(items []Task, selected []Status) []Task {
	if len(selected) == 0 {
		return items
	}
	out := make([]Task, 0, len(items))
	for _, t := range items {
		for _, s := range selected {
			if t.Status == s {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
