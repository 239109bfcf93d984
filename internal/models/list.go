package models

// List mutation helpers used by the views after a confirmed server
// mutation. Each returns a new slice and leaves the input untouched, so a
// failed call can keep rendering the previous list.

// ReplaceProject swaps the entry matching p's id with p. Unknown ids
// leave the list unchanged.
func ReplaceProject(items []Project, p Project) []Project {
	out := make([]Project, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == p.ID {
			out[i] = p
		}
	}
	return out
}

// RemoveProject drops the entry with the given id.
func RemoveProject(items []Project, id int64) []Project {
	out := make([]Project, 0, len(items))
	for _, p := range items {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// ReplaceTask swaps the entry matching t's id with t.
func ReplaceTask(items []Task, t Task) []Task {
	out := make([]Task, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == t.ID {
			out[i] = t
		}
	}
	return out
}

// RemoveTask drops the entry with the given id.
func RemoveTask(items []Task, id int64) []Task {
	out := make([]Task, 0, len(items))
	for _, t := range items {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
