// Package filter derives visible subsets of tasks and notes from the active
// criteria. Pure functions over snapshots: no state, same input, same output.
package filter

import (
	"strings"

	"github.com/Abhinav6284/Planora/internal/model"
)

// Criteria is the per-session constraint on the task list. Empty fields mean
// "no constraint".
type Criteria struct {
	Status   model.Status
	Priority model.Priority
	Search   string
}

func (c Criteria) Empty() bool {
	return c.Status == "" && c.Priority == "" && c.Search == ""
}

// Tasks keeps tasks matching all three predicates. Search is a
// case-insensitive substring match on title and, when present, description.
func Tasks(tasks []model.Task, c Criteria) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	search := strings.ToLower(c.Search)
	for _, t := range tasks {
		if c.Status != "" && t.Status != c.Status {
			continue
		}
		if c.Priority != "" && t.Priority != c.Priority {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!(t.Description != "" && strings.Contains(strings.ToLower(t.Description), search)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Notes is the same substring match over title and content.
func Notes(notes []model.Note, search string) []model.Note {
	out := make([]model.Note, 0, len(notes))
	search = strings.ToLower(search)
	for _, n := range notes {
		if search != "" &&
			!strings.Contains(strings.ToLower(n.Title), search) &&
			!(n.Content != "" && strings.Contains(strings.ToLower(n.Content), search)) {
			continue
		}
		out = append(out, n)
	}
	return out
}
