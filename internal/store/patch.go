package store

import (
	"github.com/Abhinav6284/Planora/internal/model"
)

// TaskPatch is a partial task update. nil pointer means "no change".
// An empty DueDate string clears the date.
type TaskPatch struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *model.Status   `json:"status,omitempty"`
	Priority    *model.Priority `json:"priority,omitempty"`
	DueDate     *string         `json:"due_date,omitempty"`
}

// NotePatch is a partial note update. nil pointer means "no change".
type NotePatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func applyTaskPatch(t *model.Task, p TaskPatch) error {
	if p.Title != nil {
		if *p.Title == "" {
			return &ValidationError{Field: "title"}
		}
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return &ValidationError{Field: "status", Reason: "must be todo, in-progress or completed"}
		}
		t.Status = *p.Status
	}
	if p.Priority != nil {
		if !p.Priority.Valid() {
			return &ValidationError{Field: "priority", Reason: "must be low, medium or high"}
		}
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		if *p.DueDate == "" {
			t.DueDate = nil
		} else {
			d, err := model.ParseDate(*p.DueDate)
			if err != nil {
				return &ValidationError{Field: "due_date", Reason: "must be YYYY-MM-DD"}
			}
			t.DueDate = &d
		}
	}
	return nil
}

func applyNotePatch(n *model.Note, p NotePatch) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
}
