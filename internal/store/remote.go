package store

import (
	"context"

	"github.com/Abhinav6284/Planora/internal/model"
)

// Remote is the backend the store writes through to in remote mode. The
// gateway client implements it; tests plug in fakes.
type Remote interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, draft model.Task) (model.Task, error)
	UpdateTask(ctx context.Context, id int64, patch TaskPatch) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	ListProjects(ctx context.Context) ([]model.Project, error)
	CreateProject(ctx context.Context, draft model.Project) (model.Project, error)
	DeleteProject(ctx context.Context, id int64) error

	ListNotes(ctx context.Context) ([]model.Note, error)
	CreateNote(ctx context.Context, draft model.Note) (model.Note, error)
	UpdateNote(ctx context.Context, id int64, patch NotePatch) (model.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}
