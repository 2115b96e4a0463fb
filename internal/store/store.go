// Package store holds the four entity collections and mediates every
// mutation. In local mode operations act purely on memory; in remote mode
// they write through the backend and mirror its confirmed result, so the
// collections are always a best-effort cache of server state.
package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Abhinav6284/Planora/internal/model"
)

type Options struct {
	// Remote switches the store into remote mode when set.
	Remote Remote

	// Clock is used for ids and created_at stamps. Defaults to time.Now.
	Clock func() time.Time
}

type Store struct {
	remote Remote
	now    func() time.Time

	mu       sync.RWMutex
	lastID   int64
	tasks    []model.Task
	projects []model.Project
	notes    []model.Note
	chat     []model.ChatMessage
}

func New(opts Options) *Store {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Store{remote: opts.Remote, now: opts.Clock}
}

// Local reports whether mutations stay in memory only.
func (s *Store) Local() bool {
	return s.remote == nil
}

// nextID derives an id from the millisecond clock. User-paced creates make
// the clock monotonic enough; the lastID guard covers back-to-back calls
// within the same millisecond.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Refresh replaces the in-memory mirror with the backend's current
// collections. No-op in local mode.
func (s *Store) Refresh(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}
	tasks, err := s.remote.ListTasks(ctx)
	if err != nil {
		return err
	}
	projects, err := s.remote.ListProjects(ctx)
	if err != nil {
		return err
	}
	notes, err := s.remote.ListNotes(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.projects = projects
	s.notes = notes
	return nil
}

// Seed replaces the collections wholesale. Used for demo data.
func (s *Store) Seed(tasks []model.Task, projects []model.Project, notes []model.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]model.Task(nil), tasks...)
	s.projects = append([]model.Project(nil), projects...)
	s.notes = append([]model.Note(nil), notes...)
	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
}

// ---- tasks ----

func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Task(nil), s.tasks...)
}

func (s *Store) CreateTask(ctx context.Context, draft model.Task) (model.Task, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return model.Task{}, &ValidationError{Field: "title"}
	}
	if !draft.Status.Valid() {
		draft.Status = model.StatusTodo
	}
	if !draft.Priority.Valid() {
		draft.Priority = model.PriorityMedium
	}

	if s.remote != nil {
		created, err := s.remote.CreateTask(ctx, draft)
		if err != nil {
			return model.Task{}, err
		}
		s.mu.Lock()
		s.tasks = append([]model.Task{created}, s.tasks...)
		s.mu.Unlock()
		return created, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	draft.ID = s.nextID()
	draft.CreatedAt = s.now()
	s.tasks = append([]model.Task{draft}, s.tasks...)
	return draft, nil
}

func (s *Store) UpdateTask(ctx context.Context, id int64, patch TaskPatch) (model.Task, error) {
	if s.remote != nil {
		updated, err := s.remote.UpdateTask(ctx, id, patch)
		if err != nil {
			return model.Task{}, err
		}
		s.mu.Lock()
		for i := range s.tasks {
			if s.tasks[i].ID == id {
				s.tasks[i] = updated
				break
			}
		}
		s.mu.Unlock()
		return updated, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := s.tasks[i]
		if err := applyTaskPatch(&t, patch); err != nil {
			return model.Task{}, err
		}
		s.tasks[i] = t
		return t, nil
	}
	return model.Task{}, &NotFoundError{Kind: "task", ID: id}
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	if s.remote != nil {
		if err := s.remote.DeleteTask(ctx, id); err != nil {
			return err
		}
		s.mu.Lock()
		s.tasks = removeTask(s.tasks, id)
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !containsTask(s.tasks, id) {
		return &NotFoundError{Kind: "task", ID: id}
	}
	s.tasks = removeTask(s.tasks, id)
	return nil
}

// ToggleTaskStatus flips completed to todo and anything else to completed.
// A task parked at in-progress drops straight back to todo; the two-state
// toggle over the three-state enum is the product's behavior, kept as is.
func (s *Store) ToggleTaskStatus(ctx context.Context, id int64) (model.Task, error) {
	s.mu.RLock()
	var current *model.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			current = &t
			break
		}
	}
	s.mu.RUnlock()
	if current == nil {
		return model.Task{}, &NotFoundError{Kind: "task", ID: id}
	}

	next := model.StatusCompleted
	if current.Status == model.StatusCompleted {
		next = model.StatusTodo
	}
	return s.UpdateTask(ctx, id, TaskPatch{Status: &next})
}

func containsTask(tasks []model.Task, id int64) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

func removeTask(tasks []model.Task, id int64) []model.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// ---- projects ----

func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Project(nil), s.projects...)
}

func (s *Store) CreateProject(ctx context.Context, draft model.Project) (model.Project, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return model.Project{}, &ValidationError{Field: "name"}
	}

	if s.remote != nil {
		created, err := s.remote.CreateProject(ctx, draft)
		if err != nil {
			return model.Project{}, err
		}
		s.mu.Lock()
		s.projects = append([]model.Project{created}, s.projects...)
		s.mu.Unlock()
		return created, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	draft.ID = s.nextID()
	draft.CreatedAt = s.now()
	s.projects = append([]model.Project{draft}, s.projects...)
	return draft, nil
}

func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	if s.remote != nil {
		if err := s.remote.DeleteProject(ctx, id); err != nil {
			return err
		}
		s.mu.Lock()
		s.projects = removeProject(s.projects, id)
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, p := range s.projects {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		return &NotFoundError{Kind: "project", ID: id}
	}
	s.projects = removeProject(s.projects, id)
	return nil
}

func removeProject(projects []model.Project, id int64) []model.Project {
	out := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// ---- notes ----

func (s *Store) Notes() []model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Note(nil), s.notes...)
}

func (s *Store) CreateNote(ctx context.Context, draft model.Note) (model.Note, error) {
	if strings.TrimSpace(draft.Title) == "" {
		draft.Title = "Untitled Note"
	}

	if s.remote != nil {
		created, err := s.remote.CreateNote(ctx, draft)
		if err != nil {
			return model.Note{}, err
		}
		s.mu.Lock()
		s.notes = append([]model.Note{created}, s.notes...)
		s.mu.Unlock()
		return created, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	draft.ID = s.nextID()
	draft.CreatedAt = s.now()
	s.notes = append([]model.Note{draft}, s.notes...)
	return draft, nil
}

func (s *Store) UpdateNote(ctx context.Context, id int64, patch NotePatch) (model.Note, error) {
	if s.remote != nil {
		updated, err := s.remote.UpdateNote(ctx, id, patch)
		if err != nil {
			return model.Note{}, err
		}
		s.mu.Lock()
		for i := range s.notes {
			if s.notes[i].ID == id {
				s.notes[i] = updated
				break
			}
		}
		s.mu.Unlock()
		return updated, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		n := s.notes[i]
		applyNotePatch(&n, patch)
		s.notes[i] = n
		return n, nil
	}
	return model.Note{}, &NotFoundError{Kind: "note", ID: id}
}

func (s *Store) DeleteNote(ctx context.Context, id int64) error {
	if s.remote != nil {
		if err := s.remote.DeleteNote(ctx, id); err != nil {
			return err
		}
		s.mu.Lock()
		s.notes = removeNote(s.notes, id)
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, n := range s.notes {
		if n.ID == id {
			found = true
			break
		}
	}
	if !found {
		return &NotFoundError{Kind: "note", ID: id}
	}
	s.notes = removeNote(s.notes, id)
	return nil
}

func removeNote(notes []model.Note, id int64) []model.Note {
	out := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// ---- chat transcript ----

func (s *Store) AppendMessage(msg model.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, msg)
}

func (s *Store) Transcript() []model.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ChatMessage(nil), s.chat...)
}
