package server

import (
	"net/http"

	"github.com/Abhinav6284/Planora/internal/dashboard"
	"github.com/Abhinav6284/Planora/internal/filter"
	"github.com/Abhinav6284/Planora/internal/model"
	"github.com/Abhinav6284/Planora/internal/store"
)

// /api/tasks (collection)
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		tasks := filter.Tasks(h.store.Tasks(), filter.Criteria{
			Status:   model.Status(q.Get("status")),
			Priority: model.Priority(q.Get("priority")),
			Search:   q.Get("search"),
		})
		writeJSON(w, http.StatusOK, tasks)

	case http.MethodPost:
		var in model.Task
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.ID = 0
		created, err := h.store.CreateTask(r.Context(), in)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// /api/tasks/{id} and /api/tasks/stats
func (h *Handler) TasksSub(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/tasks/stats" {
		if r.Method != http.MethodGet {
			writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeJSON(w, http.StatusOK, dashboard.Stats(h.store.Tasks(), h.today()))
		return
	}

	id, ok := idFromPath(r.URL.Path, "/api/tasks/")
	if !ok {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var patch store.TaskPatch
		if err := decodeJSON(r, &patch); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid json")
			return
		}
		updated, err := h.store.UpdateTask(r.Context(), id, patch)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := h.store.DeleteTask(r.Context(), id); err != nil {
			writeStoreErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
