package server

import (
	"net/http"

	"github.com/Abhinav6284/Planora/internal/model"
)

// /api/projects (collection)
func (h *Handler) ProjectsRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.Projects())

	case http.MethodPost:
		var in model.Project
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.ID = 0
		created, err := h.store.CreateProject(r.Context(), in)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// /api/projects/{id}
func (h *Handler) ProjectsSub(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r.URL.Path, "/api/projects/")
	if !ok {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}

	if r.Method != http.MethodDelete {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := h.store.DeleteProject(r.Context(), id); err != nil {
		writeStoreErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
