package server

import (
	"net/http"

	"github.com/Abhinav6284/Planora/internal/filter"
	"github.com/Abhinav6284/Planora/internal/model"
	"github.com/Abhinav6284/Planora/internal/store"
)

// /api/notes (collection)
func (h *Handler) NotesRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		notes := filter.Notes(h.store.Notes(), r.URL.Query().Get("search"))
		writeJSON(w, http.StatusOK, notes)

	case http.MethodPost:
		var in model.Note
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.ID = 0
		created, err := h.store.CreateNote(r.Context(), in)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// /api/notes/{id}
func (h *Handler) NotesSub(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r.URL.Path, "/api/notes/")
	if !ok {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var patch store.NotePatch
		if err := decodeJSON(r, &patch); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid json")
			return
		}
		updated, err := h.store.UpdateNote(r.Context(), id, patch)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := h.store.DeleteNote(r.Context(), id); err != nil {
			writeStoreErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
