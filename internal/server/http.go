// Package server implements the Planora JSON API over the in-memory store.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Abhinav6284/Planora/internal/assistant"
	"github.com/Abhinav6284/Planora/internal/model"
	"github.com/Abhinav6284/Planora/internal/store"
)

type Handler struct {
	store  *store.Store
	gen    *assistant.Generator
	clock  func() time.Time
	logger *log.Logger
}

type Options struct {
	Store     *store.Store
	Generator *assistant.Generator
	Clock     func() time.Time
	Logger    *log.Logger
}

func New(opts Options) *Handler {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Handler{
		store:  opts.Store,
		gen:    opts.Generator,
		clock:  opts.Clock,
		logger: opts.Logger,
	}
}

func (h *Handler) today() model.Date {
	return model.DateOf(h.clock())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"message": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// writeStoreErr maps the store's error taxonomy onto status codes.
func writeStoreErr(w http.ResponseWriter, err error) {
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		writeErr(w, http.StatusBadRequest, ve.Error())
		return
	}
	var nfe *store.NotFoundError
	if errors.As(err, &nfe) {
		writeErr(w, http.StatusNotFound, nfe.Error())
		return
	}
	writeErr(w, http.StatusInternalServerError, err.Error())
}

// idFromPath extracts the numeric id from e.g. /api/tasks/{id}.
func idFromPath(path, prefix string) (int64, bool) {
	tail := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if tail == "" || strings.Contains(tail, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(tail, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
