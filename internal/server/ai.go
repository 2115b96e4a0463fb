package server

import (
	"net/http"
	"strings"
)

// POST /api/ai/generate-project
func (h *Handler) GenerateProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in struct {
		Prompt string `json:"prompt"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(in.Prompt) == "" {
		writeErr(w, http.StatusBadRequest, "prompt is required")
		return
	}
	writeJSON(w, http.StatusOK, h.gen.GenerateProject(in.Prompt))
}

// POST /api/roadmap/chat
func (h *Handler) RoadmapChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in struct {
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(in.Message) == "" {
		writeErr(w, http.StatusBadRequest, "message is required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": h.gen.Reply(in.Message)})
}
