package server

import (
	"net/http"

	"github.com/Abhinav6284/Planora/internal/dashboard"
)

// GET /api/dashboard/stats
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s := dashboard.Summarize(h.store.Tasks(), h.store.Projects(), h.today())
	writeJSON(w, http.StatusOK, map[string]int{
		"total_tasks":     s.TotalTasks,
		"completed_tasks": s.CompletedTasks,
		"active_projects": s.ActiveProjects,
		"overdue_tasks":   s.OverdueTasks,
	})
}

// GET /api/dashboard/data
func (h *Handler) DashboardData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s := dashboard.Summarize(h.store.Tasks(), h.store.Projects(), h.today())
	writeJSON(w, http.StatusOK, map[string]any{
		"recent_tasks":    s.RecentTasks,
		"active_projects": s.TopProjects,
	})
}
