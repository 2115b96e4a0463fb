// Package serverapp assembles the HTTP API: store, auth, assistant,
// routes, and middleware.
package serverapp

import (
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/Abhinav6284/Planora/internal/assistant"
	"github.com/Abhinav6284/Planora/internal/auth"
	"github.com/Abhinav6284/Planora/internal/config"
	"github.com/Abhinav6284/Planora/internal/demo"
	"github.com/Abhinav6284/Planora/internal/httpmw"
	"github.com/Abhinav6284/Planora/internal/server"
	"github.com/Abhinav6284/Planora/internal/store"
)

type Options struct {
	Config config.Config
	Logger *log.Logger
}

// NewHandler builds the fully wired API handler.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	st := store.New(store.Options{})
	if opts.Config.DemoMode {
		st.Seed(demo.Tasks(), demo.Projects(), demo.Notes())
	}

	seed := opts.Config.AssistantSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := assistant.New(seed)

	authSvc := auth.NewService([]byte(opts.Config.JWTSecret), opts.Config.DemoMode, logger)
	authHandler := auth.NewHandler(authSvc)

	api := server.New(server.Options{
		Store:     st,
		Generator: gen,
		Logger:    logger,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.Handle("GET /api/auth/me", authSvc.RequireAPI(http.HandlerFunc(authHandler.Me)))

	protected := http.NewServeMux()
	protected.HandleFunc("/api/tasks", api.TasksRoot)
	protected.HandleFunc("/api/tasks/", api.TasksSub)
	protected.HandleFunc("/api/projects", api.ProjectsRoot)
	protected.HandleFunc("/api/projects/", api.ProjectsSub)
	protected.HandleFunc("/api/notes", api.NotesRoot)
	protected.HandleFunc("/api/notes/", api.NotesSub)
	protected.HandleFunc("GET /api/dashboard/stats", api.DashboardStats)
	protected.HandleFunc("GET /api/dashboard/data", api.DashboardData)
	protected.HandleFunc("POST /api/ai/generate-project", api.GenerateProject)
	protected.HandleFunc("POST /api/roadmap/chat", api.RoadmapChat)

	mux.Handle("/api/", authSvc.RequireAPI(protected))

	handler := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(logger),
		httpmw.WithAccessLog(logger),
	)

	c := cors.New(cors.Options{
		AllowedOrigins:   opts.Config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	})
	return c.Handler(handler)
}
