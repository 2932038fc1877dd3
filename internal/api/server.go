package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/syllafetch/internal/config"
	"github.com/dgallion1/syllafetch/internal/pipeline"
	"github.com/dgallion1/syllafetch/internal/summarize"
)

// Server is the HTTP surface of syllafetch: the single-page UI plus the
// JSON API the page polls.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	llm          *summarize.Client
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, llm *summarize.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		llm:          llm,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		// Bearer auth is opt-in: without a configured key the API is
		// open, matching the single-user UI.
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/syllabus", s.handleCreateJob)
		r.Get("/api/syllabus/{jobID}", s.handleJobStatus)
		r.Get("/api/syllabus/{jobID}/download", s.handleDownload)
		r.Get("/api/syllabus/{jobID}/view", s.handleView)
		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
