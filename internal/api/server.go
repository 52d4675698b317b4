package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dusk-indust/ignoremerge/internal/config"
	"github.com/dusk-indust/ignoremerge/internal/ignorefile"
)

// Server is the HTTP API server for ignoremerge.
type Server struct {
	router   chi.Router
	log      *slog.Logger
	cfg      config.ServerConfig
	defaults ignorefile.Options
}

// NewServer creates and configures the HTTP server. defaults apply to
// options a request leaves unset.
func NewServer(defaults ignorefile.Options, log *slog.Logger, cfg config.ServerConfig) *Server {
	s := &Server{
		log:      log,
		cfg:      cfg,
		defaults: defaults,
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

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(MaxBodyBytes(s.cfg.MaxBodyBytes))

		r.Post("/api/merge", s.handleMerge)
		r.Post("/api/parse", s.handleParse)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
