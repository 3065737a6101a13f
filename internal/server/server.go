package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/internalerr"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/report"
)

// Analyzer produces a fresh report.
type Analyzer interface {
	Analyze(ctx context.Context) (report.Report, error)
}

// Config holds HTTP server settings.
type Config struct {
	Addr         string
	CorsOrigins  []string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server serves the latest analysis report over HTTP
type Server struct {
	server   *http.Server
	router   *chi.Mux
	analyzer Analyzer

	mu     sync.RWMutex
	latest *report.Report
}

// New creates a new HTTP server
func New(cfg Config, analyzer Analyzer) *Server {
	s := &Server{analyzer: analyzer}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	origins := cfg.CorsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/report", s.getReport)
			r.Post("/report/refresh", s.refreshReport)
		})
	})

	s.router = router
	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Refresh runs a new analysis and publishes it as the latest report.
// On failure the previous report stays in place.
func (s *Server) Refresh(ctx context.Context) (report.Report, error) {
	r, err := s.analyzer.Analyze(ctx)
	if err != nil {
		return report.Report{}, err
	}
	s.mu.Lock()
	s.latest = &r
	s.mu.Unlock()
	log.Printf("[server] published report %s (%d posts, %d comments)", r.ID, r.PostCount, r.CommentCount)
	return r, nil
}

// Latest returns the most recently published report.
func (s *Server) Latest() (report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return report.Report{}, internalerr.ErrNotFound
	}
	return *s.latest, nil
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.Latest()
	if err != nil {
		respondWithError(w, http.StatusNotFound, "No report available yet", nil)
		return
	}
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		rep.WriteText(w)
		return
	}
	respondWithJSON(w, http.StatusOK, rep)
}

func (s *Server) refreshReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, internalerr.ErrStoreUnavailable) {
			respondWithError(w, http.StatusServiceUnavailable, "Storage unavailable", err)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to analyze corpus", err)
		}
		return
	}
	respondWithJSON(w, http.StatusOK, rep)
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	if err != nil && code >= 500 {
		log.Printf("[server] %s: %v", message, err)
	}

	response, _ := json.Marshal(map[string]string{"error": message})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
