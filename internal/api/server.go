// Package api exposes the recommendation engine and brew journal over a
// small JSON HTTP API.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/joshsymonds/brewmatch/internal/engine"
	"github.com/joshsymonds/brewmatch/internal/service"
)

// Server routes HTTP requests to the engine and journal store.
type Server struct {
	engine  *engine.Engine
	store   service.JournalStore
	metrics *Metrics
}

// NewServer creates a server. The store may be nil, in which case the
// journal routes are not mounted.
func NewServer(eng *engine.Engine, store service.JournalStore) *Server {
	return &Server{
		engine:  eng,
		store:   store,
		metrics: NewMetrics(eng.MemoStats),
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.metrics.Middleware)

		r.Post("/beans/match", s.matchBeans)

		r.Route("/equipment", func(r chi.Router) {
			r.Post("/recommendations", s.recommendEquipment)
			r.Get("/{id}/match", s.equipmentMatch)
		})

		if s.store != nil {
			r.Route("/journal", func(r chi.Router) {
				r.Get("/entries", s.listEntries)
				r.Post("/entries", s.createEntry)
				r.Delete("/entries/{id}", s.deleteEntry)
				r.Get("/analytics", s.analytics)
			})
		}
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"catalog": s.engine.Catalog().Version(),
	})
}
