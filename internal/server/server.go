// Package server exposes the sync engine to the presentation layer over a
// loopback REST API.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	mm "github.com/feelspace/feelsync/internal/middleware"
	"github.com/feelspace/feelsync/internal/service"
)

const maxBodySize = 4096

const feedCacheTTL = 5 * time.Second

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		middleware.RequestSize(maxBodySize),
	)

	srv := server{
		s: s,
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/feed", mm.Cached(feedCacheTTL, srv.getFeed))
		r.Get("/drafts", srv.listDrafts)
		r.Post("/vents", srv.composeVent)
		r.Post("/vents/{id}/publish", srv.publishDraft)
		r.Delete("/vents/{id}", srv.deleteVent)
		r.Post("/vents/{id}/hide", srv.hideVent)
		r.Post("/blocked/{handle}", srv.blockHandle)
		r.Get("/moods", srv.moodHistory)
		r.Put("/moods/{date}", srv.logMood)
		r.Post("/sync", srv.flush)
		r.Delete("/data", srv.clearAll)
	})
}
