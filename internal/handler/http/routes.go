package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// Start waits for sync and is bounded by its own timeout
	router.Post("/api/helios/start", h.start)

	router.Group(func(r chi.Router) {
		r.Use(h.withRequestTimeout)

		r.Get("/api/helios/block/latest", h.latestBlock)
		r.Get("/api/helios/block/{tag}", h.blockByTag)
		r.Post("/api/helios/stop", h.stop)
		r.Get("/api/helios/status", h.status)
		r.Get("/api/helios/sessions", h.sessions)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

func (h *Handler) withRequestTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}
	return middleware.Timeout(h.requestTimeout)(next)
}
