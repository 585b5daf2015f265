package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getServerVersion)
		r.Get("/types", h.listTypes)

		if h.maxBodyBytes > 0 {
			r = r.With(middleware.RequestSize(h.maxBodyBytes))
		}
		r.Post("/validate/{scope}/{type}", h.validate)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
