package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", h.metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging, h.withMetrics)

		r.Get("/api/device", h.deviceInfo)
		r.Get("/api/device/categories", h.commandCategories)

		// storage commands, one at a time
		r.Group(func(r chi.Router) {
			r.Use(h.serialize, h.withLatency)

			r.Get("/api/storage", h.storages)
			r.Get("/api/fs/children", h.children)
			r.Get("/api/fs/metadata", h.metadata)
			r.Get("/api/fs/thumbnail", h.thumbnail)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
