package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		if h.gatherer != nil {
			r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
		}
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", h.listGoals)
			r.Post("/", h.createGoal)
			r.Put("/{serverId}", h.updateGoal)
			r.Delete("/{serverId}", h.deleteGoal)
		})
	})

	return router
}
