package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewChiMux(events EventHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/healthz", events.Health)

	r.Route("/{bucket}", func(r chi.Router) {
		r.Put("/notification", events.PutNotification)
		r.Post("/events", events.PostEvents)
	})

	return r
}
