// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/site-sync/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Route("/sync", func(r chi.Router) {
			r.Get("/status", h.getStatus)
			r.Post("/pull", h.pull)
			r.Post("/push", h.push)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.getSettings)
			r.Put("/", h.putSettings)
			r.Post("/test", h.testSettings)
		})

		r.Post("/reset", h.reset)

		r.Route("/tables/{table}/rows", func(r chi.Router) {
			r.Get("/", h.listRows)
			r.Post("/", h.createRow)
			r.Put("/{id}", h.updateRow)
			r.Delete("/{id}", h.deleteRow)
		})
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteError(w, "not found", http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	return router
}
