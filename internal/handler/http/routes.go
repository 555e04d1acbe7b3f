// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-form-runner/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. The form endpoints require a tenant token only
// when the auth service has a sign key.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging)

		r.Get(app.VersionPath, h.getServerVersion)

		r.Group(func(r chi.Router) {
			if h.services.AuthService.Enabled() {
				r.Use(h.auth)
			}
			r.Post(app.FetchFormPath, h.getFormByIdentifiers)
			r.Post(app.CreateRegistrationPath, h.createRegistration)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
