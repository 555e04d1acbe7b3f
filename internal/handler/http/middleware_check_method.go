// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/utils"
	"github.com/MKhiriev/go-form-runner/models"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unrouted method is answered with 404 and
// a JSON message instead of chi's 405, so callers cannot probe which paths
// exist.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not routed")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
	}
}
