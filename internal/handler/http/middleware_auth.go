// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-form-runner/internal/service"
	"github.com/MKhiriev/go-form-runner/internal/utils"
)

// auth is an HTTP middleware that enforces tenant token authentication.
//
// It reads the "Authorization" header, accepting both "Bearer <jwt>" and a
// bare "<jwt>", validates the token via [service.AuthService.ParseToken] and
// stores the token tenant in the request context under
// [utils.TenantIDCtxKey]. Any failure is answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "*Handler.auth")
			return
		}

		tokenString, err := utils.ParseAuthorizationHeader(authHeader)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithTenantID(ctx, token.TenantID)))
	})
}

// authorizeTenant checks that the authenticated tenant, if any, matches
// tenantID. Requests served without auth carry no tenant and always pass.
func authorizeTenant(r *http.Request, tenantID string) error {
	authenticated, ok := utils.GetTenantIDFromContext(r.Context())
	if !ok {
		return nil
	}
	if authenticated != tenantID {
		return service.ErrUnauthorizedAccessToDifferentTenant
	}
	return nil
}
