// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-form-runner/internal/app"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/utils"
	"github.com/MKhiriev/go-form-runner/models"
)

func (h *Handler) createRegistration(w http.ResponseWriter, r *http.Request) {
	var payload models.SubmissionPayload
	if err := utils.ReadJSON(r, &payload); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.createRegistration")
		return
	}

	if err := authorizeTenant(r, payload.TenantID); err != nil {
		writeError(w, r, err, "*Handler.createRegistration")
		return
	}

	registration, err := h.services.RegistrationService.CreateRegistration(r.Context(), payload)
	if err != nil {
		writeError(w, r, err, "*Handler.createRegistration")
		return
	}

	logger.FromRequest(r).Info().Str("registration_id", registration.ID).Str("form", registration.FormName).Msg("registration created")
	utils.WriteJSON(w, models.MessageResponse{
		Message: app.MsgRegistrationCreated,
		Data:    models.RegistrationResult{RegistrationID: registration.ID},
	}, http.StatusCreated)
}
