// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/utils"
	"github.com/MKhiriev/go-form-runner/models"
)

// getFormByIdentifiers answers with {data: form}.
func (h *Handler) getFormByIdentifiers(w http.ResponseWriter, r *http.Request) {
	var req models.FormRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.getFormByIdentifiers")
		return
	}

	if err := authorizeTenant(r, req.TenantID); err != nil {
		writeError(w, r, err, "*Handler.getFormByIdentifiers")
		return
	}

	def, err := h.services.FormService.GetForm(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.getFormByIdentifiers")
		return
	}

	logger.FromRequest(r).Debug().Str("form", def.FormName).Int("fields", len(def.Fields)).Msg("form served")
	utils.WriteJSON(w, models.FormResponse{Data: &def}, http.StatusOK)
}
