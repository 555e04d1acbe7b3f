// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-form-runner/internal/app"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/service"
	"github.com/MKhiriev/go-form-runner/internal/store"
	"github.com/MKhiriev/go-form-runner/internal/utils"
	"github.com/MKhiriev/go-form-runner/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                                 http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:                    http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader:            http.StatusUnauthorized,
	service.ErrInvalidDataProvided:                 http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid:             http.StatusUnauthorized,
	service.ErrUnauthorizedAccessToDifferentTenant: http.StatusForbidden,

	store.ErrFormNotFound:         http.StatusNotFound,
	store.ErrFormAlreadyExists:    http.StatusConflict,
	store.ErrRegistrationNotSaved: http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	ErrInvalidJSON:                                 app.MsgInvalidDataProvided,
	ErrEmptyAuthorizationHeader:                    app.MsgTokenIsExpiredOrInvalid,
	utils.ErrInvalidAuthorizationHeader:            app.MsgTokenIsExpiredOrInvalid,
	service.ErrInvalidDataProvided:                 app.MsgInvalidDataProvided,
	service.ErrTokenIsExpiredOrInvalid:             app.MsgTokenIsExpiredOrInvalid,
	service.ErrUnauthorizedAccessToDifferentTenant: app.MsgAccessDenied,

	store.ErrFormNotFound:      app.MsgFormNotFound,
	store.ErrFormAlreadyExists: app.MsgFormAlreadyExists,
}

func statusFromError(err error) int {
	var reqErr *service.RequiredFieldError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the user-facing message of err. Internal failures
// never leak their details.
func messageFromError(err error) string {
	var reqErr *service.RequiredFieldError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and writes it as a {"message": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err)}, status)
}
