// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-form-runner/internal/app"
)

// Server-side service errors.
var (
	// ErrInvalidDataProvided is returned when a request misses the form
	// identifiers.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrUnauthorizedAccessToDifferentTenant is returned when the token
	// tenant differs from the tenant named in the request.
	ErrUnauthorizedAccessToDifferentTenant = errors.New("unauthorized access to different tenant data")
)

// RequiredFieldError reports a required field of the stored form that was
// submitted blank.
type RequiredFieldError struct {
	Label string
}

func (e *RequiredFieldError) Error() string {
	return e.Label + " " + app.MsgIsRequired
}
