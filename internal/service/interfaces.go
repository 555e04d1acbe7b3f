// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the form client and of the
// reference backend. Client services fold transport outcomes into the form
// session; server services validate and persist forms and registrations.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-form-runner/models"
)

// FormService serves stored form definitions.
type FormService interface {
	// GetForm returns the definition matching req. Missing identifiers
	// yield [ErrInvalidDataProvided]; an unknown form yields
	// store.ErrFormNotFound.
	GetForm(ctx context.Context, req models.FormRequest) (models.FormDefinition, error)

	// Seed stores forms that do not exist yet and returns how many were
	// created. Forms already present are kept unchanged.
	Seed(ctx context.Context, forms []models.StoredForm) (int, error)
}

// RegistrationService accepts submissions.
type RegistrationService interface {
	// CreateRegistration checks payload against the stored form, persists
	// it and publishes it. A blank required field yields a
	// [*RequiredFieldError].
	CreateRegistration(ctx context.Context, payload models.SubmissionPayload) (models.Registration, error)
}

// AuthService issues and verifies tenant tokens.
type AuthService interface {
	// Enabled reports whether a sign key is configured.
	Enabled() bool
	CreateToken(ctx context.Context, tenantID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
