// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-form-runner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FormRepository persists form definitions scoped by tenant and project.
type FormRepository interface {
	// SaveForm inserts form. It returns [ErrFormAlreadyExists] when a form
	// with the same identifiers is already stored.
	SaveForm(ctx context.Context, form models.StoredForm) (models.StoredForm, error)

	// FindForm returns the form matching req or [ErrFormNotFound].
	FindForm(ctx context.Context, req models.FormRequest) (models.StoredForm, error)
}

// RegistrationRepository persists accepted submissions.
type RegistrationRepository interface {
	SaveRegistration(ctx context.Context, registration models.Registration) error
}
