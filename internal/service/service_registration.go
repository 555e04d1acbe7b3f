// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/queue"
	"github.com/MKhiriev/go-form-runner/internal/store"
	"github.com/MKhiriev/go-form-runner/internal/utils"
	"github.com/MKhiriev/go-form-runner/models"
)

type registrationService struct {
	formRepository         store.FormRepository
	registrationRepository store.RegistrationRepository
	publisher              queue.Publisher
	idGenerator            utils.Generator

	now    func() time.Time
	logger *logger.Logger
}

func NewRegistrationService(
	formRepository store.FormRepository,
	registrationRepository store.RegistrationRepository,
	publisher queue.Publisher,
	idGenerator utils.Generator,
	logger *logger.Logger,
) RegistrationService {
	return &registrationService{
		formRepository:         formRepository,
		registrationRepository: registrationRepository,
		publisher:              publisher,
		idGenerator:            idGenerator,
		now:                    time.Now,
		logger:                 logger,
	}
}

// CreateRegistration stores payload once every required field of the stored
// form carries a value. Publishing happens after the registration is saved;
// a publish failure is logged and does not fail the call.
func (s *registrationService) CreateRegistration(ctx context.Context, payload models.SubmissionPayload) (models.Registration, error) {
	log := logger.FromContext(ctx)

	req := payload.Identifiers()
	if !validIdentifiers(req) {
		log.Error().Any("request", req).Msg("invalid form identifiers provided")
		return models.Registration{}, ErrInvalidDataProvided
	}

	stored, err := s.formRepository.FindForm(ctx, req)
	if err != nil {
		return models.Registration{}, fmt.Errorf("form lookup failed: %w", err)
	}

	if err = checkRequired(stored.FormDefinition, payload.FormData); err != nil {
		log.Debug().Err(err).Msg("registration rejected")
		return models.Registration{}, err
	}

	registration := models.Registration{
		ID:        s.idGenerator.Generate(),
		TenantID:  payload.TenantID,
		ProjectID: payload.ProjectID,
		FormName:  payload.FormName,
		FormData:  payload.FormData,
		CreatedAt: s.now().UTC(),
	}

	if err = s.registrationRepository.SaveRegistration(ctx, registration); err != nil {
		return models.Registration{}, fmt.Errorf("saving registration failed: %w", err)
	}

	if err = s.publisher.Publish(ctx, registration); err != nil {
		log.Err(err).Str("func", "registrationService.CreateRegistration").
			Str("registration_id", registration.ID).
			Msg("failed to publish registration")
	}

	return registration, nil
}

// checkRequired returns a *RequiredFieldError for the first required field
// of def whose payload value is missing or blank.
func checkRequired(def models.FormDefinition, data models.FormData) error {
	for _, f := range def.Fields {
		if !f.RequiredField {
			continue
		}
		value, ok := data[f.PayloadKey()]
		if !ok || value.IsBlank() {
			return &RequiredFieldError{Label: f.PayloadKey()}
		}
	}
	return nil
}
