// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-runner/internal/form"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/store"
	"github.com/MKhiriev/go-form-runner/internal/utils"
	"github.com/MKhiriev/go-form-runner/models"
)

type formService struct {
	formRepository store.FormRepository
	idGenerator    utils.Generator

	now    func() time.Time
	logger *logger.Logger
}

func NewFormService(formRepository store.FormRepository, idGenerator utils.Generator, logger *logger.Logger) FormService {
	return &formService{
		formRepository: formRepository,
		idGenerator:    idGenerator,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *formService) GetForm(ctx context.Context, req models.FormRequest) (models.FormDefinition, error) {
	log := logger.FromContext(ctx)

	if !validIdentifiers(req) {
		log.Error().Any("request", req).Msg("invalid form identifiers provided")
		return models.FormDefinition{}, ErrInvalidDataProvided
	}

	stored, err := s.formRepository.FindForm(ctx, req)
	if err != nil {
		return models.FormDefinition{}, fmt.Errorf("form lookup failed: %w", err)
	}

	return stored.FormDefinition, nil
}

// Seed validates every form before storing any of them.
func (s *formService) Seed(ctx context.Context, forms []models.StoredForm) (int, error) {
	for _, f := range forms {
		if !validIdentifiers(f.Identifiers()) {
			return 0, fmt.Errorf("seed form %q: %w", f.FormName, ErrInvalidDataProvided)
		}
		if err := form.Validate(f.FormDefinition); err != nil {
			return 0, fmt.Errorf("seed form %q: %w", f.FormName, err)
		}
	}

	created := 0
	for _, f := range forms {
		log := s.logger.ForForm(f.Identifiers())

		f.ID = s.idGenerator.Generate()
		f.CreatedAt = s.now().UTC()

		_, err := s.formRepository.SaveForm(ctx, f)
		switch {
		case errors.Is(err, store.ErrFormAlreadyExists):
			log.Debug().Msg("form already seeded")
			continue
		case err != nil:
			return created, fmt.Errorf("seed form %q: %w", f.FormName, err)
		}

		if dups := form.KeyCollisions(f.FormDefinition); len(dups) > 0 {
			log.Warn().Strs("keys", dups).Msg("seeded form has fields sharing a payload key")
		}
		log.Info().Int("fields", len(f.Fields)).Msg("form seeded")
		created++
	}

	return created, nil
}

func validIdentifiers(req models.FormRequest) bool {
	return strings.TrimSpace(req.TenantID) != "" &&
		strings.TrimSpace(req.ProjectID) != "" &&
		strings.TrimSpace(req.FormName) != ""
}
