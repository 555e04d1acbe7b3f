// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/models"
)

type registrationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRegistrationRepository constructs a [RegistrationRepository] over the
// "registrations" table.
func NewRegistrationRepository(db *DB, logger *logger.Logger) RegistrationRepository {
	logger.Debug().Msg("creating registration repository")
	return &registrationRepository{
		db:     db,
		logger: logger,
	}
}

// SaveRegistration inserts registration. Transient driver errors are retried.
func (r *registrationRepository) SaveRegistration(ctx context.Context, registration models.Registration) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRegistrationQuery(r.db.builder(), registration)
	if err != nil {
		log.Err(err).Str("func", "*registrationRepository.SaveRegistration").Msg("failed to create query")
		return err
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*registrationRepository.SaveRegistration").
			Str("registration_id", registration.ID).
			Msg("failed to insert registration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRegistrationNotSaved
	}

	return nil
}
