// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/models"
)

// formRepository is the SQL implementation of [FormRepository] over the
// "forms" table. Field definitions are stored as a JSON document.
type formRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFormRepository constructs a [FormRepository] backed by db.
func NewFormRepository(db *DB, logger *logger.Logger) FormRepository {
	logger.Debug().Msg("creating form repository")
	return &formRepository{
		db:     db,
		logger: logger,
	}
}

// SaveForm inserts form and returns it as stored.
//
// Error handling:
//   - unique violation on (tenant_id, project_id, form_name) → [ErrFormAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *formRepository) SaveForm(ctx context.Context, form models.StoredForm) (models.StoredForm, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFormQuery(r.db.builder(), form)
	if err != nil {
		log.Err(err).Str("func", "*formRepository.SaveForm").Msg("failed to create query")
		return models.StoredForm{}, err
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*formRepository.SaveForm").Msg("failed to insert form")
		if r.db.classify(err) == Conflict {
			return models.StoredForm{}, ErrFormAlreadyExists
		}
		return models.StoredForm{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return form, nil
}

// FindForm looks a form up by its identifiers.
func (r *formRepository) FindForm(ctx context.Context, req models.FormRequest) (models.StoredForm, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFormQuery(r.db.builder(), req)
	if err != nil {
		log.Err(err).Str("func", "*formRepository.FindForm").Msg("failed to create query")
		return models.StoredForm{}, err
	}

	var (
		form   models.StoredForm
		fields string
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&form.ID, &form.TenantID, &form.ProjectID, &form.FormName, &fields, &form.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.StoredForm{}, ErrFormNotFound
	case err != nil:
		log.Err(err).Str("func", "*formRepository.FindForm").Msg("failed to scan form row")
		return models.StoredForm{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(fields), &form.Fields); err != nil {
		log.Err(err).Str("func", "*formRepository.FindForm").Str("form_id", form.ID).Msg("failed to decode fields")
		return models.StoredForm{}, fmt.Errorf("%w: fields: %w", ErrEncodingColumn, err)
	}

	return form, nil
}
