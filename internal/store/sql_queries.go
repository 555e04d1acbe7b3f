// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-form-runner/models"
)

const (
	formsTable         = "forms"
	registrationsTable = "registrations"
)

var (
	formColumns         = []string{"id", "tenant_id", "project_id", "form_name", "fields", "created_at"}
	registrationColumns = []string{"id", "tenant_id", "project_id", "form_name", "form_data", "created_at"}
)

func buildInsertFormQuery(b sq.StatementBuilderType, form models.StoredForm) (string, []any, error) {
	fields, err := json.Marshal(form.Fields)
	if err != nil {
		return "", nil, fmt.Errorf("%w: fields: %w", ErrEncodingColumn, err)
	}

	query, args, err := b.Insert(formsTable).
		Columns(formColumns...).
		Values(form.ID, form.TenantID, form.ProjectID, form.FormName, string(fields), form.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectFormQuery(b sq.StatementBuilderType, req models.FormRequest) (string, []any, error) {
	query, args, err := b.Select(formColumns...).
		From(formsTable).
		Where(sq.Eq{"tenant_id": req.TenantID}).
		Where(sq.Eq{"project_id": req.ProjectID}).
		Where(sq.Eq{"form_name": req.FormName}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertRegistrationQuery(b sq.StatementBuilderType, registration models.Registration) (string, []any, error) {
	formData, err := json.Marshal(registration.FormData)
	if err != nil {
		return "", nil, fmt.Errorf("%w: form_data: %w", ErrEncodingColumn, err)
	}

	query, args, err := b.Insert(registrationsTable).
		Columns(registrationColumns...).
		Values(
			registration.ID,
			registration.TenantID,
			registration.ProjectID,
			registration.FormName,
			string(formData),
			registration.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
