// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/models"
)

func testRegistration() models.Registration {
	return models.Registration{
		ID:        "reg-1",
		TenantID:  "tenant-1",
		ProjectID: "project-1",
		FormName:  "Registration",
		FormData:  models.FormData{"Email": models.StringValue("a@b.com")},
		CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRegistrationRepository_SaveRegistration(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO registrations").
					WithArgs("reg-1", "tenant-1", "project-1", "Registration", `{"Email":"a@b.com"}`, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no rows affected",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO registrations").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrRegistrationNotSaved,
		},
		{
			name: "exec error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO registrations").WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "rows affected error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO registrations").
					WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, mock := newTestDB(t)
			repo := NewRegistrationRepository(newPostgresDBFromSQL(sqlDB), logger.Nop())
			tt.setup(mock)

			err := repo.SaveRegistration(testContext(), testRegistration())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
