// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/mock"
	"github.com/MKhiriev/go-form-runner/internal/store"
	"github.com/MKhiriev/go-form-runner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type registrationMocks struct {
	forms         *mock.MockFormRepository
	registrations *mock.MockRegistrationRepository
	publisher     *mock.MockPublisher
}

func newTestRegistrationService(t *testing.T) (*registrationService, registrationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := registrationMocks{
		forms:         mock.NewMockFormRepository(ctrl),
		registrations: mock.NewMockRegistrationRepository(ctrl),
		publisher:     mock.NewMockPublisher(ctrl),
	}
	svc := NewRegistrationService(m.forms, m.registrations, m.publisher, &fixedGenerator{ids: []string{"reg-1"}}, logger.Nop()).(*registrationService)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func validPayload() models.SubmissionPayload {
	return models.SubmissionPayload{
		TenantID:  "t1",
		ProjectID: "p1",
		FormName:  "Registration",
		FormData: models.FormData{
			"Email":      models.StringValue("a@b.com"),
			"Newsletter": models.BoolValue(false),
		},
	}
}

func TestRegistrationService_CreateRegistration(t *testing.T) {
	t.Run("saves and publishes", func(t *testing.T) {
		svc, m := newTestRegistrationService(t)
		payload := validPayload()

		want := models.Registration{
			ID:        "reg-1",
			TenantID:  "t1",
			ProjectID: "p1",
			FormName:  "Registration",
			FormData:  payload.FormData,
			CreatedAt: fixedNow,
		}

		gomock.InOrder(
			m.forms.EXPECT().FindForm(gomock.Any(), payload.Identifiers()).Return(storedTestForm("Registration"), nil),
			m.registrations.EXPECT().SaveRegistration(gomock.Any(), want).Return(nil),
			m.publisher.EXPECT().Publish(gomock.Any(), want).Return(nil),
		)

		got, err := svc.CreateRegistration(context.Background(), payload)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		svc, m := newTestRegistrationService(t)

		m.forms.EXPECT().FindForm(gomock.Any(), gomock.Any()).Return(storedTestForm("Registration"), nil)
		m.registrations.EXPECT().SaveRegistration(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		got, err := svc.CreateRegistration(context.Background(), validPayload())
		require.NoError(t, err)
		assert.Equal(t, "reg-1", got.ID)
	})

	t.Run("blank required field", func(t *testing.T) {
		svc, m := newTestRegistrationService(t)
		payload := validPayload()
		payload.FormData["Email"] = models.StringValue("   ")

		m.forms.EXPECT().FindForm(gomock.Any(), gomock.Any()).Return(storedTestForm("Registration"), nil)

		_, err := svc.CreateRegistration(context.Background(), payload)

		var reqErr *RequiredFieldError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "Email", reqErr.Label)
		assert.Equal(t, "Email is required", err.Error())
	})

	t.Run("missing required field", func(t *testing.T) {
		svc, m := newTestRegistrationService(t)
		payload := validPayload()
		delete(payload.FormData, "Email")

		m.forms.EXPECT().FindForm(gomock.Any(), gomock.Any()).Return(storedTestForm("Registration"), nil)

		_, err := svc.CreateRegistration(context.Background(), payload)
		var reqErr *RequiredFieldError
		assert.ErrorAs(t, err, &reqErr)
	})

	t.Run("unknown form", func(t *testing.T) {
		svc, m := newTestRegistrationService(t)
		m.forms.EXPECT().FindForm(gomock.Any(), gomock.Any()).Return(models.StoredForm{}, store.ErrFormNotFound)

		_, err := svc.CreateRegistration(context.Background(), validPayload())
		assert.ErrorIs(t, err, store.ErrFormNotFound)
	})

	t.Run("missing identifiers", func(t *testing.T) {
		svc, _ := newTestRegistrationService(t)
		payload := validPayload()
		payload.ProjectID = ""

		_, err := svc.CreateRegistration(context.Background(), payload)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("save failure", func(t *testing.T) {
		svc, m := newTestRegistrationService(t)
		m.forms.EXPECT().FindForm(gomock.Any(), gomock.Any()).Return(storedTestForm("Registration"), nil)
		m.registrations.EXPECT().SaveRegistration(gomock.Any(), gomock.Any()).Return(store.ErrRegistrationNotSaved)

		_, err := svc.CreateRegistration(context.Background(), validPayload())
		assert.ErrorIs(t, err, store.ErrRegistrationNotSaved)
	})
}

func TestCheckRequired(t *testing.T) {
	def := models.FormDefinition{Fields: []models.FieldDefinition{
		{FieldID: "f1", FieldType: models.FieldTypeText, RequiredField: true},
		{FieldID: "f2", Label: "Topics", FieldType: models.FieldTypeCheckbox, Options: models.Options{"a"}, RequiredField: true},
		{FieldID: "f3", Label: "Agree", FieldType: models.FieldTypeCheckbox, RequiredField: true},
	}}

	tests := []struct {
		name      string
		data      models.FormData
		wantLabel string
	}{
		{
			name:      "unlabeled field is reported by id",
			data:      models.FormData{"Topics": models.ListValue([]string{"a"}), "Agree": models.BoolValue(false)},
			wantLabel: "f1",
		},
		{
			name:      "empty list",
			data:      models.FormData{"f1": models.StringValue("x"), "Topics": models.ListValue(nil), "Agree": models.BoolValue(false)},
			wantLabel: "Topics",
		},
		{
			name: "false boolean is a value",
			data: models.FormData{"f1": models.StringValue("x"), "Topics": models.ListValue([]string{"a"}), "Agree": models.BoolValue(false)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkRequired(def, tt.data)
			if tt.wantLabel == "" {
				assert.NoError(t, err)
				return
			}
			var reqErr *RequiredFieldError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.wantLabel, reqErr.Label)
		})
	}
}
