// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-form-runner/internal/adapter"
	"github.com/MKhiriev/go-form-runner/internal/app"
	"github.com/MKhiriev/go-form-runner/internal/config"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/mock"
	"github.com/MKhiriev/go-form-runner/internal/service"
	"github.com/MKhiriev/go-form-runner/internal/session"
	"github.com/MKhiriev/go-form-runner/internal/tui"
	"github.com/MKhiriev/go-form-runner/models"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

var contactForm = models.FormDefinition{
	FormName: "Contact",
	Fields: []models.FieldDefinition{
		{FieldID: "f1", Label: "Email", FieldType: models.FieldTypeEmail, RequiredField: true},
		{FieldID: "f2", Label: "Agree", FieldType: models.FieldTypeCheckbox, RequiredField: true},
	},
}

func newTestApp(t *testing.T, answersFile string) (*App, *mock.MockFormAdapter, *bytes.Buffer, *fakeUI) {
	t.Helper()
	formAdapter := mock.NewMockFormAdapter(gomock.NewController(t))
	services := service.NewClientServices(formAdapter, config.Form{TenantID: "t1", ProjectID: "p1", Name: "Contact"}, logger.Nop())

	a, err := NewApp(services, config.ClientRuntime{AnswersFile: answersFile}, logger.Nop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	ui := &fakeUI{}
	a.out = out
	a.ui = ui
	return a, formAdapter, out, ui
}

func TestNewApp_NoServices(t *testing.T) {
	_, err := NewApp(nil, config.ClientRuntime{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)

	_, err = NewApp(&service.ClientServices{}, config.ClientRuntime{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)
}

// ── interactive ──────────────────────────────────────────────────────────

func TestApp_Run_Interactive(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "normal exit", uiErr: nil},
		{name: "user quit is not an error", uiErr: tui.ErrUserQuit},
		{name: "program failure", uiErr: errors.New("tty gone"), wantErr: errors.New("tty gone")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _, ui := newTestApp(t, "")
			ui.err = tt.uiErr

			err := a.Run(context.Background())
			assert.Equal(t, 1, ui.calls)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── headless ─────────────────────────────────────────────────────────────

func TestApp_Run_HeadlessSuccess(t *testing.T) {
	path := writeFile(t, "answers.json", `{"f1": "a@b.com", "f2": true}`)
	a, formAdapter, out, ui := newTestApp(t, path)

	formAdapter.EXPECT().FetchForm(gomock.Any(), models.FormRequest{TenantID: "t1", ProjectID: "p1", FormName: "Contact"}).
		Return(contactForm, nil)
	formAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload models.SubmissionPayload) (models.MessageResponse, error) {
			assert.Equal(t, "Contact", payload.FormName)
			assert.Equal(t, "a@b.com", payload.FormData["Email"].Text())
			assert.True(t, payload.FormData["Agree"].Flag())
			return models.MessageResponse{}, nil
		})

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 0, ui.calls)
	assert.Equal(t, app.MsgSubmissionSucceeded+"\n", out.String())
	assert.Equal(t, session.SubmitSucceeded, a.formService.Session().State())
}

func TestApp_Run_HeadlessLoadFailed(t *testing.T) {
	path := writeFile(t, "answers.json", `{}`)
	a, formAdapter, out, _ := newTestApp(t, path)

	formAdapter.EXPECT().FetchForm(gomock.Any(), gomock.Any()).Return(models.FormDefinition{}, adapter.ErrNotFound)

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, service.ErrFormNotFound)
	assert.Equal(t, app.MsgNoFormFound+"\n", out.String())
}

func TestApp_Run_HeadlessRequiredMissing(t *testing.T) {
	path := writeFile(t, "answers.json", `{"f2": true}`)
	a, formAdapter, _, _ := newTestApp(t, path)

	formAdapter.EXPECT().FetchForm(gomock.Any(), gomock.Any()).Return(contactForm, nil)
	formAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, ErrRequiredAnswer)
	assert.Contains(t, err.Error(), "Email")
}

func TestApp_Run_HeadlessSubmitFailed(t *testing.T) {
	path := writeFile(t, "answers.json", `{"f1": "a@b.com"}`)
	a, formAdapter, out, _ := newTestApp(t, path)

	formAdapter.EXPECT().FetchForm(gomock.Any(), gomock.Any()).Return(contactForm, nil)
	formAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(models.MessageResponse{}, &adapter.ResponseError{StatusCode: 400, Message: "Email is taken"})

	err := a.Run(context.Background())
	var subErr *service.SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "Email is taken", subErr.Message)
	assert.Equal(t, "Email is taken\n", out.String())
}

func TestApp_Run_HeadlessBadAnswers(t *testing.T) {
	a, _, _, _ := newTestApp(t, filepath.Join(t.TempDir(), "missing.json"))

	err := a.Run(context.Background())
	assert.Error(t, err)
}
