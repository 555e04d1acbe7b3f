// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/mock"
	"github.com/MKhiriev/go-form-runner/internal/service"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	forms         *mock.MockFormService
	registrations *mock.MockRegistrationService
	auth          *mock.MockAuthService
	appInfo       *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, authEnabled bool) (*Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		forms:         mock.NewMockFormService(ctrl),
		registrations: mock.NewMockRegistrationService(ctrl),
		auth:          mock.NewMockAuthService(ctrl),
		appInfo:       mock.NewMockAppInfoService(ctrl),
	}
	m.auth.EXPECT().Enabled().Return(authEnabled).AnyTimes()

	h := NewHandler(&service.Services{
		FormService:         m.forms,
		RegistrationService: m.registrations,
		AuthService:         m.auth,
		AppInfoService:      m.appInfo,
	}, logger.Nop())
	return h, m
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Message
}
