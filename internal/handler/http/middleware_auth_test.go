// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-form-runner/internal/app"
	"github.com/MKhiriev/go-form-runner/internal/service"
	"github.com/MKhiriev/go-form-runner/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		wantParse  bool
		wantStatus int
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "three parts", header: "Bearer a b", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer broken", wantParse: true, parseErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, true)
			if tt.wantParse {
				m.auth.EXPECT().ParseToken(gomock.Any(), "broken").Return(models.Token{}, tt.parseErr)
			}

			var header http.Header
			if tt.header != "" {
				header = http.Header{"Authorization": {tt.header}}
			}
			rr := doJSON(t, h.Init(), http.MethodPost, app.FetchFormPath, testReq, header)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, decodeMessage(t, rr))
		})
	}
}

func TestAuth_TenantScope(t *testing.T) {
	for _, header := range []string{"Bearer good", "good"} {
		t.Run("matching tenant with "+header, func(t *testing.T) {
			h, m := newTestHandler(t, true)
			m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{TenantID: "t1"}, nil)
			m.forms.EXPECT().GetForm(gomock.Any(), testReq).Return(testDef, nil)

			rr := doJSON(t, h.Init(), http.MethodPost, app.FetchFormPath, testReq, http.Header{"Authorization": {header}})

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}

	t.Run("other tenant is forbidden", func(t *testing.T) {
		h, m := newTestHandler(t, true)
		m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{TenantID: "t2"}, nil)

		rr := doJSON(t, h.Init(), http.MethodPost, app.CreateRegistrationPath, testPayload(), http.Header{"Authorization": {"Bearer good"}})

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, app.MsgAccessDenied, decodeMessage(t, rr))
	})

	t.Run("version stays public", func(t *testing.T) {
		h, m := newTestHandler(t, true)
		m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("dev")

		rr := doJSON(t, h.Init(), http.MethodGet, app.VersionPath, nil, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
