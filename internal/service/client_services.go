// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-form-runner/internal/adapter"
	"github.com/MKhiriev/go-form-runner/internal/config"
	"github.com/MKhiriev/go-form-runner/internal/logger"
)

type ClientServices struct {
	FormService ClientFormService
}

func NewClientServices(formAdapter adapter.FormAdapter, cfg config.Form, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		FormService: NewClientFormService(formAdapter, cfg, logger),
	}
}
