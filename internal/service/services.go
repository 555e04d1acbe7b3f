// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-form-runner/internal/config"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/queue"
	"github.com/MKhiriev/go-form-runner/internal/store"
	"github.com/MKhiriev/go-form-runner/internal/utils"
)

// Services groups the reference backend services.
type Services struct {
	FormService         FormService
	RegistrationService RegistrationService
	AuthService         AuthService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, publisher queue.Publisher, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	idGenerator := utils.NewUUIDGenerator()

	return &Services{
		FormService: NewFormService(storages.FormRepository, idGenerator, logger),
		RegistrationService: NewRegistrationService(
			storages.FormRepository,
			storages.RegistrationRepository,
			publisher,
			idGenerator,
			logger,
		),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
