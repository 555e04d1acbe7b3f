// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidAdapterConfigs is returned when the backend address is
	// missing or malformed.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidFormConfigs is returned when the tenant, project or form
	// name of the session is missing.
	ErrInvalidFormConfigs = errors.New("invalid form configuration")

	// ErrInvalidStorageConfigs is returned when the database DSN is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs is returned when the listen address is
	// missing.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAppConfigs is returned when a token must be minted without
	// a sign key.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
