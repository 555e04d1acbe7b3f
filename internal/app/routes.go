// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Endpoint paths shared by the client adapter and the backend router.
const (
	// FetchFormPath is the schema fetch endpoint.
	FetchFormPath = "/api/v1/admin/formBuilder/getFormByIdentifiers"

	// CreateRegistrationPath is the submission endpoint.
	CreateRegistrationPath = "/api/v1/admin/registrations/createRegistration"

	// VersionPath reports the backend version as plain text.
	VersionPath = "/api/version"
)
