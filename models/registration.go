// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StoredForm is a form definition as persisted by the reference backend,
// scoped to a tenant and project.
type StoredForm struct {
	ID        string    `json:"id" yaml:"-"`
	TenantID  string    `json:"tenantId" yaml:"tenantId"`
	ProjectID string    `json:"projectId" yaml:"projectId"`
	CreatedAt time.Time `json:"createdAt" yaml:"-"`

	FormDefinition `yaml:",inline"`
}

// Identifiers returns the lookup key of the stored form.
func (f StoredForm) Identifiers() FormRequest {
	return FormRequest{TenantID: f.TenantID, ProjectID: f.ProjectID, FormName: f.FormName}
}

// Registration is an accepted submission.
type Registration struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	ProjectID string    `json:"projectId"`
	FormName  string    `json:"formName"`
	FormData  FormData  `json:"formData"`
	CreatedAt time.Time `json:"createdAt"`
}

// SeedFile is the YAML document the backend loads forms from at startup.
type SeedFile struct {
	Forms []StoredForm `yaml:"forms"`
}
