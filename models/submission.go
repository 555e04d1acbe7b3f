// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionConfig holds the hosting-environment identifiers sent with every
// schema fetch and submission. They are passed through unchanged.
type SessionConfig struct {
	TenantID  string
	ProjectID string
}

// FormRequest identifies a form on the backend.
type FormRequest struct {
	TenantID  string `json:"tenantId"`
	ProjectID string `json:"projectId"`
	FormName  string `json:"formName"`
}

// SubmissionPayload is the structured object handed to the submission call.
type SubmissionPayload struct {
	TenantID  string   `json:"tenantId"`
	ProjectID string   `json:"projectId"`
	FormName  string   `json:"formName"`
	FormData  FormData `json:"formData"`
}

// Identifiers returns the form identifiers of the payload.
func (p SubmissionPayload) Identifiers() FormRequest {
	return FormRequest{TenantID: p.TenantID, ProjectID: p.ProjectID, FormName: p.FormName}
}
