// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FormResponse is the body returned by the schema fetch endpoint.
// A nil Data means that no form matched the requested identifiers.
type FormResponse struct {
	Data *FormDefinition `json:"data"`
}

// MessageResponse is the generic body of the submission endpoint and of all
// error responses. Message is the human-readable text surfaced to the user.
type MessageResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// RegistrationResult is carried in MessageResponse.Data after a successful
// submission.
type RegistrationResult struct {
	RegistrationID string `json:"registrationId"`
}
