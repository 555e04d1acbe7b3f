// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-form-runner/internal/form"
	"github.com/MKhiriev/go-form-runner/internal/session"
	"github.com/MKhiriev/go-form-runner/models"
)

// ClientFormService drives one form instance through its session: it
// fetches the schema, serializes the user's input and submits it, folding
// every I/O outcome into the [session.Session].
type ClientFormService interface {
	// Load fetches the configured form. On success the session is Ready.
	// On failure the session is LoadFailed with the "No form found"
	// message, and the returned error wraps [ErrFormNotFound] or
	// [ErrFetchForm].
	Load(ctx context.Context) error

	// Payload serializes raw against the loaded form without submitting it.
	Payload(raw form.RawSubmission) (models.SubmissionPayload, error)

	// Submit serializes raw and submits it. It returns the success message
	// shown to the user, or a [*SubmissionError] carrying the failure
	// message. A second Submit while one is in flight is rejected with an
	// error wrapping [session.ErrSubmitInFlight] and never reaches the
	// backend.
	Submit(ctx context.Context, raw form.RawSubmission) (string, error)

	// Session exposes the state of the form instance.
	Session() *session.Session
}
