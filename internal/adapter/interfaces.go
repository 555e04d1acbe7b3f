// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction the form client
// uses to talk to the form backend.
//
// The primary abstraction is [FormAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPFormAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] that
// wraps one of the sentinel values in errors.go, so callers can use
// [errors.Is] for status checks and [errors.As] to read the message the
// server reported.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-form-runner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/form_adapter_mock.go -package=mock

// FormAdapter defines transport-agnostic communication with the form
// backend.
type FormAdapter interface {
	// FetchForm retrieves the form identified by req. A response without a
	// form is reported as [ErrNotFound].
	FetchForm(ctx context.Context, req models.FormRequest) (models.FormDefinition, error)

	// Submit sends payload and returns the server response body. The
	// message of a failed submission is available via [*ResponseError].
	Submit(ctx context.Context, payload models.SubmissionPayload) (models.MessageResponse, error)
}
