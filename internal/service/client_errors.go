// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-form-runner/internal/adapter"
	"github.com/MKhiriev/go-form-runner/internal/app"
)

var (
	// ErrFormNotFound is returned by Load when the backend holds no form
	// for the configured identifiers.
	ErrFormNotFound = errors.New("no form found")

	// ErrFetchForm is returned by Load for any other fetch failure.
	ErrFetchForm = errors.New("form fetch failed")

	// ErrNoFormLoaded is returned by operations that need a loaded form.
	ErrNoFormLoaded = errors.New("no form loaded")
)

// SubmissionError is a failed submission attempt. Message is what the user
// is shown: the server message when one was reported, a generic fallback
// otherwise.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// submissionFailureMessage returns the best available message of a failed
// submission.
func submissionFailureMessage(err error) string {
	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}
	return app.MsgSubmissionFailed
}

// submissionSuccessMessage returns the message a successful submission is
// reported with.
func submissionSuccessMessage(message string) string {
	if message != "" {
		return message
	}
	return app.MsgSubmissionSucceeded
}
