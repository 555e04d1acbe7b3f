// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the form
// client and by the reference backend handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, shown in the terminal UI or logged to describe the
// outcome of an operation.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or misses the form identifiers.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when the authorization token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoTenantIDProvided is returned when a handler requires the tenant id
	// from the token claims but none is present in the request context.
	MsgNoTenantIDProvided = "no tenant ID provided"

	// MsgAccessDenied is returned when the token tenant differs from the
	// tenant named in the request body.
	MsgAccessDenied = "access denied"

	// MsgFormNotFound is the body message of a schema fetch that matched no
	// form.
	MsgFormNotFound = "form not found"

	// MsgFormAlreadyExists is returned when a seeded form collides with an
	// existing one.
	MsgFormAlreadyExists = "form already exists"

	// MsgIsRequired is appended to a field label when a required field of a
	// registration is blank.
	MsgIsRequired = "is required"

	// MsgRegistrationCreated is returned with the id of an accepted
	// registration.
	MsgRegistrationCreated = "Registration submitted successfully"
)

// Client-side status messages.
const (
	// MsgSubmissionSucceeded is shown after a successful submission whose
	// response carried no message.
	MsgSubmissionSucceeded = "Registration submitted successfully"

	// MsgSubmissionFailed is shown after a failed submission whose error
	// carried no message.
	MsgSubmissionFailed = "Submission failed"

	// MsgNoFormFound is the empty state shown when no form was loaded.
	MsgNoFormFound = "No form found"

	// MsgSubmitting replaces the submit button caption while a submission is
	// in flight.
	MsgSubmitting = "Submitting..."

	// MsgSubmit is the idle submit button caption.
	MsgSubmit = "Submit"
)
