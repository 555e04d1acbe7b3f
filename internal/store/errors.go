// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFormNotFound is returned when no form matches the requested
	// tenant, project and form name.
	ErrFormNotFound = errors.New("form not found")

	// ErrFormAlreadyExists is returned when a form with the same identifiers
	// is already stored.
	ErrFormAlreadyExists = errors.New("form already exists")

	// ErrRegistrationNotSaved is returned when an INSERT of a registration
	// completes without error but affects no rows.
	ErrRegistrationNotSaved = errors.New("registration was not saved")

	// ErrUnsupportedDSN is returned when the driver cannot be derived from
	// the database DSN.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan row")

	// ErrEncodingColumn is returned when a JSON column value cannot be
	// encoded or decoded.
	ErrEncodingColumn = errors.New("failed to encode json column")
)
