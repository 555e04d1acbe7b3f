// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError is a non-2xx response of the backend.
type ResponseError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is the "message" field of the JSON error body, if any.
	Message string

	// Body is the trimmed raw response body.
	Body string

	err error
}

func (e *ResponseError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.err, detail)
}

func (e *ResponseError) Unwrap() error {
	return e.err
}
