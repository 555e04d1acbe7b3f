// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the reference backend.
//
// It wires the schema fetch and registration endpoints on a chi router.
// Tracing, access logging and tenant authentication are handled here before
// requests reach the service layer. Error bodies are always JSON objects
// with a "message" field so that the form client can show them verbatim.
package http
