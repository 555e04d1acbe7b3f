// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the form client runtime.
//
// The client loads one form from the backend and either renders it in the
// terminal UI or, when an answers file is configured, fills and submits it
// headlessly. Both runtimes go through the same client form service, so the
// payload sent to the backend does not depend on how it was filled in.
package client
