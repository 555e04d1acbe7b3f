// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is an interactive front end of the form service.
type UI interface {
	// Run blocks until the user leaves the form.
	Run(ctx context.Context) error
}
