// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the form client and the reference backend.
//
// Configuration is assembled from multiple sources. Sources are merged with
// mergo, so the first source that sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. .env file
//
// The main entry points are [GetClientConfig] for the form client and
// [GetServerConfig] for the reference backend.
package config
