// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form is the schema-to-runtime-form engine.
//
// It maps every field of a [models.FormDefinition] to the control semantics
// the renderer must apply ([MapControl]), and converts the raw values a
// rendered form submitted back into a typed, labeled payload ([Extract],
// [Serialize]).
//
// Everything in this package is a total function: unknown field types fall
// back to simple text semantics, and absent or malformed raw input degrades
// to a documented fallback value instead of an error.
package form
