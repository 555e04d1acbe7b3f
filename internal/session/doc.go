// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the lifecycle of a single form instance, from
// the schema fetch through the submission outcome.
//
// State graph:
//
//	Idle -> Loading -> Loaded -> Ready -> Submitting -> SubmitSucceeded
//	                -> LoadFailed         Submitting -> SubmitFailed -> Ready
//
// SubmitSucceeded and LoadFailed are terminal for the instance. A Session is
// safe for concurrent use; duplicate submits are rejected with
// [ErrSubmitInFlight].
package session
