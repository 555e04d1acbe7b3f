// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmitInFlight is returned by BeginSubmit while a previous submit
	// has not completed.
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrSessionClosed is returned for any transition out of a terminal
	// state.
	ErrSessionClosed = errors.New("session is closed")

	// ErrInvalidTransition is returned when an edge is not part of the
	// state graph.
	ErrInvalidTransition = errors.New("invalid session transition")
)

// TransitionError describes a rejected transition.
type TransitionError struct {
	From State
	To   State
	Err  error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s -> %s: %v", e.From, e.To, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}
