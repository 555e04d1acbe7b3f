// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sync"

	"github.com/MKhiriev/go-form-runner/models"
)

// TransitionFunc observes every accepted transition. It is called with the
// session lock released.
type TransitionFunc func(from, to State)

// Session owns the form definition and the in-flight submission flag of one
// form instance.
type Session struct {
	mu      sync.Mutex
	state   State
	form    *models.FormDefinition
	message string
	loadErr error

	onTransition TransitionFunc
}

// New returns a session in the Idle state.
func New() *Session {
	return &Session{state: Idle}
}

// OnTransition installs fn as the transition observer.
func (s *Session) OnTransition(fn TransitionFunc) {
	s.mu.Lock()
	s.onTransition = fn
	s.mu.Unlock()
}

// BeginLoad marks the schema fetch as started.
func (s *Session) BeginLoad() error {
	return s.move(Loading, nil)
}

// CompleteLoad stores the fetched definition and enters Loaded.
func (s *Session) CompleteLoad(def models.FormDefinition) error {
	return s.move(Loaded, func() {
		s.form = &def
	})
}

// FailLoad records a failed or empty fetch and enters LoadFailed.
func (s *Session) FailLoad(err error, message string) error {
	return s.move(LoadFailed, func() {
		s.loadErr = err
		s.message = message
	})
}

// MarkReady makes a loaded form available for submission.
func (s *Session) MarkReady() error {
	return s.move(Ready, nil)
}

// BeginSubmit enters Submitting. It is accepted from Ready and, after a
// failed attempt, from SubmitFailed by passing through Ready. While a submit
// is in flight it fails with ErrSubmitInFlight.
func (s *Session) BeginSubmit() error {
	s.mu.Lock()
	if s.state == SubmitFailed {
		from := s.state
		s.state = Ready
		s.message = ""
		fn := s.onTransition
		s.mu.Unlock()
		notify(fn, from, Ready)
	} else {
		s.mu.Unlock()
	}

	return s.move(Submitting, nil)
}

// CompleteSubmit records the success message and enters SubmitSucceeded.
func (s *Session) CompleteSubmit(message string) error {
	return s.move(SubmitSucceeded, func() {
		s.message = message
	})
}

// FailSubmit records the failure message and enters SubmitFailed.
func (s *Session) FailSubmit(message string) error {
	return s.move(SubmitFailed, func() {
		s.message = message
	})
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Form returns the loaded definition, if any.
func (s *Session) Form() (models.FormDefinition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form == nil {
		return models.FormDefinition{}, false
	}
	return *s.form, true
}

// Message returns the user-facing message of the last outcome.
func (s *Session) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// LoadErr returns the error recorded by FailLoad.
func (s *Session) LoadErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// CanSubmit reports whether the submit control is enabled.
func (s *Session) CanSubmit() bool {
	st := s.State()
	return st == Ready || st == SubmitFailed
}

func (s *Session) move(to State, apply func()) error {
	s.mu.Lock()
	from := s.state

	if err := checkTransition(from, to); err != nil {
		s.mu.Unlock()
		return err
	}

	s.state = to
	if apply != nil {
		apply()
	}
	fn := s.onTransition
	s.mu.Unlock()

	notify(fn, from, to)
	return nil
}

func checkTransition(from, to State) error {
	switch {
	case canTransition(from, to):
		return nil
	case from.Terminal():
		return &TransitionError{From: from, To: to, Err: ErrSessionClosed}
	case from == Submitting && to == Submitting:
		return &TransitionError{From: from, To: to, Err: ErrSubmitInFlight}
	default:
		return &TransitionError{From: from, To: to, Err: ErrInvalidTransition}
	}
}

func notify(fn TransitionFunc, from, to State) {
	if fn != nil {
		fn(from, to)
	}
}
