// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-runner/internal/adapter"
	"github.com/MKhiriev/go-form-runner/internal/app"
	"github.com/MKhiriev/go-form-runner/internal/config"
	"github.com/MKhiriev/go-form-runner/internal/form"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/session"
	"github.com/MKhiriev/go-form-runner/models"
)

// clientFormService is the default implementation of [ClientFormService].
type clientFormService struct {
	adapter adapter.FormAdapter
	session *session.Session

	request models.FormRequest
	config  models.SessionConfig

	logger *logger.Logger
}

// NewClientFormService constructs a [ClientFormService] for the form named by
// cfg. Every session transition is logged at debug level.
func NewClientFormService(formAdapter adapter.FormAdapter, cfg config.Form, log *logger.Logger) ClientFormService {
	req := models.FormRequest{TenantID: cfg.TenantID, ProjectID: cfg.ProjectID, FormName: cfg.Name}
	formLog := log.ForForm(req)

	s := session.New()
	s.OnTransition(func(from, to session.State) {
		formLog.Debug().Stringer("from", from).Stringer("to", to).Msg("session transition")
	})

	return &clientFormService{
		adapter: formAdapter,
		session: s,
		request: req,
		config:  models.SessionConfig{TenantID: cfg.TenantID, ProjectID: cfg.ProjectID},
		logger:  formLog,
	}
}

func (s *clientFormService) Session() *session.Session {
	return s.session
}

// Load implements [ClientFormService].
func (s *clientFormService) Load(ctx context.Context) error {
	if err := s.session.BeginLoad(); err != nil {
		return err
	}

	def, err := s.adapter.FetchForm(ctx, s.request)
	if err != nil {
		sentinel := ErrFetchForm
		if errors.Is(err, adapter.ErrNotFound) {
			sentinel = ErrFormNotFound
		}
		loadErr := fmt.Errorf("%w: %w", sentinel, err)

		s.logger.Err(err).Msg("form load failed")
		if failErr := s.session.FailLoad(loadErr, app.MsgNoFormFound); failErr != nil {
			return failErr
		}
		return loadErr
	}

	if dups := form.KeyCollisions(def); len(dups) > 0 {
		s.logger.Warn().Strs("keys", dups).Msg("fields share a payload key, later fields overwrite earlier ones")
	}

	if err = s.session.CompleteLoad(def); err != nil {
		return err
	}
	return s.session.MarkReady()
}

// Payload implements [ClientFormService].
func (s *clientFormService) Payload(raw form.RawSubmission) (models.SubmissionPayload, error) {
	def, ok := s.session.Form()
	if !ok {
		return models.SubmissionPayload{}, ErrNoFormLoaded
	}
	return form.Serialize(s.config, def, raw), nil
}

// Submit implements [ClientFormService].
func (s *clientFormService) Submit(ctx context.Context, raw form.RawSubmission) (string, error) {
	if err := s.session.BeginSubmit(); err != nil {
		return "", fmt.Errorf("submit rejected: %w", err)
	}

	def, _ := s.session.Form()
	payload := form.Serialize(s.config, def, raw)

	resp, err := s.adapter.Submit(ctx, payload)
	if err != nil {
		msg := submissionFailureMessage(err)
		s.logger.Err(err).Str("message", msg).Msg("submission failed")

		if failErr := s.session.FailSubmit(msg); failErr != nil {
			return "", failErr
		}
		return "", &SubmissionError{Message: msg, Err: err}
	}

	msg := submissionSuccessMessage(resp.Message)
	s.logger.Info().Int("fields", len(payload.FormData)).Msg("submission accepted")

	if err = s.session.CompleteSubmit(msg); err != nil {
		return "", err
	}
	return msg, nil
}
