// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-form-runner/internal/app"
	"github.com/MKhiriev/go-form-runner/internal/config"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/utils"
	"github.com/MKhiriev/go-form-runner/models"
	"github.com/go-resty/resty/v2"
)

const (
	FetchFormPath          = app.FetchFormPath
	CreateRegistrationPath = app.CreateRegistrationPath
)

type httpFormAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPFormAdapter constructs an HTTP/JSON implementation of [FormAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. A configured token is sent verbatim in the Authorization
// header of every request.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPFormAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (FormAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithBaseURL(baseURL, adapterCfg.RequestTimeout)

	return &httpFormAdapter{
		client: client,
		token:  strings.TrimSpace(adapterCfg.Token),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchForm implements [FormAdapter]. It POSTs the identifiers to
// [FetchFormPath] and decodes the {data: form} envelope.
func (h *httpFormAdapter) FetchForm(ctx context.Context, req models.FormRequest) (models.FormDefinition, error) {
	var envelope models.FormResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&envelope).
		Post(FetchFormPath)
	if err != nil {
		return models.FormDefinition{}, fmt.Errorf("fetch form request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FormDefinition{}, err
	}

	if envelope.Data == nil {
		return models.FormDefinition{}, fmt.Errorf("fetch form: %w: empty form data", ErrNotFound)
	}

	h.logger.Debug().
		Str("form", envelope.Data.FormName).
		Int("fields", len(envelope.Data.Fields)).
		Msg("form fetched")

	return *envelope.Data, nil
}

// Submit implements [FormAdapter]. It POSTs payload to
// [CreateRegistrationPath]. An empty success body yields an empty
// [models.MessageResponse].
func (h *httpFormAdapter) Submit(ctx context.Context, payload models.SubmissionPayload) (models.MessageResponse, error) {
	var result models.MessageResponse

	resp, err := h.request(ctx).
		SetBody(payload).
		SetResult(&result).
		Post(CreateRegistrationPath)
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("submit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}

func (h *httpFormAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if h.token != "" {
		req.SetHeader("Authorization", h.token)
	}
	return req
}
