// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-form-runner/models"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(body),
		Body:       body,
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.err = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.err = ErrUnauthorized
	case http.StatusForbidden:
		respErr.err = ErrForbidden
	case http.StatusNotFound:
		respErr.err = ErrNotFound
	case http.StatusConflict:
		respErr.err = ErrConflict
	case http.StatusBadGateway:
		respErr.err = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.err = ErrInternalServerError
	default:
		respErr.err = ErrUnexpectedStatus
	}

	return respErr
}

// errorMessage extracts the "message" field of a JSON error body. Non-JSON
// bodies carry no message.
func errorMessage(body string) string {
	if body == "" {
		return ""
	}

	var msg models.MessageResponse
	if err := json.Unmarshal([]byte(body), &msg); err != nil {
		return ""
	}
	return strings.TrimSpace(msg.Message)
}
