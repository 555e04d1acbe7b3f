// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// MaxBodyBytes caps the request bodies accepted by [ReadJSON].
const MaxBodyBytes = 1 << 20

const contentTypeJSON = "application/json; charset=utf-8"

// ErrEmptyBody is returned by [ReadJSON] for a request without a body.
var ErrEmptyBody = errors.New("request body is empty")

// WriteJSON marshals data with goccy/go-json and writes it with statusCode.
// It returns the number of body bytes written. When data cannot be
// marshaled, a 500 is written instead and the marshal error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding JSON response: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// ReadJSON decodes a single JSON value from the request body into v. Input
// past [MaxBodyBytes] is cut off, so larger bodies fail to decode.
func ReadJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	return nil
}
