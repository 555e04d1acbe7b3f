// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-runner/models"
)

var (
	ErrEmptyFormName    = errors.New("form name is empty")
	ErrEmptyFieldID     = errors.New("field id is empty")
	ErrDuplicateFieldID = errors.New("duplicate field id")
)

// Validate checks the structural invariants of a definition authored for
// the backend: a non-blank form name and unique, non-blank field ids.
// Label collisions are legal and not reported here.
func Validate(def models.FormDefinition) error {
	if strings.TrimSpace(def.FormName) == "" {
		return ErrEmptyFormName
	}

	seen := make(map[string]struct{}, len(def.Fields))
	for i, f := range def.Fields {
		if strings.TrimSpace(f.FieldID) == "" {
			return fmt.Errorf("field #%d: %w", i, ErrEmptyFieldID)
		}
		if _, ok := seen[f.FieldID]; ok {
			return fmt.Errorf("field %q: %w", f.FieldID, ErrDuplicateFieldID)
		}
		seen[f.FieldID] = struct{}{}
	}

	return nil
}
