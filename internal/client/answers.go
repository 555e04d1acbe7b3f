// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-form-runner/internal/form"
	"github.com/MKhiriev/go-form-runner/models"
)

// Answer is the answer to one field: a string, a list of strings or a
// boolean.
type Answer struct {
	values []string
	flag   *bool
}

// UnmarshalJSON implements json.Unmarshaler. Numbers are kept as their
// literal text, null is no answer.
func (a *Answer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*a = Answer{}

	switch {
	case bytes.Equal(b, []byte("null")):
		return nil
	case bytes.Equal(b, []byte("true")), bytes.Equal(b, []byte("false")):
		flag := b[0] == 't'
		a.flag = &flag
		return nil
	case len(b) > 0 && b[0] == '[':
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return fmt.Errorf("%w: list answers must hold strings: %w", ErrInvalidAnswers, err)
		}
		a.values = items
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
		}
		a.values = []string{s}
		return nil
	case len(b) > 0 && (b[0] == '-' || b[0] >= '0' && b[0] <= '9'):
		a.values = []string{string(b)}
		return nil
	}

	return fmt.Errorf("%w: unsupported answer %s", ErrInvalidAnswers, b)
}

// Answers maps a field id to its answer.
type Answers map[string]Answer

// LoadAnswers reads a JSON object of answers keyed by field id.
func LoadAnswers(path string) (Answers, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}

	answers := make(Answers)
	if err = json.Unmarshal(b, &answers); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
	}
	return answers, nil
}

// Raw converts the answers into the raw submission the rendered controls of
// def would produce. Answers to unknown field ids are ignored.
func (a Answers) Raw(def models.FormDefinition) (form.RawSubmission, error) {
	raw := make(form.RawSubmission, len(def.Fields))

	for _, c := range form.MapControls(def) {
		answer, ok := a[c.Field.FieldID]
		if !ok {
			continue
		}
		id := c.Field.FieldID

		switch {
		case c.Category == form.FileReference:
			for _, path := range answer.values {
				h, ok := form.OpenFileHandle(path)
				if !ok {
					return nil, fmt.Errorf("%w: %s: %q", ErrAnswerFileNotFound, c.Field.PayloadKey(), path)
				}
				raw.Add(id, form.File(h))
			}
		case c.Boolean():
			if answer.on() {
				raw.Set(id, form.Text(form.CheckboxOn))
			}
		case answer.flag != nil:
			raw.Set(id, form.Text(strconv.FormatBool(*answer.flag)))
		default:
			for _, v := range answer.values {
				raw.Add(id, form.Text(v))
			}
		}
	}

	return raw, nil
}

// on reports whether a boolean checkbox is ticked: true, or the literal
// checkbox value.
func (a Answer) on() bool {
	if a.flag != nil {
		return *a.flag
	}
	return len(a.values) > 0 && a.values[0] == form.CheckboxOn
}
