// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the wire-level domain types shared by the form
// client and the reference backend: field and form schemas, typed field
// values, submission payloads and HTTP envelopes.
package models

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FieldType is the schema-declared type of a form field.
//
// The set of constants below is the closed enumeration understood by the
// renderer. Any other value is still a valid FieldType: it falls into the
// open default bucket and is treated as a simple text field.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypePassword FieldType = "password"
	FieldTypeDate     FieldType = "date"
	FieldTypeNumber   FieldType = "number"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeDropdown FieldType = "dropdown"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeFile     FieldType = "file"
)

// Known reports whether t belongs to the closed enumeration.
func (t FieldType) Known() bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypePassword, FieldTypeDate, FieldTypeNumber,
		FieldTypeTextarea, FieldTypeDropdown, FieldTypeCheckbox, FieldTypeRadio, FieldTypeFile:
		return true
	}
	return false
}

// Options is the normalized option list of a choice field.
//
// Decoding normalizes the raw schema value: every element is stringified,
// trimmed, and dropped when empty. Order and duplicates are preserved. A
// missing or non-array value decodes to an empty list instead of an error.
type Options []string

// NormalizeOptions trims every option and discards empty results. It never
// returns nil and is idempotent.
func NormalizeOptions(raw []string) Options {
	out := make(Options, 0, len(raw))
	for _, opt := range raw {
		if opt = strings.TrimSpace(opt); opt != "" {
			out = append(out, opt)
		}
	}
	return out
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Options) UnmarshalJSON(b []byte) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(b, &elems); err != nil {
		// non-array schema values carry no options
		*o = Options{}
		return nil
	}

	raw := make([]string, 0, len(elems))
	for _, elem := range elems {
		if s, ok := stringifyOption(elem); ok {
			raw = append(raw, s)
		}
	}
	*o = NormalizeOptions(raw)
	return nil
}

// stringifyOption renders a single JSON array element as option text.
// Nested arrays and objects have no sensible text form and are skipped.
func stringifyOption(elem json.RawMessage) (string, bool) {
	elem = bytes.TrimSpace(elem)
	if len(elem) == 0 {
		return "", false
	}

	switch elem[0] {
	case '"':
		var s string
		if err := json.Unmarshal(elem, &s); err != nil {
			return "", false
		}
		return s, true
	case '[', '{':
		return "", false
	default:
		// numbers, booleans and null keep their literal text
		return string(elem), true
	}
}

// MarshalJSON implements json.Marshaler. An empty list is encoded as [].
func (o Options) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(o))
}

// UnmarshalYAML implements yaml.Unmarshaler with the same normalization rules
// as UnmarshalJSON.
func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		*o = Options{}
		return nil
	}

	raw := make([]string, 0, len(value.Content))
	for _, node := range value.Content {
		if node.Kind != yaml.ScalarNode {
			continue
		}
		if node.Tag == "!!null" {
			raw = append(raw, "null")
			continue
		}
		raw = append(raw, node.Value)
	}
	*o = NormalizeOptions(raw)
	return nil
}

// FieldDefinition describes one input control of a form.
type FieldDefinition struct {
	// FieldID is unique within a form and is the key raw values are
	// submitted under.
	FieldID string `json:"fieldId" yaml:"fieldId"`

	// Label is the display name and the key of the field in the payload.
	Label string `json:"label" yaml:"label"`

	FieldType FieldType `json:"fieldType" yaml:"fieldType"`

	// Options is meaningful only for dropdown, checkbox and radio fields.
	Options Options `json:"options" yaml:"options"`

	// RequiredField drives the required marker and native required control
	// semantics. It is not payload validation.
	RequiredField bool `json:"requiredField" yaml:"requiredField"`

	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// PayloadKey returns the key under which the field's value is written to
// the submission payload: the label, or the field id when the label is empty.
func (f FieldDefinition) PayloadKey() string {
	if f.Label != "" {
		return f.Label
	}
	return f.FieldID
}

// FormDefinition is the schema of a whole form. It is treated as immutable
// for the lifetime of one render/submit cycle.
type FormDefinition struct {
	// FormName is both the display title and the identifier echoed back in
	// the submission payload.
	FormName string `json:"formName" yaml:"formName"`

	// Fields are ordered; render and extraction follow this order.
	Fields []FieldDefinition `json:"fields" yaml:"fields"`
}
