// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNormalizeOptions(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want Options
	}{
		{"nil", nil, Options{}},
		{"trims and drops empty", []string{" A ", "", "  ", "B"}, Options{"A", "B"}},
		{"keeps duplicates and order", []string{"b", "a", "b"}, Options{"b", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOptions(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeOptions(got), "normalization must be idempotent")
		})
	}
}

func TestOptions_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Options
	}{
		{"strings", `[" A ", "", "B"]`, Options{"A", "B"}},
		{"mixed scalars", `[1, 2.5, true, null, "x"]`, Options{"1", "2.5", "true", "null", "x"}},
		{"nested values skipped", `[["a"], {"k": 1}, "b"]`, Options{"b"}},
		{"null", `null`, Options{}},
		{"object", `{"a": 1}`, Options{}},
		{"string", `"A,B"`, Options{}},
		{"empty", `[]`, Options{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Options
			require.NoError(t, json.Unmarshal([]byte(tt.in), &o))
			assert.Equal(t, tt.want, o)
		})
	}
}

func TestFieldDefinition_DecodeJSON(t *testing.T) {
	body := `{
		"fieldId": "f1",
		"label": "Email",
		"fieldType": "email",
		"requiredField": true
	}`

	var f FieldDefinition
	require.NoError(t, json.Unmarshal([]byte(body), &f))

	assert.Equal(t, "f1", f.FieldID)
	assert.Equal(t, FieldTypeEmail, f.FieldType)
	assert.True(t, f.RequiredField)
	assert.Empty(t, f.Options)

	out, err := json.Marshal(FieldDefinition{FieldID: "f2", FieldType: FieldTypeRadio})
	require.NoError(t, err)
	assert.JSONEq(t, `{"fieldId":"f2","label":"","fieldType":"radio","options":[],"requiredField":false}`, string(out))
}

func TestOptions_UnmarshalYAML(t *testing.T) {
	doc := `
fieldId: f1
label: Size
fieldType: radio
options: [" S ", "", 10, ~, [nested]]
`
	var f FieldDefinition
	require.NoError(t, yaml.Unmarshal([]byte(doc), &f))
	assert.Equal(t, Options{"S", "10", "null"}, f.Options)

	var scalar FieldDefinition
	require.NoError(t, yaml.Unmarshal([]byte("options: A\n"), &scalar))
	assert.Equal(t, Options{}, scalar.Options)
}

func TestFieldDefinition_PayloadKey(t *testing.T) {
	assert.Equal(t, "Email", FieldDefinition{FieldID: "f1", Label: "Email"}.PayloadKey())
	assert.Equal(t, "f1", FieldDefinition{FieldID: "f1"}.PayloadKey())
}

func TestFieldType_Known(t *testing.T) {
	assert.True(t, FieldTypeFile.Known())
	assert.False(t, FieldType("signature").Known())
	assert.False(t, FieldType("").Known())
}
