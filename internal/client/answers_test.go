// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-runner/internal/form"
	"github.com/MKhiriev/go-form-runner/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── LoadAnswers ──────────────────────────────────────────────────────────

func TestLoadAnswers(t *testing.T) {
	path := writeFile(t, "answers.json", `{
		"name": "Ada",
		"age": 36,
		"topics": ["Go", "Zig"],
		"newsletter": true,
		"nothing": null
	}`)

	answers, err := LoadAnswers(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Ada"}, answers["name"].values)
	assert.Equal(t, []string{"36"}, answers["age"].values)
	assert.Equal(t, []string{"Go", "Zig"}, answers["topics"].values)
	require.NotNil(t, answers["newsletter"].flag)
	assert.True(t, *answers["newsletter"].flag)
	assert.Empty(t, answers["nothing"].values)
	assert.Nil(t, answers["nothing"].flag)
}

func TestLoadAnswers_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not an object", content: `["a"]`},
		{name: "nested object", content: `{"a": {"b": 1}}`},
		{name: "list of numbers", content: `{"a": [1, 2]}`},
		{name: "broken json", content: `{"a": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAnswers(writeFile(t, "answers.json", tt.content))
			assert.ErrorIs(t, err, ErrInvalidAnswers)
		})
	}
}

func TestLoadAnswers_MissingFile(t *testing.T) {
	_, err := LoadAnswers(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidAnswers)
}

// ── Raw ──────────────────────────────────────────────────────────────────

func TestAnswers_Raw(t *testing.T) {
	cv := writeFile(t, "cv.pdf", "pdf")

	def := models.FormDefinition{
		FormName: "Survey",
		Fields: []models.FieldDefinition{
			{FieldID: "name", Label: "Name", FieldType: models.FieldTypeText},
			{FieldID: "topics", Label: "Topics", FieldType: models.FieldTypeCheckbox, Options: models.Options{"Go", "Zig"}},
			{FieldID: "newsletter", Label: "Newsletter", FieldType: models.FieldTypeCheckbox},
			{FieldID: "terms", Label: "Terms", FieldType: models.FieldTypeCheckbox},
			{FieldID: "cv", Label: "CV", FieldType: models.FieldTypeFile},
			{FieldID: "vip", Label: "VIP", FieldType: models.FieldTypeText},
			{FieldID: "size", Label: "Size", FieldType: models.FieldTypeRadio, Options: models.Options{"S", "M"}},
		},
	}

	answers := Answers{
		"name":       {values: []string{"Ada"}},
		"topics":     {values: []string{"Go", "Zig"}},
		"newsletter": {flag: boolPtr(true)},
		"terms":      {values: []string{"on"}},
		"cv":         {values: []string{cv}},
		"vip":        {flag: boolPtr(false)},
		"unknown":    {values: []string{"ignored"}},
	}

	raw, err := answers.Raw(def)
	require.NoError(t, err)

	name, _ := raw.Get("name")
	assert.Equal(t, "Ada", name.String())
	assert.Len(t, raw.GetAll("topics"), 2)

	on, _ := raw.Get("newsletter")
	assert.Equal(t, form.CheckboxOn, on.String())
	terms, _ := raw.Get("terms")
	assert.Equal(t, form.CheckboxOn, terms.String())

	file, ok := raw.Get("cv")
	require.True(t, ok)
	h, ok := file.FileHandle()
	require.True(t, ok)
	assert.Equal(t, "cv.pdf", h.Name)
	assert.EqualValues(t, 3, h.Size)

	vip, _ := raw.Get("vip")
	assert.Equal(t, "false", vip.String())

	_, ok = raw.Get("size")
	assert.False(t, ok)
	_, ok = raw["unknown"]
	assert.False(t, ok)

	payload := form.Serialize(models.SessionConfig{TenantID: "t1", ProjectID: "p1"}, def, raw)
	assert.True(t, payload.FormData["Newsletter"].Flag())
	assert.Equal(t, "cv.pdf", payload.FormData["CV"].Text())
	assert.True(t, payload.FormData["Size"].IsNull())
}

func TestAnswers_Raw_FalseCheckboxSubmitsNothing(t *testing.T) {
	def := models.FormDefinition{
		FormName: "F",
		Fields:   []models.FieldDefinition{{FieldID: "ok", Label: "OK", FieldType: models.FieldTypeCheckbox}},
	}

	raw, err := Answers{"ok": {flag: boolPtr(false)}}.Raw(def)
	require.NoError(t, err)
	assert.Empty(t, raw.GetAll("ok"))
}

func TestAnswers_Raw_MissingFile(t *testing.T) {
	def := models.FormDefinition{
		FormName: "F",
		Fields:   []models.FieldDefinition{{FieldID: "cv", Label: "CV", FieldType: models.FieldTypeFile}},
	}

	_, err := Answers{"cv": {values: []string{filepath.Join(t.TempDir(), "nope.pdf")}}}.Raw(def)
	assert.ErrorIs(t, err, ErrAnswerFileNotFound)
	assert.Contains(t, err.Error(), "CV")
}

func boolPtr(b bool) *bool { return &b }
