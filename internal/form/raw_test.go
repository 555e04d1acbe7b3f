// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"mime/multipart"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawSubmission_AddGetSet(t *testing.T) {
	raw := RawSubmission{}

	_, ok := raw.Get("f1")
	assert.False(t, ok)
	assert.Empty(t, raw.GetAll("f1"))

	raw.Add("f1", Text("a"))
	raw.Add("f1", Text("b"))

	v, ok := raw.Get("f1")
	require.True(t, ok)
	assert.Equal(t, "a", v.String())
	assert.Len(t, raw.GetAll("f1"), 2)

	raw.Set("f1", Text("c"))
	assert.Equal(t, []RawValue{Text("c")}, raw.GetAll("f1"))
}

func TestRawValue_File(t *testing.T) {
	v := File(FileHandle{Name: "a.png", Size: 10})
	assert.True(t, v.IsFile())
	assert.Equal(t, "a.png", v.String())

	h, ok := v.FileHandle()
	require.True(t, ok)
	assert.Equal(t, int64(10), h.Size)

	_, ok = Text("a.png").FileHandle()
	assert.False(t, ok)
}

func TestFromValues(t *testing.T) {
	raw := FromValues(url.Values{"f1": {"x", "y"}, "f2": {"on"}})
	assert.Len(t, raw.GetAll("f1"), 2)

	v, ok := raw.Get("f2")
	require.True(t, ok)
	assert.Equal(t, CheckboxOn, v.String())
}

func TestFromMultipart(t *testing.T) {
	mf := &multipart.Form{
		Value: map[string][]string{"f1": {"text"}},
		File: map[string][]*multipart.FileHeader{
			"cv": {{Filename: "resume.pdf", Size: 42}},
		},
	}

	raw := FromMultipart(mf)

	v, ok := raw.Get("cv")
	require.True(t, ok)
	h, isFile := v.FileHandle()
	require.True(t, isFile)
	assert.Equal(t, "resume.pdf", h.Name)
	assert.Equal(t, int64(42), h.Size)

	assert.Empty(t, FromMultipart(nil))
}
