// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"mime/multipart"
	"net/url"
)

// FileHandle describes a file selected in a file control. Contents are never
// read; only the name is ever transmitted.
type FileHandle struct {
	Name string
	Size int64
}

// RawValue is one value submitted by a rendered control: either text or a
// file handle.
type RawValue struct {
	text string
	file *FileHandle
}

// Text returns a text raw value.
func Text(s string) RawValue {
	return RawValue{text: s}
}

// File returns a file raw value.
func File(h FileHandle) RawValue {
	return RawValue{file: &h}
}

// IsFile reports whether the value is a file handle.
func (v RawValue) IsFile() bool {
	return v.file != nil
}

// FileHandle returns the file handle and true when v is a file value.
func (v RawValue) FileHandle() (FileHandle, bool) {
	if v.file == nil {
		return FileHandle{}, false
	}
	return *v.file, true
}

// String returns the text of the value. File values render as their name.
func (v RawValue) String() string {
	if v.file != nil {
		return v.file.Name
	}
	return v.text
}

// RawSubmission maps a field id to the values its control submitted, in
// submission order. A missing key and an empty slice both mean "nothing
// submitted".
type RawSubmission map[string][]RawValue

// Add appends v under fieldID.
func (r RawSubmission) Add(fieldID string, v RawValue) {
	r[fieldID] = append(r[fieldID], v)
}

// Set replaces all values under fieldID with v.
func (r RawSubmission) Set(fieldID string, v RawValue) {
	r[fieldID] = []RawValue{v}
}

// Get returns the first value submitted under fieldID.
func (r RawSubmission) Get(fieldID string) (RawValue, bool) {
	values := r[fieldID]
	if len(values) == 0 {
		return RawValue{}, false
	}
	return values[0], true
}

// GetAll returns every value submitted under fieldID.
func (r RawSubmission) GetAll(fieldID string) []RawValue {
	return r[fieldID]
}

// FromValues builds a raw submission from url-encoded form values.
func FromValues(values url.Values) RawSubmission {
	raw := make(RawSubmission, len(values))
	for key, vs := range values {
		for _, v := range vs {
			raw.Add(key, Text(v))
		}
	}
	return raw
}

// FromMultipart builds a raw submission from a parsed multipart form. Text
// parts come before file parts under the same key.
func FromMultipart(mf *multipart.Form) RawSubmission {
	raw := make(RawSubmission)
	if mf == nil {
		return raw
	}
	for key, vs := range mf.Value {
		for _, v := range vs {
			raw.Add(key, Text(v))
		}
	}
	for key, headers := range mf.File {
		for _, h := range headers {
			raw.Add(key, File(FileHandle{Name: h.Filename, Size: h.Size}))
		}
	}
	return raw
}
