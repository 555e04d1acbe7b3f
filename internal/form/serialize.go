// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "github.com/MKhiriev/go-form-runner/models"

// Serialize builds the submission payload for def from the raw submission.
//
// Every field contributes exactly one entry, keyed by its label or, when the
// label is empty, its field id. Fields sharing a key overwrite each other in
// field order; see [KeyCollisions].
func Serialize(cfg models.SessionConfig, def models.FormDefinition, raw RawSubmission) models.SubmissionPayload {
	return models.SubmissionPayload{
		TenantID:  cfg.TenantID,
		ProjectID: cfg.ProjectID,
		FormName:  def.FormName,
		FormData:  SerializeData(def, raw),
	}
}

// SerializeData builds only the formData mapping of the payload.
func SerializeData(def models.FormDefinition, raw RawSubmission) models.FormData {
	data := make(models.FormData, len(def.Fields))
	for _, f := range def.Fields {
		entry := Extract(f, raw)
		data[entry.Key] = entry.Value
	}
	return data
}

// KeyCollisions returns the payload keys shared by more than one field of
// def, in order of first appearance. Such fields overwrite each other in the
// payload; no resolution rule exists for them.
func KeyCollisions(def models.FormDefinition) []string {
	seen := make(map[string]int, len(def.Fields))
	var dups []string
	for _, f := range def.Fields {
		key := f.PayloadKey()
		seen[key]++
		if seen[key] == 2 {
			dups = append(dups, key)
		}
	}
	return dups
}
