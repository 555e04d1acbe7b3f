// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "github.com/MKhiriev/go-form-runner/models"

// Entry is one labeled value of the submission payload.
type Entry struct {
	Key   string
	Value models.FieldValue
}

// Extract produces the payload entry of field from the raw submission.
// It never fails:
//
//   - text-like and select controls read the first value, "" when absent;
//   - checkbox groups read every value, [] when absent;
//   - on/off checkboxes yield true only for the [CheckboxOn] sentinel;
//   - radio groups read the first value, null when absent;
//   - file controls yield the selected file's name, null when absent or
//     when the submitted value is not a file.
func Extract(field models.FieldDefinition, raw RawSubmission) Entry {
	return extract(MapControl(field), raw)
}

func extract(c Control, raw RawSubmission) Entry {
	id := c.Field.FieldID
	entry := Entry{Key: c.Field.PayloadKey()}

	switch c.Category {
	case MultiOrBoolean:
		if c.Boolean() {
			v, ok := raw.Get(id)
			entry.Value = models.BoolValue(ok && !v.IsFile() && v.String() == CheckboxOn)
			return entry
		}
		values := raw.GetAll(id)
		items := make([]string, 0, len(values))
		for _, v := range values {
			items = append(items, v.String())
		}
		entry.Value = models.ListValue(items)

	case ExclusiveChoice:
		if v, ok := raw.Get(id); ok {
			entry.Value = models.StringValue(v.String())
		} else {
			entry.Value = models.NullValue()
		}

	case FileReference:
		v, _ := raw.Get(id)
		if h, ok := v.FileHandle(); ok {
			entry.Value = models.StringValue(h.Name)
		} else {
			entry.Value = models.NullValue()
		}

	default:
		// SimpleScalar, MultilineScalar, SingleChoiceList
		v, _ := raw.Get(id)
		entry.Value = models.StringValue(v.String())
	}

	return entry
}

// RequiredUnmet reports whether a control with native required semantics
// would refuse to submit the current raw value, the way a browser blocks an
// empty required input. It never influences the payload.
func RequiredUnmet(field models.FieldDefinition, raw RawSubmission) bool {
	c := MapControl(field)
	if !c.NativeRequired() {
		return false
	}
	v, ok := raw.Get(field.FieldID)
	return !ok || v.String() == ""
}
