// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "github.com/MKhiriev/go-form-runner/models"

// Category is the control semantics category a field type resolves to. It
// decides how the renderer captures input and how [Extract] reads it back.
type Category int

const (
	// SimpleScalar is a single-line text-like input. It is also the category
	// of every unrecognized field type.
	SimpleScalar Category = iota
	// MultilineScalar is a multi-line text input.
	MultilineScalar
	// SingleChoiceList is a select box over the field options.
	SingleChoiceList
	// MultiOrBoolean is a checkbox group when options are present and a
	// single on/off checkbox otherwise.
	MultiOrBoolean
	// ExclusiveChoice is a radio group over the field options.
	ExclusiveChoice
	// FileReference captures a file handle of which only the name is sent.
	FileReference
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case SimpleScalar:
		return "simple-scalar"
	case MultilineScalar:
		return "multiline-scalar"
	case SingleChoiceList:
		return "single-choice-list"
	case MultiOrBoolean:
		return "multi-or-boolean"
	case ExclusiveChoice:
		return "exclusive-choice"
	case FileReference:
		return "file-reference"
	}
	return "unknown"
}

// CheckboxOn is the raw value an on/off checkbox submits when checked.
const CheckboxOn = "on"

// Control is the runtime description of one rendered field.
type Control struct {
	Field    models.FieldDefinition
	Category Category

	// Recognized is false when the field type is outside the closed
	// enumeration and SimpleScalar was chosen as the fallback.
	Recognized bool

	// InputType is the text input flavour for SimpleScalar controls:
	// text, email, password, date or number. Unrecognized types use text.
	InputType models.FieldType

	// Options are the normalized options of the field.
	Options []string
}

// MapControl resolves the control semantics of field. The mapping is total:
// any field type, known or not, yields a usable Control.
func MapControl(field models.FieldDefinition) Control {
	c := Control{
		Field:      field,
		Category:   SimpleScalar,
		Recognized: field.FieldType.Known(),
		InputType:  models.FieldTypeText,
		Options:    models.NormalizeOptions(field.Options),
	}

	switch field.FieldType {
	case models.FieldTypeText, models.FieldTypeEmail, models.FieldTypePassword,
		models.FieldTypeDate, models.FieldTypeNumber:
		c.InputType = field.FieldType
	case models.FieldTypeTextarea:
		c.Category = MultilineScalar
	case models.FieldTypeDropdown:
		c.Category = SingleChoiceList
	case models.FieldTypeCheckbox:
		c.Category = MultiOrBoolean
	case models.FieldTypeRadio:
		c.Category = ExclusiveChoice
	case models.FieldTypeFile:
		c.Category = FileReference
	}

	return c
}

// MapControls maps every field of def in order.
func MapControls(def models.FormDefinition) []Control {
	controls := make([]Control, 0, len(def.Fields))
	for _, f := range def.Fields {
		controls = append(controls, MapControl(f))
	}
	return controls
}

// Label is the caption shown next to the control.
func (c Control) Label() string {
	return c.Field.Label
}

// RequiredMarker reports whether the label carries a required marker.
func (c Control) RequiredMarker() bool {
	return c.Field.RequiredField
}

// NativeRequired reports whether the control itself refuses an empty value.
// Only text-like inputs and select boxes enforce it; checkbox, radio and
// file controls show the marker but never block submission.
func (c Control) NativeRequired() bool {
	if !c.Field.RequiredField {
		return false
	}
	switch c.Category {
	case SimpleScalar, MultilineScalar, SingleChoiceList:
		return true
	}
	return false
}

// Boolean reports whether a MultiOrBoolean control is a single on/off toggle.
func (c Control) Boolean() bool {
	return c.Category == MultiOrBoolean && len(c.Options) == 0
}

// Masked reports whether typed input must be hidden.
func (c Control) Masked() bool {
	return c.Category == SimpleScalar && c.InputType == models.FieldTypePassword
}

// ShowsPlaceholder reports whether the placeholder hint applies to the
// control.
func (c Control) ShowsPlaceholder() bool {
	return c.Category == SimpleScalar || c.Category == MultilineScalar
}
