// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// ValueKind enumerates the shapes an extracted field value can take.
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindString
	KindList
	KindBool
)

// String implements fmt.Stringer.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindBool:
		return "bool"
	default:
		return "null"
	}
}

var errUnsupportedValue = errors.New("unsupported field value")

// FieldValue is the typed value of one entry in the submission payload.
// The zero value is null.
type FieldValue struct {
	kind  ValueKind
	text  string
	items []string
	flag  bool
}

// NullValue returns the null field value.
func NullValue() FieldValue {
	return FieldValue{}
}

// StringValue returns a string field value.
func StringValue(s string) FieldValue {
	return FieldValue{kind: KindString, text: s}
}

// ListValue returns a list field value. A nil slice is stored as an empty
// list so that it always encodes as [].
func ListValue(items []string) FieldValue {
	if items == nil {
		items = []string{}
	}
	return FieldValue{kind: KindList, items: items}
}

// BoolValue returns a boolean field value.
func BoolValue(b bool) FieldValue {
	return FieldValue{kind: KindBool, flag: b}
}

func (v FieldValue) Kind() ValueKind { return v.kind }

func (v FieldValue) IsNull() bool { return v.kind == KindNull }

// Text returns the string payload; empty for non-string values.
func (v FieldValue) Text() string { return v.text }

// Items returns the list payload; nil for non-list values.
func (v FieldValue) Items() []string { return v.items }

// Flag returns the boolean payload; false for non-bool values.
func (v FieldValue) Flag() bool { return v.flag }

// IsBlank reports whether the value carries no user input: null, a
// whitespace-only string, or an empty list. Booleans are never blank.
func (v FieldValue) IsBlank() bool {
	switch v.kind {
	case KindString:
		return strings.TrimSpace(v.text) == ""
	case KindList:
		return len(v.items) == 0
	case KindBool:
		return false
	default:
		return true
	}
}

// String implements fmt.Stringer for logs and terminal output.
func (v FieldValue) String() string {
	switch v.kind {
	case KindString:
		return v.text
	case KindList:
		return "[" + strings.Join(v.items, ", ") + "]"
	case KindBool:
		return fmt.Sprintf("%t", v.flag)
	default:
		return "null"
	}
}

// MarshalJSON implements json.Marshaler.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.text)
	case KindList:
		return json.Marshal(v.items)
	case KindBool:
		return json.Marshal(v.flag)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a string, an array
// of strings, a boolean or null.
func (v *FieldValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errUnsupportedValue
	}

	switch b[0] {
	case 'n':
		*v = NullValue()
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	case '[':
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return fmt.Errorf("%w: %v", errUnsupportedValue, err)
		}
		*v = ListValue(items)
		return nil
	case 't', 'f':
		var flag bool
		if err := json.Unmarshal(b, &flag); err != nil {
			return err
		}
		*v = BoolValue(flag)
		return nil
	}

	return fmt.Errorf("%w: %s", errUnsupportedValue, string(b))
}

// FormData maps a field's payload key to its extracted value.
type FormData map[string]FieldValue
