// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValue_MarshalJSON(t *testing.T) {
	data := FormData{
		"s": StringValue("x"),
		"l": ListValue(nil),
		"b": BoolValue(true),
		"n": NullValue(),
		"z": {},
	}

	out, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"x","l":[],"b":true,"n":null,"z":null}`, string(out))
}

func TestFieldValue_UnmarshalJSON(t *testing.T) {
	var data FormData
	require.NoError(t, json.Unmarshal([]byte(`{"s":"x","l":["a","b"],"b":false,"n":null}`), &data))

	assert.Equal(t, StringValue("x"), data["s"])
	assert.Equal(t, ListValue([]string{"a", "b"}), data["l"])
	assert.Equal(t, BoolValue(false), data["b"])
	assert.True(t, data["n"].IsNull())

	for _, in := range []string{`42`, `{"a":1}`, `[1]`} {
		var v FieldValue
		assert.Error(t, v.UnmarshalJSON([]byte(in)), in)
		assert.ErrorIs(t, v.UnmarshalJSON([]byte(in)), errUnsupportedValue, in)
	}
}

func TestFieldValue_IsBlank(t *testing.T) {
	assert.True(t, NullValue().IsBlank())
	assert.True(t, StringValue("  ").IsBlank())
	assert.True(t, ListValue(nil).IsBlank())
	assert.False(t, BoolValue(false).IsBlank())
	assert.False(t, StringValue("a").IsBlank())
	assert.False(t, ListValue([]string{"a"}).IsBlank())
}

func TestFieldValue_String(t *testing.T) {
	assert.Equal(t, "null", NullValue().String())
	assert.Equal(t, "[a, b]", ListValue([]string{"a", "b"}).String())
	assert.Equal(t, "false", BoolValue(false).String())
	assert.Equal(t, KindList.String(), ListValue(nil).Kind().String())
}
