// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	t.Run("OwnerDatabase", func(t *testing.T) {
		d, err := ParseString(ownerDatabase, nil)
		require.NoError(t, err)
		got, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t,
			`{"owner":{"name":"John","organization":"threefold"},`+
				`"database":{"server":"192.0.2.62","port":"143","password":"123456","protected":"true","version":"12.6"}}`,
			string(got))
	})

	t.Run("EmptySection", func(t *testing.T) {
		d, err := ParseString("[z]\n[a]\nk=v", nil)
		require.NoError(t, err)
		got, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `{"z":{},"a":{"k":"v"}}`, string(got))
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := json.Marshal(new(Document))
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(got))
	})
}

func TestUnmarshalJSON(t *testing.T) {
	t.Run("PreservesOrder", func(t *testing.T) {
		var d Document
		require.NoError(t, json.Unmarshal([]byte(`{"b":{"z":"1","a":"2"},"a":{}}`), &d))
		assert.Equal(t, []string{"b", "a"}, d.Sections())
		opts, err := d.Options("b")
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "a"}, opts)
		assert.Equal(t, "[b]\nz = 1\na = 2\n\n[a]", d.String())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		d, err := ParseString(ownerDatabase, nil)
		require.NoError(t, err)
		data, err := json.Marshal(d)
		require.NoError(t, err)
		var got Document
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, d.String(), got.String())
	})

	t.Run("Replaces", func(t *testing.T) {
		d, err := ParseString("[old]\nk=v", nil)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal([]byte(`{"new":{}}`), d))
		assert.Equal(t, []string{"new"}, d.Sections())
	})

	invalid := []struct {
		name string
		data string
	}{
		{"NotObject", `[]`},
		{"SectionNotObject", `{"a":[]}`},
		{"NumberValue", `{"a":{"k":1}}`},
		{"NullValue", `{"a":{"k":null}}`},
		{"BadSectionName", `{"a]":{}}`},
		{"EmptyValue", `{"a":{"k":""}}`},
		{"Truncated", `{"a":{"k":"v"`},
		{"LaterSectionInvalid", `{"a":{"k":"v"},"b":{"x":1}}`},
		{"LaterOptionInvalid", `{"a":{"k":"v","x":""}}`},
	}
	for _, test := range invalid {
		t.Run(test.name, func(t *testing.T) {
			d, err := ParseString("[old]\nk=v", nil)
			require.NoError(t, err)
			assert.Error(t, json.Unmarshal([]byte(test.data), d))
			assert.Equal(t, 0, d.Len())
			assert.Empty(t, d.Sections())
		})
	}
}

func TestUnmarshalJSONFromInvalidOption(t *testing.T) {
	var d Document
	dec := jsontext.NewDecoder(strings.NewReader(`{"a":{"k=x":"v"}}`))
	err := d.UnmarshalJSONFrom(dec)
	assert.ErrorIs(t, err, ErrInvalidContent)
	var optErr *OptionError
	if assert.ErrorAs(t, err, &optErr) {
		assert.Equal(t, "k=x", optErr.Key)
	}
}
