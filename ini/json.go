// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSONTo writes d as a JSON object mapping section names to objects of
// string options. Sections and options keep their order.
func (d *Document) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for _, name := range d.Sections() {
		s := d.sections[name]
		if err := enc.WriteToken(jsontext.String(name)); err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, key := range s.keys {
			if err := enc.WriteToken(jsontext.String(key)); err != nil {
				return err
			}
			if err := enc.WriteToken(jsontext.String(s.values[key])); err != nil {
				return err
			}
		}
		if err := enc.WriteToken(jsontext.EndObject); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

// UnmarshalJSONFrom replaces the contents of d with the sections read from a
// JSON object in the form written by MarshalJSONTo. Option values must be
// strings and must be accepted by SetOption. On error d is left empty.
func (d *Document) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	*d = Document{}
	tmp := new(Document)
	if err := tmp.decodeJSON(dec); err != nil {
		return err
	}
	*d = *tmp
	return nil
}

func (d *Document) decodeJSON(dec *jsontext.Decoder) error {
	if err := readObjectStart(dec, "document"); err != nil {
		return err
	}
	for dec.PeekKind() != '}' {
		var name string
		if err := json.UnmarshalDecode(dec, &name); err != nil {
			return fmt.Errorf("ini: read section name: %w", err)
		}
		if err := d.AddSection(name); err != nil {
			return fmt.Errorf("ini: %w", err)
		}
		if err := readObjectStart(dec, "section "+name); err != nil {
			return err
		}
		for dec.PeekKind() != '}' {
			var key, value string
			if err := json.UnmarshalDecode(dec, &key); err != nil {
				return fmt.Errorf("ini: section %q: read key: %w", name, err)
			}
			if err := json.UnmarshalDecode(dec, &value); err != nil {
				return fmt.Errorf("ini: section %q: read value of %q: %w", name, key, err)
			}
			if err := d.SetOption(name, key, value); err != nil {
				return fmt.Errorf("ini: %w", err)
			}
		}
		if _, err := dec.ReadToken(); err != nil { // '}'
			return fmt.Errorf("ini: section %q: read object close: %w", name, err)
		}
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return fmt.Errorf("ini: read object close: %w", err)
	}
	return nil
}

func readObjectStart(dec *jsontext.Decoder, what string) error {
	if kind := dec.PeekKind(); kind != '{' {
		return fmt.Errorf("ini: %s must be a JSON object, found %v", what, kind)
	}
	if _, err := dec.ReadToken(); err != nil {
		return fmt.Errorf("ini: %s: read object open: %w", what, err)
	}
	return nil
}
