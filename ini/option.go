// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sections returns the names of the sections in d in order.
func (d *Document) Sections() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.names...)
}

// Section returns a copy of the named section. Modifying the returned
// section does not affect d.
func (d *Document) Section(name string) (*Section, error) {
	s, err := d.section(name)
	if err != nil {
		return nil, err
	}
	return s.clone(), nil
}

func (d *Document) section(name string) (*Section, error) {
	if d == nil || d.sections[name] == nil {
		return nil, sectionNotFound(name)
	}
	return d.sections[name], nil
}

// HasSection reports whether d has a section with the given name.
func (d *Document) HasSection(name string) bool {
	_, err := d.section(name)
	return err == nil
}

// AddSection appends an empty section to the end of d. It does nothing if
// the section already exists. The name must not contain brackets or line
// terminators.
func (d *Document) AddSection(name string) error {
	if !IsValidSection(name) {
		return fmt.Errorf("add section %q: %w", name, ErrInvalidSection)
	}
	d.ensure(name)
	return nil
}

// Options returns the keys of the named section in order.
func (d *Document) Options(section string) ([]string, error) {
	s, err := d.section(section)
	if err != nil {
		return nil, err
	}
	return s.Keys(), nil
}

// Option returns the value of the given key in the given section.
func (d *Document) Option(section, key string) (string, error) {
	s, err := d.section(section)
	if err != nil {
		return "", err
	}
	v, ok := s.values[key]
	if !ok {
		return "", optionNotFound(section, key)
	}
	return v, nil
}

// SetOption sets the value of key in the given section. If the key already
// exists its value is replaced in place, otherwise the key is appended to the
// end of the section.
//
// SetOption does not create sections: if the section does not exist, it
// returns a *NotFoundError and d is unchanged. Call AddSection first to set
// options in a new section. Keys and values that would not survive being
// written out and parsed again are rejected with an *OptionError.
func (d *Document) SetOption(section, key, value string) error {
	s, err := d.section(section)
	if err != nil {
		return err
	}
	if !IsValidOption(key, value) {
		return &OptionError{Section: section, Key: key, Value: value}
	}
	s.set(key, value)
	return nil
}

// Bool returns the value of the given option as a boolean.
// See ParseBool for the accepted literals.
func (d *Document) Bool(section, key string) (bool, error) {
	v, err := d.Option(section, key)
	if err != nil {
		return false, err
	}
	return coerceBool(section, key, v)
}

// Uint returns the value of the given option as an unsigned 64-bit integer.
func (d *Document) Uint(section, key string) (uint64, error) {
	v, err := d.Option(section, key)
	if err != nil {
		return 0, err
	}
	return coerceUint(section, key, v)
}

// Float returns the value of the given option as a 64-bit floating point
// number.
func (d *Document) Float(section, key string) (float64, error) {
	v, err := d.Option(section, key)
	if err != nil {
		return 0, err
	}
	return coerceFloat(section, key, v)
}

var errBoolSyntax = errors.New("unrecognized boolean literal")

// ParseBool converts an option value to a boolean. Only the exact literals
// "true", "True", "yes" and "1" are true, and "false", "False", "no" and "0"
// are false.
func ParseBool(s string) (bool, error) {
	switch s {
	case "true", "True", "yes", "1":
		return true, nil
	case "false", "False", "no", "0":
		return false, nil
	default:
		return false, errBoolSyntax
	}
}

// ParseUint converts an option value to an unsigned 64-bit integer. The value
// must be decimal and may carry a single leading '+'.
func ParseUint(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
}

// ParseFloat converts an option value to a 64-bit floating point number.
// Values out of range for a float64 are rejected.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func coerceBool(section, key, v string) (bool, error) {
	b, err := ParseBool(v)
	if err != nil {
		return false, &CoercionError{Section: section, Key: key, Value: v, Type: "a boolean", Err: err}
	}
	return b, nil
}

func coerceUint(section, key, v string) (uint64, error) {
	n, err := ParseUint(v)
	if err != nil {
		return 0, &CoercionError{Section: section, Key: key, Value: v, Type: "an unsigned integer", Err: err}
	}
	return n, nil
}

func coerceFloat(section, key, v string) (float64, error) {
	f, err := ParseFloat(v)
	if err != nil {
		return 0, &CoercionError{Section: section, Key: key, Value: v, Type: "a float", Err: err}
	}
	return f, nil
}

// IsValidSection reports whether a string can be used as a section name in
// an INI file.
func IsValidSection(name string) bool {
	return !strings.ContainsAny(name, "[]\r\n")
}

// IsValidOption reports whether the key and value can be stored in a section
// and read back unchanged after serialization.
func IsValidOption(key, value string) bool {
	if strings.ContainsAny(key, "\r\n") || strings.ContainsAny(value, "\r\n") {
		return false
	}
	line := string(appendOption(nil, key, value))
	if isSectionLine(line) {
		return false
	}
	k, v, ok := splitOption(line)
	return ok && k == key && v == value
}
