// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSection is reported for section lines that do not contain
	// exactly one '[' and one ']'.
	ErrInvalidSection = errors.New("invalid section")

	// ErrInvalidContent is reported for every other line the parser rejects.
	ErrInvalidContent = errors.New("invalid ini content")

	// ErrNotFound matches any *NotFoundError with errors.Is.
	ErrNotFound = errors.New("not found")
)

// ParseError describes a syntax error on a single line of INI text.
type ParseError struct {
	// Line is the 1-based line number.
	Line int
	// Err is either ErrInvalidSection or ErrInvalidContent.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse ini: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError is returned when a section or an option does not exist.
type NotFoundError struct {
	Section string
	// Key is the missing option. It is empty when the section is missing.
	Key string

	option bool
}

func sectionNotFound(section string) error {
	return &NotFoundError{Section: section}
}

func optionNotFound(section, key string) error {
	return &NotFoundError{Section: section, Key: key, option: true}
}

// MissingSection reports whether the section itself was missing, as opposed
// to an option inside it.
func (e *NotFoundError) MissingSection() bool { return !e.option }

func (e *NotFoundError) Error() string {
	if !e.option {
		return fmt.Sprintf("section %q does not exist", e.Section)
	}
	return fmt.Sprintf("option %q does not exist in section %q", e.Key, e.Section)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// CoercionError is returned by the typed getters when an option's value
// cannot be converted to the requested type.
type CoercionError struct {
	Section string
	Key     string
	Value   string
	// Type is a human-readable type name, like "a boolean".
	Type string
	Err  error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("option %q in section %q: value %q is not supported as %s", e.Key, e.Section, e.Value, e.Type)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// OptionError is returned by SetOption for a key and value that could not be
// written out and read back unchanged.
type OptionError struct {
	Section string
	Key     string
	Value   string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("set option %q = %q in section %q: %v", e.Key, e.Value, e.Section, ErrInvalidContent)
}

func (e *OptionError) Unwrap() error { return ErrInvalidContent }
