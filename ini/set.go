// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileSet is a list of documents to obtain configuration from in descending
// order of precedence. Nil elements are permitted and are treated as empty.
type FileSet []*Document

// ParseFiles parses the files at the given paths as INI and returns a FileSet.
// If the returned error is nil, the returned file set's length will be the same
// as the number of arguments. ParseFiles will stop on the first error, but
// ignores missing file errors, instead filling the corresponding element of the
// set with a nil *Document.
func ParseFiles(opts *ParseOptions, paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		d, err := ReadFile(p, opts)
		if errors.Is(err, fs.ErrNotExist) {
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("parse ini files: %w", err)
		}
		fset = append(fset, d)
	}
	return fset, nil
}

// Sections returns the names of sections in any document of the set. Names
// are ordered by their first appearance, scanning documents in order.
func (fset FileSet) Sections() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, d := range fset {
		for _, name := range d.Sections() {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// Option returns the value of the given key from the first document in the
// set that has it. The *NotFoundError returned when no document has the key
// reports a missing section only if no document has the section.
func (fset FileSet) Option(section, key string) (string, error) {
	hasSection := false
	for _, d := range fset {
		v, err := d.Option(section, key)
		if err == nil {
			return v, nil
		}
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return "", err
		}
		if !notFound.MissingSection() {
			hasSection = true
		}
	}
	if !hasSection {
		return "", sectionNotFound(section)
	}
	return "", optionNotFound(section, key)
}

// Bool returns the value of the given option as a boolean.
func (fset FileSet) Bool(section, key string) (bool, error) {
	v, err := fset.Option(section, key)
	if err != nil {
		return false, err
	}
	return coerceBool(section, key, v)
}

// Uint returns the value of the given option as an unsigned 64-bit integer.
func (fset FileSet) Uint(section, key string) (uint64, error) {
	v, err := fset.Option(section, key)
	if err != nil {
		return 0, err
	}
	return coerceUint(section, key, v)
}

// Float returns the value of the given option as a 64-bit floating point
// number.
func (fset FileSet) Float(section, key string) (float64, error) {
	v, err := fset.Option(section, key)
	if err != nil {
		return 0, err
	}
	return coerceFloat(section, key, v)
}
