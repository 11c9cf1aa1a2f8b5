// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"io/fs"
	"os"
)

// ReadFile parses the INI file at the given path. Errors opening or reading
// the file are returned wrapped, so errors.Is(err, fs.ErrNotExist) reports a
// missing file. Syntax errors are returned as *ParseError.
func ReadFile(path string, opts *ParseOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read ini file: %w", err)
	}
	d, err := Parse(f, opts)
	f.Close() // Close errors irrelevant.
	if err != nil {
		return nil, fmt.Errorf("read ini file: %s: %w", path, err)
	}
	return d, nil
}

// WriteFile writes the canonical form of d to the file at the given path,
// creating it with permissions perm if necessary.
func WriteFile(path string, d *Document, perm fs.FileMode) error {
	text, err := d.MarshalText()
	if err != nil {
		return fmt.Errorf("write ini file: %s: %w", path, err)
	}
	if err := os.WriteFile(path, text, perm); err != nil {
		return fmt.Errorf("write ini file: %w", err)
	}
	return nil
}
