// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// A Document is an ordered collection of sections. The zero value is an
// empty document.
type Document struct {
	names    []string
	sections map[string]*Section
}

// A Section is an ordered collection of options.
type Section struct {
	name   string
	keys   []string
	values map[string]string
}

// ParseOptions holds optional parameters for Parse.
type ParseOptions struct {
	// NormalizeSection is called on each section name to apply text transformations.
	// This can be used to make section names case-insensitive, for instance.
	// If nil, no transformations are made.
	NormalizeSection func(name string) string

	// NormalizeKey is called on each key to apply text transformations.
	// This can be used to make keys case-insensitive, for instance.
	// If nil, no transformations are made.
	//
	// Normalized section names and keys must still be writable: a section name
	// that IsValidSection rejects, or a key that IsValidOption rejects together
	// with its value, fails the parse.
	NormalizeKey func(section, key string) string

	// SkipBlankLines treats lines consisting only of whitespace as empty
	// lines instead of rejecting them.
	SkipBlankLines bool
}

func (opts *ParseOptions) normalizeSection(name string) string {
	if opts == nil || opts.NormalizeSection == nil {
		return name
	}
	return opts.NormalizeSection(name)
}

func (opts *ParseOptions) normalizeKey(section, key string) string {
	if opts == nil || opts.NormalizeKey == nil {
		return key
	}
	return opts.NormalizeKey(section, key)
}

func (opts *ParseOptions) isBlank(line string) bool {
	if line == "" {
		return true
	}
	return opts != nil && opts.SkipBlankLines && strings.TrimSpace(line) == ""
}

// Parse parses an INI file. Nil options are treated identically as passing the
// zero value.
//
// See the Syntax section in the package documentation for the format recognized
// by Parse. Syntax errors are returned as *ParseError. Errors reading from r
// are returned wrapped.
func Parse(r io.Reader, opts *ParseOptions) (*Document, error) {
	d := new(Document)
	if err := d.parse(r, opts); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseString parses INI text held in a string.
func ParseString(s string, opts *ParseOptions) (*Document, error) {
	return Parse(strings.NewReader(s), opts)
}

// parse resets d and fills it from r. d is left empty or partially filled if
// parse returns an error.
func (d *Document) parse(r io.Reader, opts *ParseOptions) error {
	*d = Document{}
	br := bufio.NewReader(r)
	var curr *Section
	for lineno := 1; ; lineno++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("parse ini: line %d: %w", lineno, err)
		}
		if line == "" && err == io.EOF {
			return nil
		}
		if perr := d.parseLine(&curr, line, opts); perr != nil {
			return &ParseError{Line: lineno, Err: perr}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// parseLine applies a single line to d. curr tracks the section that options
// are added to.
func (d *Document) parseLine(curr **Section, line string, opts *ParseOptions) error {
	if strings.ContainsAny(line, "\r\n") {
		line = strings.NewReplacer("\r", "", "\n", "").Replace(line)
	}
	if opts.isBlank(line) {
		return nil
	}
	if isSectionLine(line) {
		if strings.Count(line, "[") != 1 || strings.Count(line, "]") != 1 {
			return ErrInvalidSection
		}
		name := opts.normalizeSection(line[1 : len(line)-1])
		if !IsValidSection(name) {
			return ErrInvalidSection
		}
		*curr = d.ensure(name)
		return nil
	}
	if *curr != nil {
		if key, value, ok := splitOption(line); ok {
			key = opts.normalizeKey((*curr).name, key)
			if !IsValidOption(key, value) {
				return ErrInvalidContent
			}
			(*curr).set(key, value)
			return nil
		}
	}
	if line[0] == ';' {
		// Comment
		return nil
	}
	return ErrInvalidContent
}

func isSectionLine(line string) bool {
	return len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']'
}

// splitOption splits an option line into its key and value. It reports false
// if line is not a well-formed option line.
func splitOption(line string) (key, value string, ok bool) {
	if line == "" || strings.Count(line, "=") != 1 {
		return "", "", false
	}
	if isOptionBoundary(line[0]) || isOptionBoundary(line[len(line)-1]) {
		return "", "", false
	}
	if i := strings.Index(line, " = "); i >= 0 {
		return line[:i], line[i+len(" = "):], true
	}
	i := strings.IndexByte(line, '=')
	return line[:i], line[i+1:], true
}

func isOptionBoundary(c byte) bool {
	return c == '=' || c == ' '
}

// ensure returns the section with the given name, appending an empty one if
// it does not exist.
func (d *Document) ensure(name string) *Section {
	if s := d.sections[name]; s != nil {
		return s
	}
	if d.sections == nil {
		d.sections = make(map[string]*Section)
	}
	s := &Section{name: name}
	d.sections[name] = s
	d.names = append(d.names, name)
	return s
}

// set overwrites the value of an existing key in place or appends a new key.
func (s *Section) set(key, value string) {
	if _, exists := s.values[key]; !exists {
		if s.values == nil {
			s.values = make(map[string]string)
		}
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// MarshalText serializes the document in canonical INI format.
func (d *Document) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	var buf []byte
	for _, name := range d.names {
		s := d.sections[name]
		buf = append(buf, '[')
		buf = append(buf, name...)
		buf = append(buf, "]\n"...)
		for _, key := range s.keys {
			buf = appendOption(buf, key, s.values[key])
			buf = append(buf, '\n')
		}
		buf = append(buf, '\n')
	}
	return bytes.TrimRight(buf, "\n"), nil
}

func appendOption(dst []byte, key, value string) []byte {
	dst = append(dst, key...)
	dst = append(dst, " = "...)
	dst = append(dst, value...)
	return dst
}

// String returns the canonical INI text of the document.
func (d *Document) String() string {
	text, _ := d.MarshalText()
	return string(text)
}

// UnmarshalText parses the INI data with default options, replacing any
// sections in d. d is reset before parsing begins, so on error d is left
// without any meaningful content.
func (d *Document) UnmarshalText(data []byte) error {
	if err := d.parse(bytes.NewReader(data), nil); err != nil {
		*d = Document{}
		return err
	}
	return nil
}

// Len returns the number of sections in d.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Name returns the section's name.
func (s *Section) Name() string { return s.name }

// Keys returns the section's option keys in order.
func (s *Section) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Get returns the value for the given key and whether it was present.
func (s *Section) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of options in s.
func (s *Section) Len() int { return len(s.keys) }

func (s *Section) clone() *Section {
	c := &Section{
		name: s.name,
		keys: append([]string(nil), s.keys...),
	}
	if len(s.values) > 0 {
		c.values = make(map[string]string, len(s.values))
		for k, v := range s.values {
			c.values[k] = v
		}
	}
	return c
}
