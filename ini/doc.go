// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a parser and serializer for the INI file format.
See https://en.wikipedia.org/wiki/INI_file.

A parsed file is a Document: an ordered collection of named sections, each of
which is an ordered collection of key/value options. Order is preserved from
the source text (or from the order of mutation calls) and is observable both
through the accessors and in the serialized output, so parsing and then
serializing a Document is a stable round trip.

Syntax

An INI file is UTF-8 text. Line terminators (LF or CRLF) are removed and each
line is then classified on its own:

	[section]
	key=value
	other = value
	; comment

A line that starts with '[' and ends with ']' names a section. It must contain
exactly one of each bracket. Every following option belongs to that section
until the next section line. Options are not permitted before the first
section.

An option line contains exactly one equals sign ('='). It must not begin or
end with an equals sign or a space. If the line contains " = " the key and
value are separated there; otherwise they are separated at the bare '='. No
other trimming is done. Repeating a key within a section overwrites the
earlier value in place.

A line that starts with a semicolon (';') is a comment and is discarded.
Inline comments, multi-line values, quoting and escapes are not supported.

Empty lines are skipped. A line consisting only of whitespace is not empty
and is rejected, unless ParseOptions.SkipBlankLines is set.

Errors

Syntax errors are reported as *ParseError values wrapping either
ErrInvalidSection or ErrInvalidContent. Lookups of missing sections or options
fail with a *NotFoundError, and typed getters that cannot convert a value fail
with a *CoercionError.

Canonical form

MarshalText writes each section as a "[name]" line followed by one
"key = value" line per option, with a blank line between sections and no
trailing newline.

A Document is not safe for concurrent mutation. Callers that share one across
goroutines must guard it themselves.
*/
package ini
