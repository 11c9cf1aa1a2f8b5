// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNilFileSet(t *testing.T) {
	fset := (FileSet)(nil)
	if got := fset.Sections(); len(got) > 0 {
		t.Errorf("Sections() = %q; want empty", got)
	}
	if _, err := fset.Option("foo", "bar"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Option(...) error = %v; want %v", err, ErrNotFound)
	}
}

func TestFileSetAccess(t *testing.T) {
	tests := []struct {
		name               string
		sources            []string
		section            string
		key                string
		want               string
		wantMissingSection bool
		wantErr            bool
	}{
		{
			name:    "ExistsInFirst",
			sources: []string{"[foo]\nbar=1\n", "[foo]\nbaz=2\n"},
			section: "foo",
			key:     "bar",
			want:    "1",
		},
		{
			name:    "ExistsInSecond",
			sources: []string{"[foo]\nbar=1\n", "[foo]\nbaz=2\n"},
			section: "foo",
			key:     "baz",
			want:    "2",
		},
		{
			name:    "FirstWins",
			sources: []string{"[foo]\nbar=first\n", "[foo]\nbar=second\n"},
			section: "foo",
			key:     "bar",
			want:    "first",
		},
		{
			name:    "NilElement",
			sources: []string{"", "[foo]\nbar=1\n"},
			section: "foo",
			key:     "bar",
			want:    "1",
		},
		{
			name:    "MissingKey",
			sources: []string{"[foo]\nbar=1\n", "[other]\nbaz=2\n"},
			section: "foo",
			key:     "baz",
			wantErr: true,
		},
		{
			name:               "MissingSection",
			sources:            []string{"[foo]\nbar=1\n", "[other]\nbaz=2\n"},
			section:            "nope",
			key:                "bar",
			wantErr:            true,
			wantMissingSection: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fset := make(FileSet, 0, len(test.sources))
			for _, src := range test.sources {
				if src == "" {
					fset = append(fset, nil)
					continue
				}
				d, err := ParseString(src, nil)
				if err != nil {
					t.Fatal(err)
				}
				fset = append(fset, d)
			}
			got, err := fset.Option(test.section, test.key)
			if test.wantErr {
				var notFound *NotFoundError
				if !errors.As(err, &notFound) {
					t.Fatalf("Option(%q, %q) = %q, %v; want *NotFoundError", test.section, test.key, got, err)
				}
				if notFound.MissingSection() != test.wantMissingSection {
					t.Errorf("MissingSection() = %t; want %t", notFound.MissingSection(), test.wantMissingSection)
				}
				return
			}
			if err != nil || got != test.want {
				t.Errorf("Option(%q, %q) = %q, %v; want %q, <nil>", test.section, test.key, got, err, test.want)
			}
		})
	}
}

func TestFileSetTyped(t *testing.T) {
	override, err := ParseString("[server]\nport=8080\n", nil)
	if err != nil {
		t.Fatal(err)
	}
	base, err := ParseString("[server]\nport=80\ndebug=no\nratio=0.5\n", nil)
	if err != nil {
		t.Fatal(err)
	}
	fset := FileSet{override, base}

	if got, err := fset.Uint("server", "port"); err != nil || got != 8080 {
		t.Errorf("Uint(\"server\", \"port\") = %d, %v; want 8080, <nil>", got, err)
	}
	if got, err := fset.Bool("server", "debug"); err != nil || got {
		t.Errorf("Bool(\"server\", \"debug\") = %t, %v; want false, <nil>", got, err)
	}
	if got, err := fset.Float("server", "ratio"); err != nil || got != 0.5 {
		t.Errorf("Float(\"server\", \"ratio\") = %g, %v; want 0.5, <nil>", got, err)
	}
	var coerceErr *CoercionError
	if _, err := fset.Bool("server", "ratio"); !errors.As(err, &coerceErr) {
		t.Errorf("Bool(\"server\", \"ratio\") error = %v; want *CoercionError", err)
	}
}

func TestFileSetSections(t *testing.T) {
	a, err := ParseString("[b]\n[a]\n", nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseString("[c]\n[a]\n[d]\n", nil)
	if err != nil {
		t.Fatal(err)
	}
	fset := FileSet{a, nil, b}
	want := []string{"b", "a", "c", "d"}
	if diff := cmp.Diff(want, fset.Sections()); diff != "" {
		t.Errorf("Sections() (-want +got):\n%s", diff)
	}
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.ini")
	if err := os.WriteFile(first, []byte("[foo]\nbar=baz\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.ini")
	bad := filepath.Join(dir, "bad.ini")
	if err := os.WriteFile(bad, []byte("oops\n"), 0o666); err != nil {
		t.Fatal(err)
	}

	fset, err := ParseFiles(nil, first, missing)
	if err != nil {
		t.Fatal("ParseFiles:", err)
	}
	if len(fset) != 2 {
		t.Fatalf("len(fset) = %d; want 2", len(fset))
	}
	if fset[1] != nil {
		t.Errorf("fset[1] = %v; want nil for missing file", fset[1])
	}
	if diff := cmp.Diff([]string{"foo"}, fset.Sections(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Sections() (-want +got):\n%s", diff)
	}

	_, err = ParseFiles(nil, first, bad)
	if !errors.Is(err, ErrInvalidContent) {
		t.Errorf("ParseFiles(..., bad) error = %v; want %v", err, ErrInvalidContent)
	}
}
