// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// inifmt reads INI files, prints them in canonical form, and queries or
// updates individual options.
//
// Usage:
//
//	inifmt [flags] FILE [FILE...]
//
// Additional files are consulted by -get when an option is not present in
// the first file. All other operations apply to the first file only.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/yourbase/ini/envvar"
	"github.com/yourbase/ini/ini"
	"zombiezen.com/go/log"
)

type options struct {
	files   []string
	lenient bool
	debug   bool
	section string
	list    bool
	get     string
	typ     string
	set     string
	write   bool
	json    bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "inifmt:", err)
		os.Exit(2)
	}
	log.SetDefault(&logger{w: os.Stderr, showDebug: opts.debug})
	ctx := context.Background()
	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	fset := flag.NewFlagSet("inifmt", flag.ContinueOnError)
	fset.SetOutput(output)
	opts := new(options)
	fset.BoolVar(&opts.lenient, "lenient", envvar.Bool("INIFMT_LENIENT", false), "skip whitespace-only lines instead of rejecting them (env INIFMT_LENIENT)")
	fset.BoolVar(&opts.debug, "debug", envvar.Bool("INIFMT_DEBUG", false), "show debug logs (env INIFMT_DEBUG)")
	fset.StringVar(&opts.section, "section", envvar.Get("INIFMT_SECTION", ""), "section for -get, -set and -list (env INIFMT_SECTION)")
	fset.BoolVar(&opts.list, "list", false, "list sections, or the options of -section")
	fset.StringVar(&opts.get, "get", "", "print the value of `KEY` in -section")
	fset.StringVar(&opts.typ, "type", "string", "interpret -get value as string, bool, uint or float")
	fset.StringVar(&opts.set, "set", "", "set `KEY=VALUE` in -section of the first file")
	fset.BoolVar(&opts.write, "w", false, "write the result of -set back to the first file instead of stdout")
	fset.BoolVar(&opts.json, "json", false, "print the first file as JSON")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	opts.files = fset.Args()
	if len(opts.files) == 0 {
		return nil, errors.New("usage: inifmt [flags] FILE [FILE...]")
	}

	modes := 0
	for _, on := range []bool{opts.list, opts.get != "", opts.set != "", opts.json} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return nil, errors.New("-list, -get, -set and -json are mutually exclusive")
	}
	if (opts.get != "" || opts.set != "") && opts.section == "" {
		return nil, errors.New("-get and -set require -section")
	}
	if opts.write && opts.set == "" {
		return nil, errors.New("-w requires -set")
	}
	switch opts.typ {
	case "string", "bool", "uint", "float":
	default:
		return nil, fmt.Errorf("-type %q: must be one of string, bool, uint or float", opts.typ)
	}
	return opts, nil
}

func run(ctx context.Context, opts *options, stdout io.Writer) error {
	log.Debugf(ctx, "Parsing %s", strings.Join(opts.files, ", "))
	fset, err := ini.ParseFiles(&ini.ParseOptions{SkipBlankLines: opts.lenient}, opts.files...)
	if err != nil {
		return err
	}
	doc := fset[0]
	if doc == nil {
		return fmt.Errorf("%s: %w", opts.files[0], fs.ErrNotExist)
	}
	for i, d := range fset[1:] {
		if d == nil {
			log.Debugf(ctx, "Skipping missing file %s", opts.files[i+1])
		}
	}

	switch {
	case opts.list:
		return list(stdout, doc, opts.section)
	case opts.get != "":
		return get(stdout, fset, opts.section, opts.get, opts.typ)
	case opts.set != "":
		key, value, ok := strings.Cut(opts.set, "=")
		if !ok {
			return fmt.Errorf("-set %q: want KEY=VALUE", opts.set)
		}
		if err := doc.SetOption(opts.section, key, value); err != nil {
			return err
		}
		if !opts.write {
			return writeText(stdout, doc)
		}
		if err := ini.WriteFile(opts.files[0], doc, 0o644); err != nil {
			return err
		}
		log.Infof(ctx, "Wrote %s", opts.files[0])
		return nil
	case opts.json:
		data, err := json.Marshal(doc, jsontext.WithIndent("  "))
		if err != nil {
			return fmt.Errorf("%s: %w", opts.files[0], err)
		}
		_, err = fmt.Fprintf(stdout, "%s\n", data)
		return err
	default:
		return writeText(stdout, doc)
	}
}

func list(stdout io.Writer, doc *ini.Document, section string) error {
	names := doc.Sections()
	if section != "" {
		var err error
		names, err = doc.Options(section)
		if err != nil {
			return err
		}
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(stdout, name); err != nil {
			return err
		}
	}
	return nil
}

func get(stdout io.Writer, fset ini.FileSet, section, key, typ string) error {
	var out string
	switch typ {
	case "bool":
		b, err := fset.Bool(section, key)
		if err != nil {
			return err
		}
		out = strconv.FormatBool(b)
	case "uint":
		n, err := fset.Uint(section, key)
		if err != nil {
			return err
		}
		out = strconv.FormatUint(n, 10)
	case "float":
		f, err := fset.Float(section, key)
		if err != nil {
			return err
		}
		out = strconv.FormatFloat(f, 'g', -1, 64)
	default:
		v, err := fset.Option(section, key)
		if err != nil {
			return err
		}
		out = v
	}
	_, err := fmt.Fprintln(stdout, out)
	return err
}

func writeText(stdout io.Writer, doc *ini.Document) error {
	text, err := doc.MarshalText()
	if err != nil {
		return err
	}
	if len(text) > 0 {
		text = append(text, '\n')
	}
	_, err = stdout.Write(text)
	return err
}
