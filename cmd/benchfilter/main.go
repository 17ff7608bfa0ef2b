// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchfilter reads Google Benchmark results from input files, keeps
// the benchmarks of selected libraries, and writes them to stdout as a
// single Google Benchmark JSON document. If no inputs are provided, it
// reads from stdin.
//
// Usage:
//
//	benchfilter [flags] [inputs...]
//
// Library names are taken from benchmark names the same way benchplot
// does. Benchmarks whose names don't have a library and a size are
// reported and dropped.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/frxml/benchplot/benchfmt"
	"github.com/frxml/benchplot/benchproc"
)

func main() {
	log.SetPrefix("benchfilter: ")
	log.SetFlags(0)

	if err := benchfilter(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func benchfilter(w, wErr io.Writer, args []string) error {
	opts := benchproc.DefaultParserOptions()
	opts.DeriveThroughput = false

	fs := flag.NewFlagSet("benchfilter", flag.ContinueOnError)
	fs.SetOutput(wErr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: benchfilter [flags] [inputs...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.Delimiter, "delim", opts.Delimiter, "benchmark name segment `separator`")
	fs.StringVar(&opts.TrimPrefix, "prefix", opts.TrimPrefix, "`prefix` to strip from library names")
	fs.BoolVar(&opts.IgnoreLabel, "ignore-label", opts.IgnoreLabel, "take the size from the name even if a benchmark has a label")
	flagExclude := fs.String("exclude", "", "comma-separated `libraries` to drop")
	flagOnly := fs.String("only", "", "comma-separated `libraries` to keep (default all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	exclude := benchproc.ExcludeLibraries(splitList(*flagExclude)...)
	only := benchproc.OnlyLibraries(splitList(*flagOnly)...)
	parser := benchproc.NewParser(opts)

	writer := benchfmt.NewWriter(w)
	files := benchfmt.Files{Paths: fs.Args(), AllowStdin: true, AllowLabels: true}
	for files.Scan() {
		switch rec := files.Result().(type) {
		case *benchfmt.SyntaxError:
			// Non-fatal result parse error. Warn
			// but keep going.
			fmt.Fprintln(wErr, rec)
		case *benchfmt.Result:
			r, perr := parser.Parse(rec)
			if perr != nil {
				fmt.Fprintln(wErr, perr)
				continue
			}
			if !exclude(r) || !only(r) {
				continue
			}
			if err := writer.Write(rec); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
	}
	if err := files.Err(); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
