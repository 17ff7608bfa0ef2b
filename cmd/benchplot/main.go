// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot compares libraries across input sizes from Google Benchmark
// results.
//
// Usage:
//
//	benchplot [flags] [inputs...]
//
// Each input is a JSON document written by a Google Benchmark binary
// run with --benchmark_format=json or --benchmark_out. If no inputs
// are given, benchplot reads standard input. An input of the form
// label=path is read from path.
//
// Benchmark names are expected to have the form <prefix><library>/<size>,
// such as "BM_frxml/1024". An explicit "label" on a benchmark replaces
// the size segment unless -ignore-label is given. Benchmarks whose
// names don't fit this form are reported and skipped; with -strict,
// they stop benchplot instead.
//
// For each metric, benchplot prints a table with a row per size and a
// column per library. With -baseline, every value is divided by the
// baseline library's value at the same size. A size the baseline did
// not measure has no ratios. Metrics the baseline does not report at
// all are skipped with a warning, unless they were named with -metric.
//
// The geomean row of each table only covers the sizes that every
// library measured; benchplot warns when that leaves sizes out.
//
// The -png and -svg flags additionally write a line chart per metric
// into the given directory.
//
// Example:
//
//	$ ./parse_bench --benchmark_format=json > results.json
//	$ benchplot -metric cpu_time -baseline frxml results.json
//	cpu_time (sec) vs frxml
//	size     frxml rapidxml pugixml
//	1024    1.000x   1.250x  2.000x
//	4096    1.000x   1.250x       -
//	geomean 1.000x   1.250x  2.000x
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/frxml/benchplot/benchfmt"
	"github.com/frxml/benchplot/benchproc"
	"github.com/frxml/benchplot/benchseries"
)

func main() {
	log.SetPrefix("benchplot: ")
	log.SetFlags(0)

	if err := benchplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type config struct {
	parser benchproc.ParserOptions
	chart  benchseries.ChartOptions

	metrics   string
	exclude   string
	only      string
	aggregate string
	baseline  string
	format    string
	strict    bool
}

func (c *config) register(fs *flag.FlagSet) {
	c.parser = *benchproc.DefaultParserOptions()
	c.chart = *benchseries.DefaultChartOptions()

	fs.StringVar(&c.parser.Delimiter, "delim", c.parser.Delimiter, "benchmark name segment `separator`")
	fs.StringVar(&c.parser.TrimPrefix, "prefix", c.parser.TrimPrefix, "`prefix` to strip from library names")
	fs.BoolVar(&c.parser.IgnoreLabel, "ignore-label", c.parser.IgnoreLabel, "take the size from the name even if a benchmark has a label")
	fs.BoolVar(&c.parser.DeriveThroughput, "throughput", c.parser.DeriveThroughput, "derive a throughput metric in bytes per second of cpu_time, unless bytes_per_second is reported")
	fs.StringVar(&c.metrics, "metric", "", "comma-separated `metrics` to show (default all)")
	fs.StringVar(&c.exclude, "exclude", "", "comma-separated `libraries` to leave out")
	fs.StringVar(&c.only, "only", "", "comma-separated `libraries` to show (default all)")
	fs.StringVar(&c.aggregate, "aggregate", "", "use aggregate results of `statistic`, such as mean, instead of individual runs")
	fs.StringVar(&c.baseline, "baseline", "", "show values relative to `library`")
	fs.StringVar(&c.format, "format", "text", "print results in `format`: text, csv, json, or html")
	fs.StringVar(&c.chart.PNGDir, "png", "", "write PNG charts into `dir`")
	fs.StringVar(&c.chart.SVGDir, "svg", "", "write SVG charts into `dir`")
	fs.BoolVar(&c.chart.LogX, "logx", c.chart.LogX, "use a log scale for sizes in charts")
	fs.BoolVar(&c.chart.LogY, "logy", c.chart.LogY, "use a log scale for values in charts")
	fs.BoolVar(&c.strict, "strict", false, "stop at the first malformed benchmark instead of skipping it")
}

func benchplot(w, wErr io.Writer, args []string) error {
	var c config
	fs := flag.NewFlagSet("benchplot", flag.ContinueOnError)
	fs.SetOutput(wErr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: benchplot [flags] [inputs...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	switch c.format {
	case "text", "csv", "json", "html":
	default:
		fs.Usage()
		return fmt.Errorf("unknown format %q", c.format)
	}

	warn := func(format string, args ...interface{}) {
		fmt.Fprintf(wErr, format+"\n", args...)
	}

	// Read inputs.
	var raws []*benchfmt.Result
	files := benchfmt.Files{Paths: fs.Args(), AllowStdin: true, AllowLabels: true}
	for files.Scan() {
		switch rec := files.Result().(type) {
		case *benchfmt.SyntaxError:
			if c.strict {
				return rec
			}
			// Non-fatal result parse error. Warn
			// but keep going.
			warn("%v", rec)
		case *benchfmt.Result:
			raws = append(raws, rec)
		}
	}
	if err := files.Err(); err != nil {
		return err
	}

	table, errs := benchproc.Build(raws, benchproc.NewParser(&c.parser))
	for _, err := range errs {
		if c.strict {
			return err
		}
		warn("%v", err)
	}
	table = table.Filter(benchproc.Aggregate(c.aggregate))
	table = table.Filter(benchproc.ExcludeLibraries(splitList(c.exclude)...))
	table = table.Filter(benchproc.OnlyLibraries(splitList(c.only)...))

	metrics := splitList(c.metrics)
	explicit := len(metrics) > 0
	if !explicit {
		metrics = benchseries.Metrics(table)
	}
	ms := make([]*benchseries.Matrix, 0, len(metrics))
	for _, m := range benchseries.PivotAll(table, metrics) {
		if m.NumRows() == 0 {
			warn("%s: no results", m.Metric())
		}
		if c.baseline != "" {
			n, err := benchseries.Normalize(m, c.baseline)
			if err != nil {
				// A metric only some libraries report may
				// lack the baseline. Skip it unless it was
				// asked for.
				if explicit || c.strict || !errors.Is(err, benchseries.ErrUnknownBaseline) {
					return err
				}
				warn("%v; skipping", err)
				continue
			}
			for _, issue := range n.Issues() {
				warn("%v", issue)
			}
			m = n
		}
		if _, rows := benchseries.Geomean(m); m.NumRows() > 1 && rows < m.NumRows() {
			warn("%s: not every library has every size; geomeans use %d of %d sizes", m.Metric(), rows, m.NumRows())
		}
		ms = append(ms, m)
	}

	var buf bytes.Buffer
	if err := format(&buf, c.format, ms); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	if c.chart.PNGDir != "" || c.chart.SVGDir != "" {
		if err := benchseries.Chart(ms, &c.chart); err != nil {
			return err
		}
	}
	return nil
}

func format(w io.Writer, format string, ms []*benchseries.Matrix) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(ms)
	case "html":
		io.WriteString(w, htmlHeader)
		if err := benchseries.ToHTML(w, ms); err != nil {
			return err
		}
		io.WriteString(w, htmlFooter)
		return nil
	}

	for i, m := range ms {
		if i > 0 {
			fmt.Fprintln(w)
		}
		var err error
		if format == "csv" {
			// Name each table, since the CSV header only
			// has libraries.
			title := []string{m.Metric()}
			if m.Normalized() {
				title = append(title, m.Baseline())
			}
			cw := csv.NewWriter(w)
			cw.Write(title)
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			err = m.ToCSV(w)
		} else {
			err = m.ToText(w)
		}
		if err != nil {
			return err
		}
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

var htmlHeader = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Benchmark Comparison</title>
<style>
.benchplot { border-collapse: collapse; margin-bottom: 1em; }
.benchplot th:nth-child(1) { text-align: left; }
.benchplot td:nth-child(1n+2) { text-align: right; padding: 0em 1em; }
.benchplot thead th { border-top: 1px solid #666; border-bottom: 1px solid #ccc; }
</style>
</head>
<body>
`
var htmlFooter = `</body>
</html>
`
