// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/frxml/benchplot/benchproc"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot"
)

func TestChart(t *testing.T) {
	m := Pivot(exampleTable(), "time")
	n := mustNormalize(t, m, "lib_A")

	opts := DefaultChartOptions()
	opts.PNGDir = filepath.Join(t.TempDir(), "png")
	opts.SVGDir = filepath.Join(t.TempDir(), "svg")
	opts.LogX = true
	if err := Chart([]*Matrix{m, n}, opts); err != nil {
		t.Fatal(err)
	}
	for _, file := range []string{
		filepath.Join(opts.PNGDir, "time.png"),
		filepath.Join(opts.PNGDir, "time-vs-lib_A.png"),
		filepath.Join(opts.SVGDir, "time.svg"),
		filepath.Join(opts.SVGDir, "time-vs-lib_A.svg"),
	} {
		fi, err := os.Stat(file)
		if err != nil {
			t.Error(err)
		} else if fi.Size() == 0 {
			t.Errorf("%s is empty", file)
		}
	}
}

func TestChartSkipsEmpty(t *testing.T) {
	// Nothing can be drawn on a log axis.
	tab := benchproc.NewTable(rec("a", 0, "time", 1.0))
	opts := DefaultChartOptions()
	opts.LogX = true
	if _, ok, err := Pivot(tab, "time").Plot(opts); ok || err != nil {
		t.Errorf("Plot = %v, %v, want false, nil", ok, err)
	}

	opts.PNGDir = t.TempDir()
	if err := Chart([]*Matrix{Pivot(tab, "time")}, opts); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(opts.PNGDir, "time.png")); !os.IsNotExist(err) {
		t.Errorf("chart written for empty plot: %v", err)
	}
}

func TestPlotNormalized(t *testing.T) {
	n := mustNormalize(t, Pivot(exampleTable(), "time"), "lib_B")
	pl, ok, err := n.Plot(DefaultChartOptions())
	if err != nil || !ok {
		t.Fatalf("Plot = %v, %v", ok, err)
	}
	// The ratios are all below 1, but 1 must be on the axis.
	if pl.Y.Max < 1 {
		t.Errorf("Y.Max = %v, want at least 1", pl.Y.Max)
	}
	if pl.Y.Label.Text != "ratio to lib_B" {
		t.Errorf("Y label %q", pl.Y.Label.Text)
	}
}

func TestChartName(t *testing.T) {
	tab := benchproc.NewTable(rec("x/y", 1, "items/s", 1.0))
	m := Pivot(tab, "items/s")
	if got := ChartName(m); got != "items-per-s" {
		t.Errorf("got %q", got)
	}
	if got := ChartName(mustNormalize(t, m, "x/y")); got != "items-per-s-vs-x-per-y" {
		t.Errorf("got %q", got)
	}
}

func TestRatioLines(t *testing.T) {
	labels := func(r ratioTicks) []string {
		var out []string
		for _, tk := range r.Ticks(0, 0) {
			out = append(out, tk.Label)
		}
		return out
	}
	for _, test := range []struct {
		low, high, min, max float64
		want                []string
	}{
		{1, 1, 1, 1, []string{"1.0"}},
		{1, 2.2, 1, 2.2, []string{"1", "2"}},
		{0.45, 1, 0.45, 1, []string{"0.5", "1"}},
		{0.8, 1.3, 0.8, 1.3, []string{"1", "1.25"}},
	} {
		got := labels(ratioLines(test.low, test.high, test.min, test.max))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ratioLines(%v, %v): (-want +got):\n%s", test.low, test.high, diff)
		}
	}
	var _ plot.Ticker = ratioTicks{}
}
