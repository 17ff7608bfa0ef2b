// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/frxml/benchplot/benchunit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// ChartOptions configures Chart.
type ChartOptions struct {
	// PNGDir and SVGDir are the directories to write charts to.
	// A format is skipped if its directory is "".
	PNGDir, SVGDir string

	// LogX and LogY select logarithmic axes. Points that can't be
	// shown on a logarithmic axis are left out.
	LogX, LogY bool

	// Width and Height are the size of each chart.
	Width, Height vg.Length

	// DPI is the resolution of PNG charts.
	DPI int
}

// DefaultChartOptions returns the default chart options. No output
// directory is set.
func DefaultChartOptions() *ChartOptions {
	return &ChartOptions{
		Width:  16 * vg.Centimeter,
		Height: 10 * vg.Centimeter,
		DPI:    150,
	}
}

const pointRad = 2

// Chart draws a line chart of each matrix, with one line per library,
// and writes it to the directories named by opts. Absent cells are
// left out of their line. Matrices with no points to draw are skipped.
func Chart(ms []*Matrix, opts *ChartOptions) error {
	if opts == nil {
		opts = DefaultChartOptions()
	}
	for _, dir := range []string{opts.PNGDir, opts.SVGDir} {
		if dir != "" {
			if err := os.MkdirAll(dir, 0777); err != nil {
				return err
			}
		}
	}

	for _, m := range ms {
		pl, ok, err := m.Plot(opts)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		name := ChartName(m)
		if opts.PNGDir != "" {
			c := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height),
				vgimg.UseDPI(opts.DPI), vgimg.UseBackgroundColor(color.White))
			if err := writeChart(pl, vgimg.PngCanvas{Canvas: c}, filepath.Join(opts.PNGDir, name+".png")); err != nil {
				return err
			}
		}
		if opts.SVGDir != "" {
			c := vgsvg.New(opts.Width, opts.Height)
			if err := writeChart(pl, c, filepath.Join(opts.SVGDir, name+".svg")); err != nil {
				return err
			}
		}
	}
	return nil
}

type chartCanvas interface {
	vg.CanvasSizer
	vg.CanvasWriterTo
}

func writeChart(pl *plot.Plot, can chartCanvas, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	pl.Draw(draw.New(can))
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return f.Close()
}

// ChartName returns the base file name Chart uses for m.
func ChartName(m *Matrix) string {
	r := strings.NewReplacer("/", "-per-", " ", "_", string(filepath.Separator), "_")
	name := r.Replace(m.metric)
	if m.baseline != "" {
		name += "-vs-" + r.Replace(m.baseline)
	}
	return name
}

// Plot builds the chart of m. It reports false if m has no point
// that can be drawn with opts.
func (m *Matrix) Plot(opts *ChartOptions) (*plot.Plot, bool, error) {
	pl := plot.New()
	pl.Title.Text = m.title()
	pl.X.Label.Text = "size"
	if m.baseline != "" {
		pl.Y.Label.Text = "ratio to " + m.baseline
	} else {
		_, pl.Y.Label.Text = benchunit.Tidy(1, m.unit)
	}
	pl.Legend.Top = true
	pl.Legend.Left = true

	if opts.LogX {
		pl.X.Scale = plot.LogScale{}
		pl.X.Tick.Marker = plot.LogTicks{}
	}
	if opts.LogY {
		pl.Y.Scale = plot.LogScale{}
		pl.Y.Tick.Marker = plot.LogTicks{}
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	colors := libraryColors(len(m.libs))
	var all []float64
	for j, lib := range m.libs {
		var xys plotter.XYs
		for i, size := range m.sizes {
			c := m.cells[i][j]
			if !c.Present || math.IsInf(c.Value, 0) || math.IsNaN(c.Value) {
				continue
			}
			if opts.LogX && size <= 0 || opts.LogY && c.Value <= 0 {
				continue
			}
			xys = append(xys, plotter.XY{X: size, Y: c.Value})
			all = append(all, c.Value)
		}
		if len(xys) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %s: %w", m.metric, lib, err)
		}
		line.Color = colors[j]
		points.Color = colors[j]
		points.Shape = plotutil.Shape(j)
		points.Radius = vg.Points(pointRad)
		pl.Add(line, points)
		pl.Legend.Add(lib, line, points)
	}
	if len(all) == 0 {
		return nil, false, nil
	}

	if m.baseline != "" {
		// Force the unit ratio onto the graph to ensure there is
		// a scale.
		if pl.Y.Min > 1 {
			pl.Y.Min = 1
		}
		if pl.Y.Max < 1 {
			pl.Y.Max = 1
		}
		if !opts.LogY {
			lo, hi := minMax(all)
			pl.Y.Tick.Marker = ratioLines(lo, hi, pl.Y.Min, pl.Y.Max)
		}
	}
	return pl, true, nil
}

// libraryColors returns n distinct line colors.
func libraryColors(n int) []color.Color {
	k := n
	if k < 3 {
		k = 3
	} else if k > 9 {
		k = 9
	}
	colors := make([]color.Color, n)
	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", k)
	for i := range colors {
		if err != nil || i >= k {
			colors[i] = plotutil.Color(i)
			continue
		}
		colors[i] = pal.Colors()[i]
	}
	return colors
}

func minMax(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

// ratioTicks places grid lines at round distances from 1.0.
type ratioTicks struct {
	ticks []plot.Tick
}

func (r ratioTicks) Ticks(min, max float64) []plot.Tick {
	return r.ticks
}

// roundish finds a roundish fraction less than x, and the number of digits for formatting.
// x is distance from 1.0, so 1 +/- roundish(x) gives a good location for a grid line.
func roundish(x float64) (float64, int) {
	if !(x > 0) { // catch NaN also.
		panic(fmt.Sprintf("roundish(%.9g <= 0)", x))
	}
	if x >= 1 {
		return math.Trunc(x), 0
	}
	if x >= 0.5 {
		return 0.5, 1
	}
	if x >= 0.25 {
		return 0.25, 2
	}
	if x >= 0.2 {
		return 0.2, 1
	}
	if x >= 0.1 {
		return 0.1, 1
	}
	x, n := roundish(x * 10)
	return x / 10, n + 1
}

func reverseTicks(ticks []plot.Tick) []plot.Tick {
	l := len(ticks)
	for i := 0; i < l/2; i++ {
		ticks[i], ticks[l-i-1] = ticks[l-i-1], ticks[i]
	}
	return ticks
}

// ratioLines returns grid lines for ratios between low and high on an
// axis from min to max.
func ratioLines(low, high, min, max float64) ratioTicks {
	if high <= 1 {
		if low == 1 {
			return ratioTicks{[]plot.Tick{one}}
		}

		step, k := roundish(1 - low)
		var ticks []plot.Tick
		for t := 1.0; t >= min; t -= step {
			ticks = append(ticks, tick(t, k))
		}
		return ratioTicks{reverseTicks(ticks)}
	} else if low >= 1 {
		step, k := roundish(high - 1)
		k++ // for 1.frac
		var ticks []plot.Tick
		for t := 1.0; t <= max; t += step {
			ticks = append(ticks, tick(t, k))
		}
		return ratioTicks{ticks}
	}

	rmin, kmin := roundish(1 - low)
	rmax, k := roundish(high - 1)
	if rmax < rmin {
		rmax = rmin
		k = kmin
	}
	k++ // for 1.frac

	step := rmax
	var ticks []plot.Tick
	for t := 1.0; t >= min; t -= step {
		ticks = append(ticks, tick(t, k))
	}
	ticks = reverseTicks(ticks)
	for t := 1.0 + step; t <= max; t += step {
		ticks = append(ticks, tick(t, k))
	}
	return ratioTicks{ticks}
}

func tick(x float64, k int) plot.Tick {
	return plot.Tick{Value: x, Label: fmt.Sprintf("%.[2]*[1]g", x, k)}
}

var one = plot.Tick{Value: 1.0, Label: "1.0"}
