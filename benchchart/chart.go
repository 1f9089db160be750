// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders PNG charts from derived benchmark
// tables. It is a pure sink: it receives already-computed tables and
// draws them, and a rendering failure never invalidates the tabular
// artifacts written elsewhere.
package benchchart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/timber-tools/benchreport/benchcsv"
	"github.com/timber-tools/benchreport/benchstat"
)

// Bars renders pv as a grouped bar chart, one group per size and one
// bar per tool, and writes it to path. A missing cell draws as a
// zero-height bar; the CSV artifacts remain the source of truth for
// which cells were measured.
func Bars(pv *benchstat.Pivot, title, yLabel, path string) error {
	if len(pv.Rows) == 0 || len(pv.Cols) == 0 {
		return fmt.Errorf("chart %q: empty pivot", title)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "log size"
	p.Y.Label.Text = yLabel

	w := vg.Points(18)
	for i, tool := range pv.Cols {
		vals := make(plotter.Values, len(pv.Rows))
		for j, size := range pv.Rows {
			vals[j], _ = pv.Value(size, tool)
		}
		bars, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return fmt.Errorf("chart %q: %v", title, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = w * vg.Length(float64(i)-float64(len(pv.Cols)-1)/2)
		p.Add(bars)
		p.Legend.Add(tool, bars)
	}
	p.Legend.Top = true
	p.NominalX(pv.Rows...)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// ScalingLines renders processing time against log size on a log-log
// plot, one line per tool, and writes it to path. Records with a
// non-positive time are left out; a log axis cannot place them.
func ScalingLines(t *benchcsv.Table, sizes *benchcsv.SizeTable, path string) error {
	p := plot.New()
	p.Title.Text = "Performance Scaling by File Size"
	p.X.Label.Text = "lines"
	p.Y.Label.Text = "time (s)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = sizeTicks(sizes)
	p.Y.Tick.Marker = plot.LogTicks{}

	var series []interface{}
	for _, tool := range t.Tools() {
		var pts plotter.XYs
		for _, r := range t.ByTool(tool) {
			if r.TimeSeconds <= 0 {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(r.SizeLines), Y: r.TimeSeconds})
		}
		if len(pts) > 0 {
			series = append(series, tool, pts)
		}
	}
	if len(series) == 0 {
		return fmt.Errorf("scaling chart: no drawable measurements")
	}
	if err := plotutil.AddLinePoints(p, series...); err != nil {
		return fmt.Errorf("scaling chart: %v", err)
	}
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// sizeTicks marks each bucket at its line count, labeled with the
// bucket label.
func sizeTicks(sizes *benchcsv.SizeTable) plot.ConstantTicks {
	var ticks []plot.Tick
	for _, label := range sizes.Labels() {
		lines, _ := sizes.Lines(label)
		ticks = append(ticks, plot.Tick{Value: float64(lines), Label: label})
	}
	return plot.ConstantTicks(ticks)
}
