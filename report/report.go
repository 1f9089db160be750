// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report drives the analysis stages over a loaded measurement
// table and persists their artifacts: CSV tables, an HTML summary and
// PNG charts.
//
// The stages are independent. A failing stage is recorded and the
// remaining stages still run, so a malformed corner of the input
// costs only the tables derived from it. CSV artifacts are written
// before any rendering, so report data survives a rendering failure.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/timber-tools/benchreport/benchchart"
	"github.com/timber-tools/benchreport/benchcsv"
	"github.com/timber-tools/benchreport/benchstat"
)

// A Report is the full set of derived tables for one measurement
// table. Fields for failed or skipped stages are nil.
type Report struct {
	Table     *benchcsv.Table
	Sizes     *benchcsv.SizeTable
	Reference string

	TimePivot   *benchstat.Pivot
	MemoryPivot *benchstat.Pivot

	Scaling        []benchstat.ScalingEntry
	ScalingSummary []benchstat.ScalingSummary

	Rankings []benchstat.RankEntry

	Compare        []benchstat.CompareEntry
	CompareSummary []benchstat.CompareSummary

	Throughput []benchstat.ThroughputEntry

	// Errs holds the per-stage failures, in stage order.
	Errs []error
}

// Build runs every analysis stage over t and collects the results.
// Build never fails as a whole; consult Errs for stages that did.
func Build(t *benchcsv.Table, sizes *benchcsv.SizeTable, reference string) *Report {
	r := &Report{Table: t, Sizes: sizes, Reference: reference}

	var err error
	if r.TimePivot, err = benchstat.NewPivot(t, benchstat.Time, sizes); err != nil {
		r.fail("time pivot", err)
	}
	if t.HasMemory {
		if r.MemoryPivot, err = benchstat.NewPivot(t, benchstat.Memory, sizes); err != nil {
			r.fail("memory pivot", err)
		}
	}

	// Scaling reports per-tool failures but still returns the
	// healthy tools' entries.
	if r.Scaling, err = benchstat.Scaling(t); err != nil {
		r.fail("scaling", err)
	}
	r.ScalingSummary = benchstat.SummarizeScaling(r.Scaling)

	r.Rankings = benchstat.Rank(t, sizes)

	if r.Compare, err = benchstat.Compare(t, reference, sizes); err != nil {
		r.fail("comparative", err)
	}
	r.CompareSummary = benchstat.SummarizeCompare(r.Compare)

	if r.Throughput, err = benchstat.Throughput(t, reference); err != nil {
		r.fail("throughput", err)
	}

	return r
}

func (r *Report) fail(stage string, err error) {
	r.Errs = append(r.Errs, fmt.Errorf("%s: %w", stage, err))
}

// Skipped reports whether err marks a stage that had nothing to do,
// as opposed to one that failed: reference-relative stages are
// no-ops when the reference tool was never measured.
func Skipped(err error) bool {
	return errors.Is(err, benchstat.ErrNoReference)
}

// RankingsFor returns the ranking entries of one size bucket.
func (r *Report) RankingsFor(label string) []benchstat.RankEntry {
	var out []benchstat.RankEntry
	for _, e := range r.Rankings {
		if e.Size == label {
			out = append(out, e)
		}
	}
	return out
}

// WriteFiles writes every derived table that was computed as a CSV
// artifact under dir, creating it if needed. File names are stable
// across runs:
//
//	pivot_time.csv, pivot_memory.csv, scaling_factors.csv,
//	ranking_<size>.csv, comparative_analysis.csv,
//	reference_analysis.csv
func (r *Report) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return err
	}

	write := func(name string, f func(*os.File) error) error {
		file, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if err := f(file); err != nil {
			file.Close()
			return fmt.Errorf("%s: %w", name, err)
		}
		return file.Close()
	}

	hasMem := r.Table.HasMemory
	if r.TimePivot != nil {
		if err := write("pivot_time.csv", func(f *os.File) error { return r.TimePivot.WriteCSV(f) }); err != nil {
			return err
		}
	}
	if r.MemoryPivot != nil {
		if err := write("pivot_memory.csv", func(f *os.File) error { return r.MemoryPivot.WriteCSV(f) }); err != nil {
			return err
		}
	}
	if r.Scaling != nil {
		err := write("scaling_factors.csv", func(f *os.File) error {
			return benchstat.WriteScalingCSV(f, r.Scaling, r.ScalingSummary)
		})
		if err != nil {
			return err
		}
	}
	for _, label := range r.Sizes.Labels() {
		entries := r.RankingsFor(label)
		if len(entries) == 0 {
			continue
		}
		err := write("ranking_"+label+".csv", func(f *os.File) error {
			return benchstat.WriteRankingCSV(f, entries, hasMem)
		})
		if err != nil {
			return err
		}
	}
	if r.Compare != nil {
		err := write("comparative_analysis.csv", func(f *os.File) error {
			return benchstat.WriteCompareCSV(f, r.Compare, r.CompareSummary, hasMem)
		})
		if err != nil {
			return err
		}
	}
	if r.Throughput != nil {
		err := write("reference_analysis.csv", func(f *os.File) error {
			return benchstat.WriteThroughputCSV(f, r.Throughput, hasMem)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderCharts draws the report's charts under dir. Chart failures
// are joined and reported, but by the time RenderCharts runs the
// tabular artifacts are already on disk; callers log the error and
// keep the report.
func (r *Report) RenderCharts(dir string) error {
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return err
	}

	var errs []error
	if r.TimePivot != nil {
		err := benchchart.Bars(r.TimePivot, "Processing Time by Tool and File Size", "time (s)",
			filepath.Join(dir, "time_comparison.png"))
		if err != nil {
			errs = append(errs, err)
		}
	}
	if r.MemoryPivot != nil {
		err := benchchart.Bars(r.MemoryPivot, "Memory Usage by Tool and File Size", "memory (MB)",
			filepath.Join(dir, "memory_comparison.png"))
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(r.Table.Records) > 0 {
		err := benchchart.ScalingLines(r.Table, r.Sizes, filepath.Join(dir, "scaling_analysis.png"))
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
