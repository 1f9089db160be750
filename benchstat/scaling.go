// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/timber-tools/benchreport/benchcsv"
)

// A ScalingEntry describes how one tool's processing time grew
// between two adjacent size buckets. A Factor near 1.0 means the
// time grew in proportion to the input; above 1 is super-linear
// growth, below 1 sub-linear.
type ScalingEntry struct {
	Tool      string
	From, To  string  // size labels of the transition
	SizeRatio float64 // To lines / From lines
	TimeRatio float64 // To time / From time
	Factor    float64 // TimeRatio / SizeRatio
}

// Transition renders the entry's size transition, e.g. "10k → 100k".
func (e ScalingEntry) Transition() string {
	return fmt.Sprintf("%s → %s", e.From, e.To)
}

// A ScalingSummary is one tool's geometric mean Factor across all of
// its transitions.
type ScalingSummary struct {
	Tool   string
	Factor float64
}

// Scaling computes a ScalingEntry for every adjacent pair of sizes
// measured for each tool. Tools with a single measurement produce no
// entries; that is not an error, scaling needs a transition.
//
// A zero previous time or size aborts that tool's computation with a
// ZeroDivisionError but leaves every other tool's entries intact.
// The returned error joins the per-tool failures, so entries can be
// non-empty even when the error is non-nil.
//
// Records within a tool are re-sorted by size before pairing, so
// Scaling does not silently depend on the loader's ordering.
func Scaling(t *benchcsv.Table) ([]ScalingEntry, error) {
	var entries []ScalingEntry
	var errs []error

	for _, tool := range t.Tools() {
		recs := t.ByTool(tool)
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].SizeLines < recs[j].SizeLines
		})

		var toolEntries []ScalingEntry
		bad := false
		for i := 1; i < len(recs); i++ {
			prev, curr := recs[i-1], recs[i]
			if prev.SizeLines == 0 || prev.TimeSeconds == 0 {
				errs = append(errs, &ZeroDivisionError{Tool: tool, From: prev.SizeLabel, To: curr.SizeLabel})
				bad = true
				break
			}
			sizeRatio := float64(curr.SizeLines) / float64(prev.SizeLines)
			timeRatio := curr.TimeSeconds / prev.TimeSeconds
			toolEntries = append(toolEntries, ScalingEntry{
				Tool:      tool,
				From:      prev.SizeLabel,
				To:        curr.SizeLabel,
				SizeRatio: sizeRatio,
				TimeRatio: timeRatio,
				Factor:    timeRatio / sizeRatio,
			})
		}
		if !bad {
			entries = append(entries, toolEntries...)
		}
	}
	return entries, errors.Join(errs...)
}

// SummarizeScaling reduces entries to one geometric mean Factor per
// tool, in the order tools first appear. Tools whose factors cannot
// form a geomean (a non-positive factor) are omitted.
func SummarizeScaling(entries []ScalingEntry) []ScalingSummary {
	byTool := make(map[string][]float64)
	var order []string
	for _, e := range entries {
		if _, ok := byTool[e.Tool]; !ok {
			order = append(order, e.Tool)
		}
		byTool[e.Tool] = append(byTool[e.Tool], e.Factor)
	}

	var sums []ScalingSummary
	for _, tool := range order {
		gm := stats.GeoMean(byTool[tool])
		if math.IsNaN(gm) {
			continue
		}
		sums = append(sums, ScalingSummary{Tool: tool, Factor: gm})
	}
	return sums
}
