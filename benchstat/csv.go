// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSV writers for the derived tables. The report artifacts are plain
// tabular files so they stay usable when chart rendering is not; the
// column layouts match what the benchmark harness has historically
// published.

// WriteCSV writes p with one row per size and one column per tool.
// Cells with no measurement are left empty, not zero.
func (p *Pivot) WriteCSV(w io.Writer) error {
	o := csv.NewWriter(w)
	o.Write(append([]string{"size"}, p.Cols...))
	for _, size := range p.Rows {
		row := []string{size}
		for _, tool := range p.Cols {
			if v, ok := p.Value(size, tool); ok {
				row = append(row, num(v))
			} else {
				row = append(row, "")
			}
		}
		o.Write(row)
	}
	o.Flush()
	return o.Error()
}

// WriteScalingCSV writes entries followed by per-tool geomean
// summary rows.
func WriteScalingCSV(w io.Writer, entries []ScalingEntry, summaries []ScalingSummary) error {
	o := csv.NewWriter(w)
	o.Write([]string{"tool", "transition", "size_ratio", "time_ratio", "scaling_factor"})
	for _, e := range entries {
		o.Write([]string{
			e.Tool,
			e.Transition(),
			num(e.SizeRatio),
			fmt.Sprintf("%.2fx", e.TimeRatio),
			fmt.Sprintf("%.3f", e.Factor),
		})
	}
	for _, s := range summaries {
		o.Write([]string{s.Tool, "geomean", "", "", fmt.Sprintf("%.3f", s.Factor)})
	}
	o.Flush()
	return o.Error()
}

// WriteRankingCSV writes entries, which the caller has usually
// filtered to a single size bucket. Memory columns are omitted for
// memoryless tables.
func WriteRankingCSV(w io.Writer, entries []RankEntry, hasMemory bool) error {
	o := csv.NewWriter(w)
	if hasMemory {
		o.Write([]string{"tool", "time_seconds", "memory_mb", "time_rank", "memory_rank", "combined_score"})
	} else {
		o.Write([]string{"tool", "time_seconds", "time_rank", "combined_score"})
	}
	for _, e := range entries {
		row := []string{e.Tool, fmt.Sprintf("%.3f", e.TimeSeconds)}
		if hasMemory {
			row = append(row, fmt.Sprintf("%.2f", e.MemoryMB))
		}
		row = append(row, fmt.Sprintf("%.1f", e.TimeRank))
		if hasMemory {
			row = append(row, fmt.Sprintf("%.1f", e.MemoryRank))
		}
		row = append(row, fmt.Sprintf("%.1f", e.Combined))
		o.Write(row)
	}
	o.Flush()
	return o.Error()
}

// WriteCompareCSV writes entries followed by per-tool geomean
// summary rows with "geomean" in the size column.
func WriteCompareCSV(w io.Writer, entries []CompareEntry, summaries []CompareSummary, hasMemory bool) error {
	o := csv.NewWriter(w)
	hdr := []string{"size", "tool", "time_ratio", "ref_time_seconds", "tool_time_seconds", "time_comparison"}
	if hasMemory {
		hdr = []string{
			"size", "tool", "time_ratio", "memory_ratio",
			"ref_time_seconds", "tool_time_seconds",
			"ref_memory_mb", "tool_memory_mb",
			"time_comparison", "memory_comparison",
		}
	}
	o.Write(hdr)
	for _, e := range entries {
		if hasMemory {
			o.Write([]string{
				e.Size, e.Tool, num(e.TimeRatio), num(e.MemoryRatio),
				fmt.Sprintf("%.3f", e.RefTimeSeconds), fmt.Sprintf("%.3f", e.ToolTimeSeconds),
				fmt.Sprintf("%.2f", e.RefMemoryMB), fmt.Sprintf("%.2f", e.ToolMemoryMB),
				e.TimeComparison, e.MemoryComparison,
			})
		} else {
			o.Write([]string{
				e.Size, e.Tool, num(e.TimeRatio),
				fmt.Sprintf("%.3f", e.RefTimeSeconds), fmt.Sprintf("%.3f", e.ToolTimeSeconds),
				e.TimeComparison,
			})
		}
	}
	for _, s := range summaries {
		if hasMemory {
			o.Write([]string{"geomean", s.Tool, num(s.TimeRatio), num(s.MemoryRatio), "", "", "", "", "", ""})
		} else {
			o.Write([]string{"geomean", s.Tool, num(s.TimeRatio), "", "", ""})
		}
	}
	o.Flush()
	return o.Error()
}

// WriteThroughputCSV writes the reference tool's processing rates.
func WriteThroughputCSV(w io.Writer, entries []ThroughputEntry, hasMemory bool) error {
	o := csv.NewWriter(w)
	if hasMemory {
		o.Write([]string{"size", "time_seconds", "memory_mb", "lines_per_second", "lines_per_mb"})
	} else {
		o.Write([]string{"size", "time_seconds", "lines_per_second"})
	}
	for _, e := range entries {
		if hasMemory {
			o.Write([]string{
				e.Size, fmt.Sprintf("%.3f", e.TimeSeconds), fmt.Sprintf("%.2f", e.MemoryMB),
				fmt.Sprintf("%.0f", e.LinesPerSecond), fmt.Sprintf("%.0f", e.LinesPerMB),
			})
		} else {
			o.Write([]string{e.Size, fmt.Sprintf("%.3f", e.TimeSeconds), fmt.Sprintf("%.0f", e.LinesPerSecond)})
		}
	}
	o.Flush()
	return o.Error()
}

// num formats a value with the smallest number of digits that
// round-trips, for machine-consumed columns.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
