// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText prints the derived tables in aligned columns for a
// terminal, in the order the harness has always printed them:
// scaling, rankings, throughput, comparison.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	hasMem := r.Table.HasMemory

	if len(r.Scaling) > 0 {
		fmt.Fprintf(tw, "Scaling Analysis (how processing time increases with file size):\n")
		fmt.Fprintf(tw, "tool\ttransition\ttime increase\tfactor\n")
		for _, e := range r.Scaling {
			fmt.Fprintf(tw, "%s\t%s\t%.2fx\t%.3f\n", e.Tool, e.Transition(), e.TimeRatio, e.Factor)
		}
		for _, s := range r.ScalingSummary {
			fmt.Fprintf(tw, "%s\tgeomean\t\t%.3f\n", s.Tool, s.Factor)
		}
		fmt.Fprintln(tw)
	}

	for _, label := range r.Sizes.Labels() {
		entries := r.RankingsFor(label)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(tw, "Tool Rankings for %s lines:\n", label)
		if hasMem {
			fmt.Fprintf(tw, "tool\ttime (s)\tmemory (MB)\ttime rank\tmemory rank\tcombined\n")
		} else {
			fmt.Fprintf(tw, "tool\ttime (s)\ttime rank\tcombined\n")
		}
		for _, e := range entries {
			if hasMem {
				fmt.Fprintf(tw, "%s\t%.3f\t%.2f\t%.1f\t%.1f\t%.1f\n",
					e.Tool, e.TimeSeconds, e.MemoryMB, e.TimeRank, e.MemoryRank, e.Combined)
			} else {
				fmt.Fprintf(tw, "%s\t%.3f\t%.1f\t%.1f\n", e.Tool, e.TimeSeconds, e.TimeRank, e.Combined)
			}
		}
		fmt.Fprintln(tw)
	}

	if len(r.Throughput) > 0 {
		fmt.Fprintf(tw, "%s Performance Analysis:\n", r.Reference)
		if hasMem {
			fmt.Fprintf(tw, "size\ttime (s)\tmemory (MB)\tlines/second\tlines/MB\n")
		} else {
			fmt.Fprintf(tw, "size\ttime (s)\tlines/second\n")
		}
		for _, e := range r.Throughput {
			if hasMem {
				fmt.Fprintf(tw, "%s\t%.3f\t%.2f\t%.0f\t%.0f\n",
					e.Size, e.TimeSeconds, e.MemoryMB, e.LinesPerSecond, e.LinesPerMB)
			} else {
				fmt.Fprintf(tw, "%s\t%.3f\t%.0f\n", e.Size, e.TimeSeconds, e.LinesPerSecond)
			}
		}
		fmt.Fprintln(tw)
	}

	if len(r.Compare) > 0 {
		fmt.Fprintf(tw, "Comparative Analysis (%s vs. other tools):\n", r.Reference)
		if hasMem {
			fmt.Fprintf(tw, "size\ttool\tspeed\tmemory\n")
		} else {
			fmt.Fprintf(tw, "size\ttool\tspeed\n")
		}
		for _, e := range r.Compare {
			if hasMem {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Size, e.Tool, e.TimeComparison, e.MemoryComparison)
			} else {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Size, e.Tool, e.TimeComparison)
			}
		}
	}

	return tw.Flush()
}
