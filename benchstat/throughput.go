// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"

	"github.com/timber-tools/benchreport/benchcsv"
)

// A ThroughputEntry gives one tool's processing rates at one size:
// log lines per second, and log lines per MB of peak memory.
type ThroughputEntry struct {
	Size           string
	TimeSeconds    float64
	MemoryMB       float64
	LinesPerSecond float64
	LinesPerMB     float64
}

// Throughput derives per-size processing rates for a single tool,
// usually the reference. Entries follow the table's size order. A
// tool with no measurements at all yields ErrNoReference. Rates that
// would divide by zero are left zero; LinesPerMB is zero for
// memoryless tables.
func Throughput(t *benchcsv.Table, tool string) ([]ThroughputEntry, error) {
	recs := t.ByTool(tool)
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoReference, tool)
	}

	entries := make([]ThroughputEntry, len(recs))
	for i, r := range recs {
		e := ThroughputEntry{
			Size:        r.SizeLabel,
			TimeSeconds: r.TimeSeconds,
			MemoryMB:    r.MemoryMB,
		}
		if r.TimeSeconds > 0 {
			e.LinesPerSecond = float64(r.SizeLines) / r.TimeSeconds
		}
		if t.HasMemory && r.MemoryMB > 0 {
			e.LinesPerMB = float64(r.SizeLines) / r.MemoryMB
		}
		entries[i] = e
	}
	return entries, nil
}
