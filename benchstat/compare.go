// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/timber-tools/benchreport/benchcsv"
)

// A CompareEntry relates one tool to the reference tool within one
// size bucket.
//
// TimeRatio is reference time / tool time, so a ratio above 1 means
// the reference finished first. MemoryRatio is reference memory /
// tool memory, so a ratio above 1 means the reference used less
// memory. The phrase fields spell the same facts out from the
// reference's point of view.
type CompareEntry struct {
	Size string
	Tool string

	TimeRatio   float64
	MemoryRatio float64

	RefTimeSeconds  float64
	ToolTimeSeconds float64
	RefMemoryMB     float64
	ToolMemoryMB    float64

	TimeComparison   string
	MemoryComparison string
}

// A CompareSummary is one tool's geometric mean ratios across every
// size bucket it shares with the reference.
type CompareSummary struct {
	Tool        string
	TimeRatio   float64
	MemoryRatio float64
}

// Compare computes reference-relative ratios for every tool other
// than reference, per size bucket. Buckets without a reference
// measurement contribute no entries; that is an intentional skip, and
// callers must not assume every bucket is represented. Only when the
// reference appears in no bucket at all does Compare fail, with
// ErrNoReference.
func Compare(t *benchcsv.Table, reference string, sizes *benchcsv.SizeTable) ([]CompareEntry, error) {
	var out []CompareEntry
	seenRef := false

	for _, label := range sizes.Labels() {
		recs := t.BySize(label)

		var ref *benchcsv.Record
		for i := range recs {
			if recs[i].Tool == reference {
				ref = &recs[i]
				break
			}
		}
		if ref == nil {
			continue
		}
		seenRef = true

		for _, r := range recs {
			if r.Tool == reference {
				continue
			}
			e := CompareEntry{
				Size:            label,
				Tool:            r.Tool,
				TimeRatio:       ref.TimeSeconds / r.TimeSeconds,
				RefTimeSeconds:  ref.TimeSeconds,
				ToolTimeSeconds: r.TimeSeconds,
			}
			e.TimeComparison = speedPhrase(reference, e.TimeRatio)
			if t.HasMemory {
				e.MemoryRatio = ref.MemoryMB / r.MemoryMB
				e.RefMemoryMB = ref.MemoryMB
				e.ToolMemoryMB = r.MemoryMB
				e.MemoryComparison = memoryPhrase(reference, e.MemoryRatio)
			}
			out = append(out, e)
		}
	}
	if !seenRef {
		return nil, fmt.Errorf("%w: %q", ErrNoReference, reference)
	}
	return out, nil
}

// SummarizeCompare reduces entries to one geometric mean ratio pair
// per tool, in the order tools first appear. Ratios that cannot form
// a geomean are left zero.
func SummarizeCompare(entries []CompareEntry) []CompareSummary {
	timeByTool := make(map[string][]float64)
	memByTool := make(map[string][]float64)
	var order []string
	for _, e := range entries {
		if _, ok := timeByTool[e.Tool]; !ok {
			order = append(order, e.Tool)
		}
		timeByTool[e.Tool] = append(timeByTool[e.Tool], e.TimeRatio)
		if e.MemoryRatio > 0 {
			memByTool[e.Tool] = append(memByTool[e.Tool], e.MemoryRatio)
		}
	}

	var sums []CompareSummary
	for _, tool := range order {
		s := CompareSummary{Tool: tool}
		if gm := stats.GeoMean(timeByTool[tool]); !math.IsNaN(gm) {
			s.TimeRatio = gm
		}
		if gm := stats.GeoMean(memByTool[tool]); !math.IsNaN(gm) {
			s.MemoryRatio = gm
		}
		sums = append(sums, s)
	}
	return sums
}

// speedPhrase describes a time ratio from the reference's side:
// "timber is 2.00x slower" for a ratio of 0.5.
func speedPhrase(reference string, ratio float64) string {
	if ratio < 1 {
		return fmt.Sprintf("%s is %.2fx slower", reference, 1/ratio)
	}
	return fmt.Sprintf("%s is %.2fx faster", reference, ratio)
}

// memoryPhrase describes a memory ratio from the reference's side:
// "timber uses 1.60x more memory" for a ratio of 0.625.
func memoryPhrase(reference string, ratio float64) string {
	if ratio < 1 {
		return fmt.Sprintf("%s uses %.2fx more memory", reference, 1/ratio)
	}
	return fmt.Sprintf("%s uses %.2fx less memory", reference, ratio)
}
