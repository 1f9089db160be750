// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"sort"

	"github.com/timber-tools/benchreport/benchcsv"
)

// A RankEntry places one tool within one size bucket. Ranks are
// 1-based and ascending on cost: rank 1 is the fastest tool, or the
// one using the least memory. Tied values share the mean of the
// positions they jointly occupy, so three tools tied for first all
// rank 2.0.
//
// Combined is the unweighted mean of the two ranks; lower is better.
// For memoryless tables MemoryRank is 0 and Combined equals TimeRank.
type RankEntry struct {
	Size        string
	Tool        string
	TimeSeconds float64
	MemoryMB    float64
	TimeRank    float64
	MemoryRank  float64
	Combined    float64
}

// Rank ranks the tools within every size bucket of t, independently
// per bucket. Buckets appear in sizes order; within a bucket entries
// are sorted by Combined score, ties broken by tool name so the
// output is deterministic. A bucket with a single tool trivially
// ranks it 1.
func Rank(t *benchcsv.Table, sizes *benchcsv.SizeTable) []RankEntry {
	var out []RankEntry
	for _, label := range sizes.Labels() {
		recs := t.BySize(label)
		if len(recs) == 0 {
			continue
		}

		times := make([]float64, len(recs))
		mems := make([]float64, len(recs))
		for i, r := range recs {
			times[i] = r.TimeSeconds
			mems[i] = r.MemoryMB
		}
		timeRanks := tieRanks(times)
		var memRanks []float64
		if t.HasMemory {
			memRanks = tieRanks(mems)
		}

		entries := make([]RankEntry, len(recs))
		for i, r := range recs {
			e := RankEntry{
				Size:        label,
				Tool:        r.Tool,
				TimeSeconds: r.TimeSeconds,
				MemoryMB:    r.MemoryMB,
				TimeRank:    timeRanks[i],
			}
			if t.HasMemory {
				e.MemoryRank = memRanks[i]
				e.Combined = (e.TimeRank + e.MemoryRank) / 2
			} else {
				e.Combined = e.TimeRank
			}
			entries[i] = e
		}
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Combined != entries[j].Combined {
				return entries[i].Combined < entries[j].Combined
			}
			return entries[i].Tool < entries[j].Tool
		})
		out = append(out, entries...)
	}
	return out
}

// tieRanks assigns 1-based ascending ranks to vals, giving tied
// values the mean of the rank positions they jointly occupy.
func tieRanks(vals []float64) []float64 {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return vals[idx[a]] < vals[idx[b]]
	})

	ranks := make([]float64, len(vals))
	for lo := 0; lo < len(idx); {
		hi := lo + 1
		for hi < len(idx) && vals[idx[hi]] == vals[idx[lo]] {
			hi++
		}
		// Positions lo+1 .. hi occupied by the tie; each member
		// gets their mean.
		mean := float64(lo+1+hi) / 2
		for _, i := range idx[lo:hi] {
			ranks[i] = mean
		}
		lo = hi
	}
	return ranks
}
