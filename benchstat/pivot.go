// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"sort"

	"github.com/timber-tools/benchreport/benchcsv"
)

// A PivotKey addresses one cell of a Pivot.
type PivotKey struct {
	Size string
	Tool string
}

// A Pivot is a size × tool view of a single metric.
//
// Rows holds the size labels present in the data, in bucket-table
// order; sizes with no measurements are omitted rather than
// zero-filled, since a zero would misrepresent "no measurement" as
// "zero cost". Cols holds the tool names in sorted order. A (size,
// tool) pair with no measurement has no cell.
type Pivot struct {
	Metric Metric
	Rows   []string
	Cols   []string
	Cells  map[PivotKey]float64
}

// NewPivot reshapes t into a Pivot of the chosen metric. Pivoting
// must be injective on (tool, size): a duplicate pair is a
// DuplicateKeyError, never a silent overwrite.
func NewPivot(t *benchcsv.Table, m Metric, sizes *benchcsv.SizeTable) (*Pivot, error) {
	if m == Memory && !t.HasMemory {
		return nil, ErrNoMemory
	}
	p := &Pivot{Metric: m, Cells: make(map[PivotKey]float64)}

	rowSeen := make(map[string]bool)
	for _, r := range t.Records {
		k := PivotKey{r.SizeLabel, r.Tool}
		if _, ok := p.Cells[k]; ok {
			return nil, &DuplicateKeyError{Tool: r.Tool, Size: r.SizeLabel}
		}
		switch m {
		case Time:
			p.Cells[k] = r.TimeSeconds
		case Memory:
			p.Cells[k] = r.MemoryMB
		}
		rowSeen[r.SizeLabel] = true
	}

	for _, label := range sizes.Labels() {
		if rowSeen[label] {
			p.Rows = append(p.Rows, label)
		}
	}
	p.Cols = t.Tools()
	sort.Strings(p.Cols)
	return p, nil
}

// Value returns the cell for (size, tool) and whether it exists.
func (p *Pivot) Value(size, tool string) (float64, bool) {
	v, ok := p.Cells[PivotKey{size, tool}]
	return v, ok
}
