// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat derives comparison statistics from normalized
// benchmark tables: size × tool pivots, cross-size scaling factors,
// per-size rankings, and ratios against a reference tool.
//
// Every function in this package consumes an immutable benchcsv.Table
// snapshot and returns a new derived table; nothing is mutated after
// construction, and the stages are independent of one another, so a
// failure in one does not invalidate the others.
package benchstat

import (
	"errors"
	"fmt"
)

// Metric selects which measurement column an analysis operates on.
type Metric int

const (
	Time Metric = iota
	Memory
)

func (m Metric) String() string {
	switch m {
	case Time:
		return "time_seconds"
	case Memory:
		return "memory_mb"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ErrNoMemory is returned by memory-based analyses over a table
// loaded from the short, memoryless input layout.
var ErrNoMemory = errors.New("input table has no memory column")

// ErrNoReference is returned when a reference-relative analysis finds
// no measurements for the reference tool at any size. Callers treat
// it as "nothing to report", not as a failed run.
var ErrNoReference = errors.New("no measurements for reference tool")

// A DuplicateKeyError reports two measurements for the same tool at
// the same size, which would silently overwrite a pivot cell.
type DuplicateKeyError struct {
	Tool string
	Size string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate measurement for tool %q at size %q", e.Tool, e.Size)
}

// A ZeroDivisionError reports a zero previous time or size in a
// scaling transition. Zero-cost entries are malformed input, not a
// valid base for a ratio.
type ZeroDivisionError struct {
	Tool string
	From string
	To   string
}

func (e *ZeroDivisionError) Error() string {
	return fmt.Sprintf("tool %q: zero time or size at %q, cannot scale %s → %s", e.Tool, e.From, e.From, e.To)
}
