// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads the CSV tables produced by the timber
// benchmark harness.
//
// Two input layouts are supported. The long layout starts with a
// header row naming at least the tool, log and time_seconds columns
// and usually a memory_mb column; it is parsed strictly, and any row
// that cannot be normalized is an error. The short layout is
// headerless with exactly three columns (tool, log, time_seconds);
// it is parsed leniently, and rows that cannot be normalized are
// skipped. The harness emits the short layout when it runs without
// memory sampling, so readers must detect the layout themselves.
//
// Every row names its source log, e.g. "app_100k.json". The segment
// between the first underscore and the following dot is the size
// label, which a SizeTable maps to the log's line count. Loaded
// records are sorted by tool and then by line count; downstream
// scaling analysis depends on that order.
package benchcsv

import (
	"errors"
	"fmt"
)

// A Measurement is one raw row of benchmark output: one tool run
// against one log.
type Measurement struct {
	Tool        string
	Log         string
	TimeSeconds float64
	MemoryMB    float64 // zero when the input has no memory column
}

// A Record is a Measurement whose log name has been resolved against
// a SizeTable.
type Record struct {
	Measurement
	SizeLabel string // categorical bucket, e.g. "100k"
	SizeLines int    // numeric magnitude of SizeLabel
}

// A Table is a loaded, normalized measurement set.
//
// Records are sorted by Tool ascending, then SizeLines ascending.
// HasMemory reports whether the input carried a memory column; when
// it is false the MemoryMB fields are meaningless and memory-based
// analyses must be skipped.
type Table struct {
	Records   []Record
	HasMemory bool
}

// Tools returns the distinct tool names in t, in sorted order.
func (t *Table) Tools() []string {
	var tools []string
	seen := make(map[string]bool)
	for _, r := range t.Records {
		if !seen[r.Tool] {
			seen[r.Tool] = true
			tools = append(tools, r.Tool)
		}
	}
	return tools
}

// ByTool returns t's records for one tool, in table order.
func (t *Table) ByTool(tool string) []Record {
	var recs []Record
	for _, r := range t.Records {
		if r.Tool == tool {
			recs = append(recs, r)
		}
	}
	return recs
}

// BySize returns t's records for one size label, in table order.
func (t *Table) BySize(label string) []Record {
	var recs []Record
	for _, r := range t.Records {
		if r.SizeLabel == label {
			recs = append(recs, r)
		}
	}
	return recs
}

// Normalization failure modes. Both are fatal in the long layout and
// cause a row skip in the short layout.
var (
	// ErrMalformedLog indicates a log name with no size segment.
	ErrMalformedLog = errors.New("log name does not encode a size")

	// ErrUnknownBucket indicates a size label missing from the
	// SizeTable in use.
	ErrUnknownBucket = errors.New("size label not in bucket table")
)

// A SyntaxError reports a row of a measurement file that cannot be
// normalized, and where it was found.
type SyntaxError struct {
	File string
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
