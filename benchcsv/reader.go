// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Column names recognized in the long layout's header row.
const (
	colTool = "tool"
	colLog  = "log"
	colTime = "time_seconds"
	colMem  = "memory_mb"
)

// ReadFile loads and normalizes the measurement table at path.
// A missing or unreadable file is a fatal error naming the path.
func ReadFile(path string, sizes *SizeTable) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("benchmark results: %w", err)
	}
	defer f.Close()
	return Read(f, path, sizes)
}

// Read loads a measurement table from r. name is the input's name for
// error messages; it is purely diagnostic.
//
// Read detects the layout from the first row: a header row naming the
// tool, log and time_seconds columns selects the strict long layout,
// anything else the lenient headerless short layout.
func Read(r io.Reader, name string, sizes *SizeTable) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	first, err := cr.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if cols, ok := headerColumns(first); ok {
		return readLong(cr, name, cols, sizes)
	}
	return readShort(cr, name, first, sizes)
}

// headerColumns maps column names to positions if row is a long
// layout header row.
func headerColumns(row []string) (map[string]int, bool) {
	cols := make(map[string]int)
	for i, c := range row {
		cols[c] = i
	}
	for _, c := range []string{colTool, colLog, colTime} {
		if _, ok := cols[c]; !ok {
			return nil, false
		}
	}
	return cols, true
}

// readLong parses the long layout. Every row must normalize; the
// first row that does not aborts the load with a SyntaxError.
func readLong(cr *csv.Reader, name string, cols map[string]int, sizes *SizeTable) (*Table, error) {
	memCol, hasMem := cols[colMem]
	t := &Table{HasMemory: hasMem}

	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		m := Measurement{}
		for _, want := range []struct {
			col int
			dst *string
		}{
			{cols[colTool], &m.Tool},
			{cols[colLog], &m.Log},
		} {
			if want.col >= len(row) {
				return nil, &SyntaxError{name, line, fmt.Errorf("row has %d fields, need at least %d", len(row), want.col+1)}
			}
			*want.dst = row[want.col]
		}
		m.TimeSeconds, err = field(row, cols[colTime])
		if err != nil {
			return nil, &SyntaxError{name, line, fmt.Errorf("bad %s: %v", colTime, err)}
		}
		if hasMem {
			m.MemoryMB, err = field(row, memCol)
			if err != nil {
				return nil, &SyntaxError{name, line, fmt.Errorf("bad %s: %v", colMem, err)}
			}
		}
		rec, err := normalize(m, sizes)
		if err != nil {
			return nil, &SyntaxError{name, line, err}
		}
		t.Records = append(t.Records, rec)
	}
	sortRecords(t.Records)
	return t, nil
}

// readShort parses the headerless short layout: exactly three
// columns, no memory. Rows that cannot be normalized are skipped
// rather than failing the load.
func readShort(cr *csv.Reader, name string, first []string, sizes *SizeTable) (*Table, error) {
	t := &Table{}
	row, err := first, error(nil)
	for {
		if err == nil && len(row) == 3 {
			m := Measurement{Tool: row[0], Log: row[1]}
			if m.TimeSeconds, err = field(row, 2); err == nil {
				if rec, err := normalize(m, sizes); err == nil {
					t.Records = append(t.Records, rec)
				}
			}
		}
		row, err = cr.Read()
		if err == io.EOF {
			break
		}
		// A csv-level error (e.g. a stray quote) skips that row
		// like any other malformed row.
	}
	sortRecords(t.Records)
	return t, nil
}

func field(row []string, col int) (float64, error) {
	if col >= len(row) {
		return 0, fmt.Errorf("missing field %d", col+1)
	}
	return strconv.ParseFloat(row[col], 64)
}

// normalize resolves m's log name against sizes.
func normalize(m Measurement, sizes *SizeTable) (Record, error) {
	tok, err := SizeToken(m.Log)
	if err != nil {
		return Record{}, err
	}
	lines, ok := sizes.Lines(tok)
	if !ok {
		return Record{}, fmt.Errorf("%w: %q in log %q", ErrUnknownBucket, tok, m.Log)
	}
	return Record{Measurement: m, SizeLabel: tok, SizeLines: lines}, nil
}

// sortRecords orders records by tool and then by size. Scaling
// analysis iterates adjacent records of a tool and depends on this
// order.
func sortRecords(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Tool != recs[j].Tool {
			return recs[i].Tool < recs[j].Tool
		}
		return recs[i].SizeLines < recs[j].SizeLines
	})
}
