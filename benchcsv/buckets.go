// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"
	"strings"
)

// A Bucket is one size class: a label as it appears in log names and
// the number of log lines it stands for.
type Bucket struct {
	Label string `json:"label"`
	Lines int    `json:"lines"`
}

// A SizeTable is the ordered set of size buckets a benchmark run can
// use. The table's order, not lexical order, is the display and sort
// order of every derived table ("10k" sorts before "100k").
//
// The table must be total over the inputs it is used with: a label
// that is not in the table is an error, never a silent default.
type SizeTable struct {
	buckets []Bucket
	index   map[string]int
}

// NewSizeTable builds a SizeTable from buckets, which must be given
// in ascending size order with positive line counts and distinct
// labels.
func NewSizeTable(buckets ...Bucket) (*SizeTable, error) {
	if len(buckets) == 0 {
		return nil, fmt.Errorf("size table must have at least one bucket")
	}
	t := &SizeTable{index: make(map[string]int)}
	prev := 0
	for _, b := range buckets {
		if b.Label == "" {
			return nil, fmt.Errorf("size bucket with %d lines has an empty label", b.Lines)
		}
		if b.Lines <= prev {
			return nil, fmt.Errorf("size bucket %q (%d lines) is not in ascending order", b.Label, b.Lines)
		}
		if _, ok := t.index[b.Label]; ok {
			return nil, fmt.Errorf("duplicate size bucket %q", b.Label)
		}
		t.index[b.Label] = len(t.buckets)
		t.buckets = append(t.buckets, b)
		prev = b.Lines
	}
	return t, nil
}

// DefaultSizes returns the bucket table used by the standard timber
// benchmark logs: 10k, 100k and 1m lines.
func DefaultSizes() *SizeTable {
	t, err := NewSizeTable(
		Bucket{"10k", 10_000},
		Bucket{"100k", 100_000},
		Bucket{"1m", 1_000_000},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Lines returns the line count for label.
func (t *SizeTable) Lines(label string) (int, bool) {
	i, ok := t.index[label]
	if !ok {
		return 0, false
	}
	return t.buckets[i].Lines, true
}

// Index returns label's position in the table order.
func (t *SizeTable) Index(label string) (int, bool) {
	i, ok := t.index[label]
	return i, ok
}

// Labels returns the labels in table order.
func (t *SizeTable) Labels() []string {
	labels := make([]string, len(t.buckets))
	for i, b := range t.buckets {
		labels[i] = b.Label
	}
	return labels
}

// SizeToken extracts the size label from a log name: the log name is
// split on "_", the second segment is taken, and anything from the
// first "." on is dropped. "app_100k.json" yields "100k".
func SizeToken(log string) (string, error) {
	parts := strings.Split(log, "_")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedLog, log)
	}
	tok, _, _ := strings.Cut(parts[1], ".")
	return tok, nil
}
