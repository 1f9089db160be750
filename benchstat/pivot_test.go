// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timber-tools/benchreport/benchcsv"
)

func TestPivot(t *testing.T) {
	table := loadTable(t, specInput)
	sizes := benchcsv.DefaultSizes()

	p, err := NewPivot(table, Time, sizes)
	require.NoError(t, err)

	require.Equal(t, []string{"10k", "100k"}, p.Rows, "bucket order, 1m omitted")
	require.Equal(t, []string{"timber", "toolB"}, p.Cols)

	v, ok := p.Value("10k", "toolB")
	require.True(t, ok)
	require.Equal(t, 2.0, v)

	// No measurement for toolB at 100k: the cell is absent, not
	// zero.
	_, ok = p.Value("100k", "toolB")
	require.False(t, ok)

	m, err := NewPivot(table, Memory, sizes)
	require.NoError(t, err)
	v, ok = m.Value("10k", "timber")
	require.True(t, ok)
	require.Equal(t, 50.0, v)
}

func TestPivotDuplicateKey(t *testing.T) {
	table := loadTable(t, `tool,log,time_seconds,memory_mb
timber,x_10k.json,1.0,50.0
timber,y_10k.json,1.5,55.0
`)
	_, err := NewPivot(table, Time, benchcsv.DefaultSizes())

	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "timber", dup.Tool)
	require.Equal(t, "10k", dup.Size)
}

func TestPivotNoMemory(t *testing.T) {
	table := loadTable(t, "timber,x_10k.json,1.0\n")
	require.False(t, table.HasMemory)

	_, err := NewPivot(table, Memory, benchcsv.DefaultSizes())
	require.ErrorIs(t, err, ErrNoMemory)

	// The time pivot over the same table is fine.
	_, err = NewPivot(table, Time, benchcsv.DefaultSizes())
	require.NoError(t, err)
}
