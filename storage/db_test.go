// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/timber-tools/benchreport/benchcsv"
	"github.com/timber-tools/benchreport/benchstat"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenSQL("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testTable(t *testing.T) *benchcsv.Table {
	t.Helper()
	table, err := benchcsv.Read(strings.NewReader(`tool,log,time_seconds,memory_mb
timber,x_10k.json,1.0,50.0
toolB,x_10k.json,2.0,80.0
timber,x_100k.json,9.0,90.0
`), "test.csv", benchcsv.DefaultSizes())
	require.NoError(t, err)
	return table
}

func TestRecordRun(t *testing.T) {
	db := openTestDB(t)
	table := testTable(t)
	ranks := benchstat.Rank(table, benchcsv.DefaultSizes())

	runID, err := db.RecordRun(table, ranks)
	require.NoError(t, err)
	require.Equal(t, int64(1), runID)

	latest, err := db.LatestRun()
	require.NoError(t, err)
	require.Equal(t, runID, latest)

	got, err := db.Rankings(runID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Ordered by size label, then combined score. "100k" sorts
	// before "10k" in SQL's lexical order.
	require.Equal(t, "100k", got[0].Size)
	require.Equal(t, "timber", got[1].Tool)
	require.Equal(t, 1.0, got[1].Combined)
	require.Equal(t, "toolB", got[2].Tool)
	require.Equal(t, 2.0, got[2].Combined)
}

func TestRecordRunAssignsDistinctIDs(t *testing.T) {
	db := openTestDB(t)
	table := testTable(t)
	ranks := benchstat.Rank(table, benchcsv.DefaultSizes())

	first, err := db.RecordRun(table, ranks)
	require.NoError(t, err)
	second, err := db.RecordRun(table, ranks)
	require.NoError(t, err)
	require.Greater(t, second, first)

	got, err := db.Rankings(second)
	require.NoError(t, err)
	require.Len(t, got, 3, "each run keeps its own ranking rows")
}

func TestLatestRunEmpty(t *testing.T) {
	db := openTestDB(t)
	id, err := db.LatestRun()
	require.NoError(t, err)
	require.Zero(t, id)
}

func TestRankingsUnknownRun(t *testing.T) {
	db := openTestDB(t)
	got, err := db.Rankings(42)
	require.NoError(t, err)
	require.Empty(t, got)
}
