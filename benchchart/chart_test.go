// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timber-tools/benchreport/benchcsv"
	"github.com/timber-tools/benchreport/benchstat"
)

func loadTable(t *testing.T, csv string) *benchcsv.Table {
	t.Helper()
	table, err := benchcsv.Read(strings.NewReader(csv), "test.csv", benchcsv.DefaultSizes())
	require.NoError(t, err)
	return table
}

const chartInput = `tool,log,time_seconds,memory_mb
timber,x_10k.json,1.0,50.0
toolB,x_10k.json,2.0,80.0
timber,x_100k.json,9.0,90.0
toolB,x_100k.json,20.0,160.0
`

func requirePNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(data) > 8, "file too short to be a PNG")
	require.Equal(t, "\x89PNG", string(data[:4]))
}

func TestBars(t *testing.T) {
	pv, err := benchstat.NewPivot(loadTable(t, chartInput), benchstat.Time, benchcsv.DefaultSizes())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "time.png")
	require.NoError(t, Bars(pv, "Processing Time by Tool and File Size", "time (s)", path))
	requirePNG(t, path)
}

func TestBarsEmptyPivot(t *testing.T) {
	err := Bars(&benchstat.Pivot{}, "empty", "y", filepath.Join(t.TempDir(), "empty.png"))
	require.Error(t, err)
}

func TestScalingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaling.png")
	require.NoError(t, ScalingLines(loadTable(t, chartInput), benchcsv.DefaultSizes(), path))
	requirePNG(t, path)
}

func TestScalingLinesNoDrawablePoints(t *testing.T) {
	// Zero times cannot be placed on a log axis; with nothing left
	// to draw the chart fails instead of writing an empty plot.
	err := ScalingLines(loadTable(t, `tool,log,time_seconds,memory_mb
timber,x_10k.json,0.0,50.0
`), benchcsv.DefaultSizes(), filepath.Join(t.TempDir(), "scaling.png"))
	require.Error(t, err)
}
