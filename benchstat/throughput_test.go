// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThroughput(t *testing.T) {
	entries, err := Throughput(loadTable(t, specInput), "timber")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// 10k lines in 1s using 50MB.
	require.Equal(t, ThroughputEntry{
		Size: "10k", TimeSeconds: 1.0, MemoryMB: 50.0,
		LinesPerSecond: 10000, LinesPerMB: 200,
	}, entries[0])

	// 100k lines in 9s using 90MB.
	require.Equal(t, "100k", entries[1].Size)
	require.InDelta(t, 100000.0/9.0, entries[1].LinesPerSecond, 1e-9)
	require.InDelta(t, 100000.0/90.0, entries[1].LinesPerMB, 1e-9)
}

func TestThroughputUnknownTool(t *testing.T) {
	_, err := Throughput(loadTable(t, specInput), "nosuch")
	require.ErrorIs(t, err, ErrNoReference)
}

func TestThroughputZeroGuards(t *testing.T) {
	entries, err := Throughput(loadTable(t, `tool,log,time_seconds,memory_mb
timber,x_10k.json,0.0,0.0
`), "timber")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Zero(t, entries[0].LinesPerSecond)
	require.Zero(t, entries[0].LinesPerMB)
}

func TestThroughputWithoutMemory(t *testing.T) {
	entries, err := Throughput(loadTable(t, "timber,x_10k.json,2.0\n"), "timber")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 5000.0, entries[0].LinesPerSecond)
	require.Zero(t, entries[0].LinesPerMB)
}
