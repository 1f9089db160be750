// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timber-tools/benchreport/benchcsv"
)

func TestWriteText(t *testing.T) {
	r := Build(loadTable(t, fullInput), benchcsv.DefaultSizes(), "timber")

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()

	require.Contains(t, out, "Scaling Analysis")
	require.Contains(t, out, "Tool Rankings for 10k lines:")
	require.Contains(t, out, "Tool Rankings for 1m lines:")
	require.Contains(t, out, "timber Performance Analysis:")
	require.Contains(t, out, "Comparative Analysis (timber vs. other tools):")
	require.Contains(t, out, "timber is 2.00x slower")
	require.Contains(t, out, "geomean")
}

func TestWriteTextWithoutMemory(t *testing.T) {
	r := Build(loadTable(t, "timber,x_10k.json,1.0\ntoolB,x_10k.json,2.0\n"), benchcsv.DefaultSizes(), "timber")

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	require.NotContains(t, buf.String(), "memory")
	require.Contains(t, buf.String(), "time rank")
}
