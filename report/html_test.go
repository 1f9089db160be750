// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timber-tools/benchreport/benchcsv"
)

func TestWriteHTML(t *testing.T) {
	r := Build(loadTable(t, fullInput), benchcsv.DefaultSizes(), "timber")

	var buf bytes.Buffer
	require.NoError(t, r.WriteHTML(&buf))
	html := buf.String()

	require.Contains(t, html, "<title>Benchmark Report</title>")
	require.Contains(t, html, "Reference tool: timber")
	require.Contains(t, html, "Rankings for 10k lines")
	require.Contains(t, html, "Rankings for 1m lines")
	require.Contains(t, html, "10k → 100k")
	require.Contains(t, html, "geomean")
	require.Contains(t, html, "timber is 2.00x slower")
	require.Contains(t, html, "memory (MB)")
}

func TestWriteHTMLWithoutMemory(t *testing.T) {
	r := Build(loadTable(t, "timber,x_10k.json,1.0\ntoolB,x_10k.json,2.0\n"), benchcsv.DefaultSizes(), "timber")

	var buf bytes.Buffer
	require.NoError(t, r.WriteHTML(&buf))
	require.NotContains(t, buf.String(), "memory (MB)")
	require.Contains(t, buf.String(), "time rank")
}

func TestWriteHTMLEscapesToolNames(t *testing.T) {
	r := Build(loadTable(t, `tool,log,time_seconds,memory_mb
timber,x_10k.json,1.0,50.0
<b>bold</b>,x_10k.json,2.0,80.0
`), benchcsv.DefaultSizes(), "timber")

	var buf bytes.Buffer
	require.NoError(t, r.WriteHTML(&buf))
	require.NotContains(t, buf.String(), "<b>bold</b>")
	require.Contains(t, buf.String(), "&lt;b&gt;bold&lt;/b&gt;")
}

func TestWriteHTMLFile(t *testing.T) {
	dir := t.TempDir()
	r := Build(loadTable(t, fullInput), benchcsv.DefaultSizes(), "timber")
	require.NoError(t, r.WriteHTMLFile(dir))

	data, err := os.ReadFile(filepath.Join(dir, "report.html"))
	require.NoError(t, err)
	require.Contains(t, string(data), "<h1>Benchmark Report</h1>")
}
