// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benchreport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o666))
	return path
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, `
input: results.csv
reference: toolB
database:
  driver: sqlite3
  dsn: bench.db
`))
	require.NoError(t, err)

	require.Equal(t, "results.csv", c.Input)
	require.Equal(t, "toolB", c.Reference)
	require.Equal(t, "benchmark_data/reports", c.OutputDir, "unset fields keep their defaults")
	require.NotNil(t, c.Database)
	require.Equal(t, "sqlite3", c.Database.Driver)

	sizes, err := c.Sizes()
	require.NoError(t, err)
	require.Equal(t, []string{"10k", "100k", "1m"}, sizes.Labels())
}

func TestLoadConfigBucketOverride(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, `
buckets:
  - label: 1k
    lines: 1000
  - label: 50k
    lines: 50000
`))
	require.NoError(t, err)

	sizes, err := c.Sizes()
	require.NoError(t, err)
	require.Equal(t, []string{"1k", "50k"}, sizes.Labels())
	lines, ok := sizes.Lines("50k")
	require.True(t, ok)
	require.Equal(t, 50000, lines)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "inptu: results.csv\n"))
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nosuch.yaml"))
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.Equal(t, "timber", c.Reference)
	require.True(t, c.Charts)
	require.Nil(t, c.Database)
}
