// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/timber-tools/benchreport/benchcsv"
)

// A Config collects everything a report run needs. Each stage takes
// its inputs explicitly from here; there is no process-wide state.
type Config struct {
	// Input is the measurement CSV to analyze.
	Input string `json:"input"`

	// OutputDir receives the CSV artifacts, the HTML report and
	// the charts.
	OutputDir string `json:"outputDir"`

	// Reference is the tool comparative ratios are expressed
	// against.
	Reference string `json:"reference"`

	// Buckets overrides the built-in size table. Buckets must be
	// listed in ascending size order and cover every size label
	// the input uses.
	Buckets []benchcsv.Bucket `json:"buckets,omitempty"`

	// Charts disables PNG rendering when false.
	Charts bool `json:"charts"`

	// Database, when set, records each run in a SQL results
	// database.
	Database *DBConfig `json:"database,omitempty"`
}

// A DBConfig names a database/sql driver and DSN. sqlite3 and mysql
// are supported.
type DBConfig struct {
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

// DefaultConfig returns the configuration the benchmark harness has
// always used: results and reports under benchmark_data/, timber as
// the reference tool.
func DefaultConfig() *Config {
	return &Config{
		Input:     "benchmark_data/benchmark_results.csv",
		OutputDir: "benchmark_data/reports",
		Reference: "timber",
		Charts:    true,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report config: %w", err)
	}
	c := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, fmt.Errorf("report config %s: %v", path, err)
	}
	return c, nil
}

// Sizes returns the bucket table the config selects: the built-in
// table unless Buckets overrides it.
func (c *Config) Sizes() (*benchcsv.SizeTable, error) {
	if len(c.Buckets) == 0 {
		return benchcsv.DefaultSizes(), nil
	}
	return benchcsv.NewSizeTable(c.Buckets...)
}
