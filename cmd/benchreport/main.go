// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchreport derives comparison reports from timber benchmark
// results.
//
// Usage:
//
//	benchreport [-config file] [-input file] [-output dir] [-reference tool] [options]
//
// The input is the measurement CSV written by the benchmark harness,
// either with a header row (tool, log, time_seconds, memory_mb) or
// the headerless three-column variant without memory. Benchreport
// writes one CSV artifact per derived table under the output
// directory, plus an HTML summary and PNG charts, and prints the
// tables to stdout.
//
// Analysis stages are independent: a failure in one stage is
// reported and the remaining stages still run and are persisted.
// Chart rendering runs last, so report data survives a rendering
// failure.
//
// With -db-driver and -db, each run's measurements and rankings are
// also recorded in a SQL results database (sqlite3 or mysql).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/timber-tools/benchreport/benchcsv"
	"github.com/timber-tools/benchreport/report"
	"github.com/timber-tools/benchreport/storage"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchreport [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagConfig    = flag.String("config", "", "read run configuration from YAML `file`; flags set explicitly override it")
	flagInput     = flag.String("input", "", "measurement CSV `file`")
	flagOutput    = flag.String("output", "", "`dir` for CSV artifacts, HTML report and charts")
	flagReference = flag.String("reference", "", "`tool` comparative ratios are expressed against")
	flagCharts    = flag.Bool("charts", true, "render PNG charts")
	flagHTML      = flag.Bool("html", true, "write the HTML report")
	flagText      = flag.Bool("text", true, "print the derived tables to stdout")
	flagDBDriver  = flag.String("db-driver", "sqlite3", "results database `driver`: sqlite3 or mysql")
	flagDBDSN     = flag.String("db", "", "record the run in the results database at `dsn`")
)

func main() {
	log.SetPrefix("benchreport: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
	}

	cfg := report.DefaultConfig()
	if *flagConfig != "" {
		var err error
		if cfg, err = report.LoadConfig(*flagConfig); err != nil {
			log.Fatal(err)
		}
	}
	applyFlags(cfg)

	sizes, err := cfg.Sizes()
	if err != nil {
		log.Fatal(err)
	}
	table, err := benchcsv.ReadFile(cfg.Input, sizes)
	if err != nil {
		log.Fatal(err)
	}
	if len(table.Records) == 0 {
		log.Fatalf("%s: no usable measurements", cfg.Input)
	}

	r := report.Build(table, sizes, cfg.Reference)
	failed := false
	for _, err := range r.Errs {
		if report.Skipped(err) {
			log.Printf("skipping %v", err)
			continue
		}
		log.Print(err)
		failed = true
	}

	if err := r.WriteFiles(cfg.OutputDir); err != nil {
		log.Fatal(err)
	}
	if *flagHTML {
		if err := r.WriteHTMLFile(cfg.OutputDir); err != nil {
			log.Fatal(err)
		}
	}
	if cfg.Charts {
		// Rendering failures lose only the images; the tables
		// are already on disk.
		if err := r.RenderCharts(cfg.OutputDir); err != nil {
			log.Printf("charts: %v", err)
		}
	}

	if cfg.Database != nil {
		db, err := storage.OpenSQL(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			log.Fatal(err)
		}
		runID, err := db.RecordRun(table, r.Rankings)
		db.Close()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("recorded run %d in %s database", runID, cfg.Database.Driver)
	}

	if *flagText {
		if err := r.WriteText(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("reports saved to %s", cfg.OutputDir)
	if failed {
		os.Exit(1)
	}
}

// applyFlags overrides cfg with any flag the user set explicitly.
func applyFlags(cfg *report.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *flagInput
		case "output":
			cfg.OutputDir = *flagOutput
		case "reference":
			cfg.Reference = *flagReference
		case "charts":
			cfg.Charts = *flagCharts
		case "db":
			cfg.Database = &report.DBConfig{Driver: *flagDBDriver, DSN: *flagDBDSN}
		}
	})
}
