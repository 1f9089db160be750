// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage records benchmark runs in a SQL database, so that
// rankings can be tracked across harness invocations. It is an
// optional sink; the CSV artifacts do not depend on it.
package storage

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/timber-tools/benchreport/benchcsv"
	"github.com/timber-tools/benchreport/benchstat"
)

// DB is a handle to a results database. It is safe for concurrent
// use by multiple goroutines.
type DB struct {
	sql *sql.DB

	insertRun         *sql.Stmt
	insertMeasurement *sql.Stmt
	insertRanking     *sql.Stmt
}

// OpenSQL opens a results database. The parameters are the same as
// for sql.Open. Only sqlite3 and mysql are explicitly supported;
// other engines receive MySQL syntax, which may or may not work.
// The schema is created if missing.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(driverName); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// createTmpl is the template for the schema CREATE statements. It is
// evaluated with . as a map containing one entry whose key is the
// driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	StartedAt VARCHAR(64)
);
CREATE TABLE IF NOT EXISTS Measurements (
	RunID BIGINT UNSIGNED,
	Tool VARCHAR(255),
	Size VARCHAR(64),
	Lines BIGINT,
	TimeSeconds DOUBLE,
	MemoryMB DOUBLE,
	PRIMARY KEY (RunID, Tool, Size)
);
CREATE TABLE IF NOT EXISTS Rankings (
	RunID BIGINT UNSIGNED,
	Size VARCHAR(64),
	Tool VARCHAR(255),
	TimeRank DOUBLE,
	MemoryRank DOUBLE,
	Combined DOUBLE,
	PRIMARY KEY (RunID, Size, Tool)
);
`))

func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

func (db *DB) prepareStatements(driverName string) error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs (StartedAt) VALUES (?)")
	if err != nil {
		return err
	}
	db.insertMeasurement, err = db.sql.Prepare(
		"INSERT INTO Measurements (RunID, Tool, Size, Lines, TimeSeconds, MemoryMB) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertRanking, err = db.sql.Prepare(
		"INSERT INTO Rankings (RunID, Size, Tool, TimeRank, MemoryRank, Combined) VALUES (?, ?, ?, ?, ?, ?)")
	return err
}

// RecordRun stores one run's raw measurements and ranking rows in a
// single transaction and returns the new run ID.
func (db *DB) RecordRun(t *benchcsv.Table, ranks []benchstat.RankEntry) (int64, error) {
	tx, err := db.sql.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Stmt(db.insertRun).Exec(time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range t.Records {
		_, err := tx.Stmt(db.insertMeasurement).Exec(runID, r.Tool, r.SizeLabel, r.SizeLines, r.TimeSeconds, r.MemoryMB)
		if err != nil {
			return 0, fmt.Errorf("insert measurement %s/%s: %v", r.Tool, r.SizeLabel, err)
		}
	}
	for _, e := range ranks {
		_, err := tx.Stmt(db.insertRanking).Exec(runID, e.Size, e.Tool, e.TimeRank, e.MemoryRank, e.Combined)
		if err != nil {
			return 0, fmt.Errorf("insert ranking %s/%s: %v", e.Tool, e.Size, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// LatestRun returns the highest run ID, or 0 if the database is
// empty.
func (db *DB) LatestRun() (int64, error) {
	var id sql.NullInt64
	if err := db.sql.QueryRow("SELECT MAX(RunID) FROM Runs").Scan(&id); err != nil {
		return 0, err
	}
	return id.Int64, nil
}

// Rankings returns the ranking rows recorded for runID, ordered by
// size label and combined score.
func (db *DB) Rankings(runID int64) ([]benchstat.RankEntry, error) {
	rows, err := db.sql.Query(
		"SELECT Size, Tool, TimeRank, MemoryRank, Combined FROM Rankings WHERE RunID = ? ORDER BY Size, Combined, Tool", runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []benchstat.RankEntry
	for rows.Next() {
		var e benchstat.RankEntry
		if err := rows.Scan(&e.Size, &e.Tool, &e.TimeRank, &e.MemoryRank, &e.Combined); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.sql.Close()
}
