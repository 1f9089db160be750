// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/safehtml/template"
)

// The HTML report is one self-contained page: rankings per size,
// scaling factors, and the reference comparison. It duplicates the
// CSV artifacts for humans; machines should keep reading the CSVs.
var htmlTemplate = template.Must(template.New("report").ParseFromTrustedTemplate(
	template.MakeTrustedTemplate(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Benchmark Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: right; }
th:first-child, td:first-child { text-align: left; }
caption { font-weight: bold; text-align: left; padding: 0.5em 0; }
</style>
</head>
<body>
<h1>Benchmark Report</h1>
<p>Reference tool: {{.Reference}}</p>

{{range .Rankings}}
<table>
<caption>Rankings for {{.Size}} lines</caption>
<tr><th>tool</th><th>time (s)</th>{{if $.HasMemory}}<th>memory (MB)</th>{{end}}<th>time rank</th>{{if $.HasMemory}}<th>memory rank</th>{{end}}<th>combined</th></tr>
{{range .Rows}}<tr><td>{{.Tool}}</td><td>{{.Time}}</td>{{if $.HasMemory}}<td>{{.Memory}}</td>{{end}}<td>{{.TimeRank}}</td>{{if $.HasMemory}}<td>{{.MemoryRank}}</td>{{end}}<td>{{.Combined}}</td></tr>
{{end}}</table>
{{end}}

{{if .Scaling}}
<table>
<caption>Scaling factors (1.0 = linear)</caption>
<tr><th>tool</th><th>transition</th><th>time increase</th><th>factor</th></tr>
{{range .Scaling}}<tr><td>{{.Tool}}</td><td>{{.Transition}}</td><td>{{.TimeRatio}}</td><td>{{.Factor}}</td></tr>
{{end}}</table>
{{end}}

{{if .Compare}}
<table>
<caption>Comparison against {{.Reference}}</caption>
<tr><th>size</th><th>tool</th><th>speed</th>{{if .HasMemory}}<th>memory</th>{{end}}</tr>
{{range .Compare}}<tr><td>{{.Size}}</td><td>{{.Tool}}</td><td>{{.Time}}</td>{{if $.HasMemory}}<td>{{.Memory}}</td>{{end}}</tr>
{{end}}</table>
{{end}}

{{if .Throughput}}
<table>
<caption>{{.Reference}} throughput</caption>
<tr><th>size</th><th>time (s)</th><th>lines/second</th>{{if .HasMemory}}<th>lines/MB</th>{{end}}</tr>
{{range .Throughput}}<tr><td>{{.Size}}</td><td>{{.Time}}</td><td>{{.LinesPerSecond}}</td>{{if $.HasMemory}}<td>{{.LinesPerMB}}</td>{{end}}</tr>
{{end}}</table>
{{end}}

</body>
</html>
`)))

type htmlData struct {
	Reference  string
	HasMemory  bool
	Rankings   []htmlRanking
	Scaling    []htmlScalingRow
	Compare    []htmlCompareRow
	Throughput []htmlThroughputRow
}

type htmlRanking struct {
	Size string
	Rows []htmlRankRow
}

type htmlRankRow struct {
	Tool, Time, Memory, TimeRank, MemoryRank, Combined string
}

type htmlScalingRow struct {
	Tool, Transition, TimeRatio, Factor string
}

type htmlCompareRow struct {
	Size, Tool, Time, Memory string
}

type htmlThroughputRow struct {
	Size, Time, LinesPerSecond, LinesPerMB string
}

// WriteHTML renders the report as a single HTML page.
func (r *Report) WriteHTML(w io.Writer) error {
	d := htmlData{Reference: r.Reference, HasMemory: r.Table.HasMemory}

	for _, label := range r.Sizes.Labels() {
		entries := r.RankingsFor(label)
		if len(entries) == 0 {
			continue
		}
		hr := htmlRanking{Size: label}
		for _, e := range entries {
			hr.Rows = append(hr.Rows, htmlRankRow{
				Tool:       e.Tool,
				Time:       fmt.Sprintf("%.3f", e.TimeSeconds),
				Memory:     fmt.Sprintf("%.2f", e.MemoryMB),
				TimeRank:   fmt.Sprintf("%.1f", e.TimeRank),
				MemoryRank: fmt.Sprintf("%.1f", e.MemoryRank),
				Combined:   fmt.Sprintf("%.1f", e.Combined),
			})
		}
		d.Rankings = append(d.Rankings, hr)
	}

	for _, e := range r.Scaling {
		d.Scaling = append(d.Scaling, htmlScalingRow{
			Tool:       e.Tool,
			Transition: e.Transition(),
			TimeRatio:  fmt.Sprintf("%.2fx", e.TimeRatio),
			Factor:     fmt.Sprintf("%.3f", e.Factor),
		})
	}
	for _, s := range r.ScalingSummary {
		d.Scaling = append(d.Scaling, htmlScalingRow{
			Tool: s.Tool, Transition: "geomean", Factor: fmt.Sprintf("%.3f", s.Factor),
		})
	}

	for _, e := range r.Compare {
		d.Compare = append(d.Compare, htmlCompareRow{
			Size: e.Size, Tool: e.Tool,
			Time:   e.TimeComparison,
			Memory: e.MemoryComparison,
		})
	}

	for _, e := range r.Throughput {
		d.Throughput = append(d.Throughput, htmlThroughputRow{
			Size:           e.Size,
			Time:           fmt.Sprintf("%.3f", e.TimeSeconds),
			LinesPerSecond: fmt.Sprintf("%.0f", e.LinesPerSecond),
			LinesPerMB:     fmt.Sprintf("%.0f", e.LinesPerMB),
		})
	}

	return htmlTemplate.Execute(w, d)
}

// WriteHTMLFile writes the HTML report to dir/report.html.
func (r *Report) WriteHTMLFile(dir string) error {
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, "report.html"))
	if err != nil {
		return err
	}
	if err := r.WriteHTML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
