/*
Copyright 2025-2026 the Bookstore QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package report

import (
	"html/template"
	"strings"
)

// StatusClass is the CSS class for the test's status row.
func (t *TestReport) StatusClass() string {
	if t == nil || t.Status == "" {
		return "skipped"
	}

	return strings.ToLower(string(t.Status))
}

// LevelClass is the CSS class for a step's level cell.
func (s Step) LevelClass() string {
	return strings.ToLower(string(s.Level))
}

//nolint:gochecknoglobals
var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Bookstore API Test Report</title>
<style>
body { font-family: "Segoe UI", Helvetica, Arial, sans-serif; margin: 0; background: #f4f5f7; color: #172b4d; }
header { background: #172b4d; color: #fff; padding: 24px 32px; }
header h1 { margin: 0 0 4px 0; font-size: 22px; }
header p { margin: 0; color: #b3bac5; font-size: 13px; }
.meta, .summary { margin: 24px 32px; background: #fff; border-radius: 6px; padding: 16px 24px; box-shadow: 0 1px 2px rgba(9,30,66,.15); }
.meta table { border-collapse: collapse; font-size: 13px; }
.meta td { padding: 4px 16px 4px 0; }
.meta td:first-child { color: #6b778c; }
.summary span { display: inline-block; margin-right: 24px; font-size: 14px; }
.summary .count { font-weight: 700; font-size: 20px; margin-right: 6px; }
.passed-count { color: #36b37e; }
.failed-count { color: #de350b; }
.skipped-count { color: #ffab00; }
.test { margin: 16px 32px; background: #fff; border-radius: 6px; box-shadow: 0 1px 2px rgba(9,30,66,.15); overflow: hidden; }
.test-header { padding: 12px 24px; border-left: 6px solid #b3bac5; }
.test-header.passed { border-left-color: #36b37e; }
.test-header.failed { border-left-color: #de350b; }
.test-header.skipped { border-left-color: #ffab00; }
.test-header h2 { margin: 0; font-size: 16px; }
.test-header p { margin: 4px 0 0 0; font-size: 13px; color: #6b778c; }
.badge { float: right; font-size: 12px; font-weight: 700; padding: 2px 10px; border-radius: 10px; color: #fff; background: #b3bac5; }
.badge.passed { background: #36b37e; }
.badge.failed { background: #de350b; }
.badge.skipped { background: #ffab00; }
.steps { width: 100%; border-collapse: collapse; font-size: 13px; }
.steps td { padding: 6px 24px; border-top: 1px solid #ebecf0; vertical-align: top; }
.steps td.when { white-space: nowrap; color: #6b778c; width: 1%; }
.steps td.level { width: 1%; font-weight: 700; }
.steps td.level.pass { color: #36b37e; }
.steps td.level.fail { color: #de350b; }
.steps td.level.warning { color: #ffab00; }
.steps td.level.info { color: #6b778c; }
.steps td.level.skip { color: #ffab00; }
</style>
</head>
<body>
<header>
<h1>Bookstore API Automation Test Results</h1>
<p>Run {{.RunID}} &middot; {{.StartedAt.Format "Jan 02, 2006 15:04:05"}} &ndash; {{.FinishedAt.Format "15:04:05"}}</p>
</header>
<div class="meta">
<table>
<tr><td>Framework</td><td>{{.Framework}}</td></tr>
<tr><td>API Under Test</td><td>{{.APIUnderTest}}</td></tr>
<tr><td>Base URL</td><td>{{.BaseURL}}</td></tr>
<tr><td>Environment</td><td>{{.Environment}}</td></tr>
<tr><td>Go Version</td><td>{{.GoVersion}}</td></tr>
<tr><td>OS</td><td>{{.OS}}</td></tr>
</table>
</div>
<div class="summary">
<span><span class="count passed-count">{{.Passed}}</span>passed</span>
<span><span class="count failed-count">{{.Failed}}</span>failed</span>
<span><span class="count skipped-count">{{.Skipped}}</span>skipped</span>
</div>
{{range .Tests}}
<div class="test">
<div class="test-header {{.StatusClass}}">
<span class="badge {{.StatusClass}}">{{if .Status}}{{.Status}}{{else}}Skipped{{end}}</span>
<h2>{{.Name}}</h2>
<p>{{.Description}}{{if .Category}} &middot; {{.Category}}{{end}}{{if .Duration}} &middot; {{.Duration}}{{end}}</p>
</div>
<table class="steps">
{{range .Steps}}
<tr>
<td class="when">{{.Time.Format "15:04:05.000"}}</td>
<td class="level {{.LevelClass}}">{{.Level}}</td>
<td>{{.Message}}</td>
</tr>
{{end}}
</table>
</div>
{{end}}
</body>
</html>
`
