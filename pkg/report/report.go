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

// Package report collects per-test step logs and renders one standalone
// HTML artifact per run. Logging methods are nil-safe, so callers can log
// through an unbound handle without guarding, and the artifact is written
// only on the final flush.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/config"
)

// Status of a finished test.
type Status string

const (
	StatusPassed  Status = "Passed"
	StatusFailed  Status = "Failed"
	StatusSkipped Status = "Skipped"
)

// Level of one logged step.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelPass    Level = "PASS"
	LevelFail    Level = "FAIL"
	LevelWarning Level = "WARNING"
	LevelSkip    Level = "SKIP"
)

// Step is a single timestamped log line within a test.
type Step struct {
	Time    time.Time
	Level   Level
	Message string
}

// TestReport accumulates the steps of one test. A nil receiver is valid on
// every method and does nothing, mirroring how logging must never be the
// thing that fails a test.
type TestReport struct {
	mu sync.Mutex

	Name        string
	Description string
	Category    string
	StartedAt   time.Time
	FinishedAt  time.Time
	Status      Status
	Steps       []Step
}

func (t *TestReport) log(level Level, format string, args ...any) {
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.Steps = append(t.Steps, Step{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

func (t *TestReport) Info(format string, args ...any) {
	t.log(LevelInfo, format, args...)
}

func (t *TestReport) Pass(format string, args ...any) {
	t.log(LevelPass, format, args...)
}

func (t *TestReport) Fail(format string, args ...any) {
	t.log(LevelFail, format, args...)
}

func (t *TestReport) Warn(format string, args ...any) {
	t.log(LevelWarning, format, args...)
}

func (t *TestReport) Skip(format string, args ...any) {
	t.log(LevelSkip, format, args...)
}

// AssignCategory tags the test with its owning group, typically the
// top-level suite description.
func (t *TestReport) AssignCategory(category string) {
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.Category = category
}

// Complete records the final status and stamps the finish time.
func (t *TestReport) Complete(status Status) {
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.Status = status
	t.FinishedAt = time.Now()
}

// Duration is zero until the test completes.
func (t *TestReport) Duration() time.Duration {
	if t == nil || t.FinishedAt.IsZero() {
		return 0
	}

	return t.FinishedAt.Sub(t.StartedAt)
}

// Reporter owns the test entries of one run and renders them on Flush.
type Reporter struct {
	mu sync.Mutex

	runID       string
	environment string
	baseURL     string
	outputDir   string
	startedAt   time.Time
	tests       []*TestReport
}

// New creates a reporter for one run, stamped with a fresh run id and the
// resolved environment.
func New(cfg *config.Config) *Reporter {
	return &Reporter{
		runID:       uuid.NewString(),
		environment: cfg.Environment,
		baseURL:     cfg.APIBaseURL(),
		outputDir:   cfg.ReportPath,
		startedAt:   time.Now(),
	}
}

// RunID identifies this run in the artifact header.
func (r *Reporter) RunID() string {
	return r.runID
}

// StartTest registers a new entry and returns its handle.
func (r *Reporter) StartTest(name, description string) *TestReport {
	entry := &TestReport{
		Name:        name,
		Description: description,
		StartedAt:   time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tests = append(r.tests, entry)

	return entry
}

// Flush renders the run into a timestamped HTML file under the configured
// report directory and returns the file's path.
func (r *Reporter) Flush() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	name := fmt.Sprintf("BookstoreAPI_TestReport_%s.html", time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(r.outputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}

	defer file.Close()

	if err := reportTemplate.Execute(file, r.view()); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}

	return path, nil
}

type runView struct {
	RunID        string
	Environment  string
	BaseURL      string
	Framework    string
	APIUnderTest string
	GoVersion    string
	OS           string
	StartedAt    time.Time
	FinishedAt   time.Time
	Passed       int
	Failed       int
	Skipped      int
	Tests        []*TestReport
}

func (r *Reporter) view() *runView {
	view := &runView{
		RunID:        r.runID,
		Environment:  r.environment,
		BaseURL:      r.baseURL,
		Framework:    "Go + Ginkgo + Gomega",
		APIUnderTest: "FakeRestAPI Bookstore",
		GoVersion:    runtime.Version(),
		OS:           runtime.GOOS,
		StartedAt:    r.startedAt,
		FinishedAt:   time.Now(),
		Tests:        r.tests,
	}

	for _, test := range r.tests {
		// A test that never completed was interrupted; count it as skipped.
		switch test.Status {
		case StatusPassed:
			view.Passed++
		case StatusFailed:
			view.Failed++
		case StatusSkipped:
			view.Skipped++
		default:
			view.Skipped++
		}
	}

	return view
}
