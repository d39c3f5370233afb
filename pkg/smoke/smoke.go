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

// Package smoke probes the bookstore service before a run commits to it.
// Each collection is checked for reachability and then listed once, so a
// dead environment is reported in seconds rather than as a wall of failed
// tests.
package smoke

import (
	"context"
	"time"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/bookstore"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/faults"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/report"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/validate"
)

// API is the slice of a resource client the probe drives.
type API interface {
	IsReachable(ctx context.Context) bool
	List(ctx context.Context) (*bookstore.Response, error)
}

var (
	_ API = &bookstore.BooksClient{}
	_ API = &bookstore.AuthorsClient{}
)

// Result of probing one collection.
type Result struct {
	Name      string
	Reachable bool
	Status    int
	Entries   int
	Duration  time.Duration
	Err       error
}

// Runner probes both bookstore collections. The reporter is optional; when
// present each probe becomes an entry in the run's report.
type Runner struct {
	books    API
	authors  API
	reporter *report.Reporter
}

func NewRunner(books, authors API, reporter *report.Reporter) *Runner {
	return &Runner{
		books:    books,
		authors:  authors,
		reporter: reporter,
	}
}

// Run probes the Books and Authors collections in order and returns one
// result per collection. Probe failures land in the results, never as a
// returned error.
func (r *Runner) Run(ctx context.Context) []Result {
	return []Result{
		r.probe(ctx, "Books", r.books),
		r.probe(ctx, "Authors", r.authors),
	}
}

func (r *Runner) probe(ctx context.Context, name string, client API) Result {
	result := Result{Name: name}

	var entry *report.TestReport

	if r.reporter != nil {
		entry = r.reporter.StartTest(name+" reachability", "pre-flight probe of the "+name+" collection")
		entry.AssignCategory("Smoke")
	}

	// Bind the entry so anything downstream can log to it.
	ctx = report.WithCurrent(ctx, entry)

	entry.Info("probing the %s collection", name)

	if !client.IsReachable(ctx) {
		result.Err = faults.NewTypedError(faults.ReachabilityError, "Smoke",
			name+" collection is not reachable", nil)

		entry.Warn("%s collection is not reachable", name)
		entry.Complete(report.StatusFailed)

		return result
	}

	result.Reachable = true

	resp, err := client.List(ctx)
	if err != nil {
		result.Err = err

		entry.Fail("listing %s: %v", name, err)
		entry.Complete(report.StatusFailed)

		return result
	}

	result.Status = resp.StatusCode
	result.Duration = resp.Duration

	if err := validate.Successful(resp); err != nil {
		result.Err = err

		entry.Fail("listing %s: %v", name, err)
		entry.Complete(report.StatusFailed)

		return result
	}

	var elements []any
	if err := resp.JSON(&elements); err == nil {
		result.Entries = len(elements)
	}

	entry.Pass("%s answered %d with %d entries in %s", name, resp.StatusCode, result.Entries, resp.Duration)
	entry.Complete(report.StatusPassed)

	return result
}

// Healthy reports whether every probe succeeded.
func Healthy(results []Result) bool {
	for _, result := range results {
		if !result.Reachable || result.Err != nil {
			return false
		}
	}

	return true
}
