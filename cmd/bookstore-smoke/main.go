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

// bookstore-smoke probes the configured bookstore service and reports
// whether both collections answer. It exits non-zero when any probe fails,
// so CI can gate a full suite run on it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/bookstore"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/config"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/report"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/smoke"
)

type options struct {
	environment string
	configDirs  []string
	writeReport bool
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.environment, "environment", "", "Environment overlay to load, defaults to TEST_ENVIRONMENT or dev.")
	flags.StringSliceVar(&o.configDirs, "config-dir", nil, "Extra directories to search for overlay files.")
	flags.BoolVar(&o.writeReport, "report", false, "Write the HTML report artifact for this probe run.")
}

func main() {
	os.Exit(run())
}

func run() int {
	var options options

	options.AddFlags(pflag.CommandLine)

	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.Options{
		Environment: options.environment,
		ConfigDirs:  options.configDirs,
		Warnings:    os.Stderr,
	})
	if err != nil {
		fmt.Println(err)
		return 1
	}

	fmt.Printf("probing %s (environment %s)\n", cfg.APIBaseURL(), cfg.Environment)

	var reporter *report.Reporter
	if options.writeReport {
		reporter = report.New(cfg)
	}

	runner := smoke.NewRunner(bookstore.NewBooksClient(cfg), bookstore.NewAuthorsClient(cfg), reporter)

	results := runner.Run(ctx)

	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("%-8s FAIL %v\n", result.Name, result.Err)
			continue
		}

		fmt.Printf("%-8s OK   status=%d entries=%d duration=%s\n", result.Name, result.Status, result.Entries, result.Duration)
	}

	if reporter != nil {
		path, err := reporter.Flush()
		if err != nil {
			fmt.Println(err)
			return 1
		}

		fmt.Printf("report written to %s\n", path)
	}

	if !smoke.Healthy(results) {
		return 1
	}

	return 0
}
