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

// Package config resolves the effective harness configuration from three
// layers, last write wins: in-code defaults, an environment overlay file
// (config-<env>.properties), and process environment variables. The result
// is an immutable snapshot; callers needing different settings construct
// their own via Load rather than mutating a shared instance.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/faults"
)

// Property keys understood in overlay files.
const (
	keyBaseURL           = "api.base.url"
	keyAPIVersion        = "api.version"
	keyRequestTimeout    = "api.request.timeout"
	keyConnectionTimeout = "api.connection.timeout"
	keyEnvironment       = "test.environment"
	keyLoggingEnabled    = "test.logging.enabled"
	keyReportPath        = "test.report.path"
	keyDebugMode         = "debug.mode"
)

// Environment variables overriding the corresponding property keys.
const (
	envBaseURL           = "API_BASE_URL"
	envAPIVersion        = "API_VERSION"
	envRequestTimeout    = "API_REQUEST_TIMEOUT"
	envConnectionTimeout = "API_CONNECTION_TIMEOUT"
	envEnvironment       = "TEST_ENVIRONMENT"
	envLoggingEnabled    = "TEST_LOGGING_ENABLED"
	envReportPath        = "TEST_REPORT_PATH"
	envDebugMode         = "DEBUG_MODE"
)

const defaultEnvironment = "dev"

// Config is the effective configuration snapshot. It is read-only after
// resolution; concurrent readers always observe one consistent state.
type Config struct {
	BaseURL           string
	APIVersion        string
	RequestTimeout    time.Duration
	ConnectionTimeout time.Duration
	Environment       string
	LoggingEnabled    bool
	ReportPath        string
	DebugMode         bool
}

// APIBaseURL joins the base URL with the versioned API prefix.
func (c *Config) APIBaseURL() string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/api/" + c.APIVersion
}

func (c *Config) BooksURL() string {
	return c.APIBaseURL() + "/Books"
}

func (c *Config) AuthorsURL() string {
	return c.APIBaseURL() + "/Authors"
}

// Options parameterizes Load for tests and tooling. The zero value resolves
// against the process environment and the conventional search paths.
type Options struct {
	// Environment pins the overlay selection, bypassing TEST_ENVIRONMENT.
	Environment string
	// ConfigDirs are searched, in order, for config-<env>.properties.
	ConfigDirs []string
	// EnvFiles are candidate .env files loaded non-destructively into the
	// process environment before the override layer is read.
	EnvFiles []string
	// Warnings receives non-fatal resolution diagnostics, default stderr.
	Warnings io.Writer
}

var (
	resolveOnce sync.Once //nolint:gochecknoglobals
	resolved    *Config   //nolint:gochecknoglobals
	resolveErr  error     //nolint:gochecknoglobals
)

// Resolve builds the process-wide configuration exactly once; every caller
// after the first observes the identical snapshot, including any error.
func Resolve() (*Config, error) {
	resolveOnce.Do(func() {
		resolved, resolveErr = Load(Options{})
	})

	return resolved, resolveErr
}

// Load performs a full three-layer resolution. Unlike Resolve it is not
// cached, so tests can construct independent configurations.
func Load(opts Options) (*Config, error) {
	warnings := opts.Warnings
	if warnings == nil {
		warnings = os.Stderr
	}

	loadEnvFile(opts.EnvFiles, warnings)

	values := defaults()

	// The overlay choice is pinned before merging; the override layer may
	// still relabel test.environment without re-selecting the file.
	environment := selectEnvironment(opts.Environment)
	values[keyEnvironment] = environment

	overlayFile(values, environment, opts.ConfigDirs, warnings)
	overlayEnvironment(values)

	return newConfig(values)
}

// defaults is the first layer, bundled in code so the harness runs with no
// configuration at all against the public service.
func defaults() map[string]string {
	return map[string]string{
		keyBaseURL:           "https://fakerestapi.azurewebsites.net",
		keyAPIVersion:        "v1",
		keyRequestTimeout:    "30000",
		keyConnectionTimeout: "10000",
		keyEnvironment:       defaultEnvironment,
		keyLoggingEnabled:    "true",
		keyReportPath:        "test-output/reports",
		keyDebugMode:         "false",
	}
}

func selectEnvironment(override string) string {
	if override != "" {
		return override
	}

	if env := os.Getenv(envEnvironment); env != "" {
		return env
	}

	return defaultEnvironment
}

// overlayFile merges config-<env>.properties from the first directory that
// has one. A missing overlay is expected for environments that run entirely
// on defaults and overrides.
func overlayFile(values map[string]string, environment string, dirs []string, warnings io.Writer) {
	if len(dirs) == 0 {
		dirs = defaultConfigDirs()
	}

	name := fmt.Sprintf("config-%s.properties", environment)

	for _, dir := range dirs {
		path := filepath.Join(dir, name)

		if _, err := os.Stat(path); err != nil {
			continue
		}

		overlay, err := godotenv.Read(path)
		if err != nil {
			fmt.Fprintf(warnings, "Warning: failed to parse overlay %s: %v\n", path, err)
			return
		}

		for key, value := range overlay {
			values[key] = value
		}

		return
	}

	fmt.Fprintf(warnings, "Warning: no %s found, continuing with defaults and environment overrides\n", name)
}

// overlayEnvironment is the final layer: process environment variables win
// over everything beneath them.
func overlayEnvironment(values map[string]string) {
	overrides := map[string]string{
		keyBaseURL:           envBaseURL,
		keyAPIVersion:        envAPIVersion,
		keyRequestTimeout:    envRequestTimeout,
		keyConnectionTimeout: envConnectionTimeout,
		keyEnvironment:       envEnvironment,
		keyLoggingEnabled:    envLoggingEnabled,
		keyReportPath:        envReportPath,
		keyDebugMode:         envDebugMode,
	}

	for key, envVar := range overrides {
		if value := os.Getenv(envVar); value != "" {
			values[key] = value
		}
	}
}

func newConfig(values map[string]string) (*Config, error) {
	requestTimeout, err := parseTimeout(keyRequestTimeout, values[keyRequestTimeout])
	if err != nil {
		return nil, err
	}

	connectionTimeout, err := parseTimeout(keyConnectionTimeout, values[keyConnectionTimeout])
	if err != nil {
		return nil, err
	}

	loggingEnabled, err := parseBool(keyLoggingEnabled, values[keyLoggingEnabled])
	if err != nil {
		return nil, err
	}

	debugMode, err := parseBool(keyDebugMode, values[keyDebugMode])
	if err != nil {
		return nil, err
	}

	config := &Config{
		BaseURL:           values[keyBaseURL],
		APIVersion:        values[keyAPIVersion],
		RequestTimeout:    requestTimeout,
		ConnectionTimeout: connectionTimeout,
		Environment:       values[keyEnvironment],
		LoggingEnabled:    loggingEnabled,
		ReportPath:        values[keyReportPath],
		DebugMode:         debugMode,
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// parseTimeout accepts either Go duration syntax ("30s") or a bare integer
// interpreted as milliseconds ("30000"). Anything else is fatal.
func parseTimeout(key, value string) (time.Duration, error) {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration, nil
	}

	if millis, err := strconv.Atoi(value); err == nil {
		return time.Duration(millis) * time.Millisecond, nil
	}

	return 0, faults.NewTypedError(faults.ConfigError, "",
		fmt.Sprintf("invalid timeout for %s: %q is neither a duration nor milliseconds", key, value), nil)
}

func parseBool(key, value string) (bool, error) {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, faults.NewTypedError(faults.ConfigError, "",
			fmt.Sprintf("invalid boolean for %s: %q", key, value), err)
	}

	return parsed, nil
}

// loadEnvFile seeds the process environment from the first .env found so
// override variables can live in a file during local development.
func loadEnvFile(candidates []string, warnings io.Writer) {
	if len(candidates) == 0 {
		candidates = defaultEnvFiles()
	}

	var envPath string

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// No .env is normal in CI where variables are set directly.
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(warnings, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// defaultConfigDirs covers invocation from the repository root, from package
// directories, and from the nested suite directories.
func defaultConfigDirs() []string {
	return []string{
		"configs",
		"../configs",
		"../../configs",
		"../../../configs",
		"../../../../configs",
	}
}

func defaultEnvFiles() []string {
	return []string{
		"test/.env",
		"../../test/.env",
		"../../../test/.env", // From test/api/suites directory
		"../../../../test/.env",
	}
}

// validateRequiredFields checks the handful of values nothing can work
// without. Defaults normally satisfy these, so failures mean an override
// explicitly blanked one.
func validateRequiredFields(config *Config) error {
	var missing []string

	required := map[string]string{
		keyBaseURL:    config.BaseURL,
		keyAPIVersion: config.APIVersion,
		keyReportPath: config.ReportPath,
	}

	for key, value := range required {
		if value == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return faults.NewTypedError(faults.ConfigError, "",
			fmt.Sprintf("missing required configuration: %s", strings.Join(missing, ", ")), nil)
	}

	return nil
}
