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

// Package bookstore wraps the FakeRestAPI bookstore service with request
// defaults, trace propagation and a uniform response handle. A non-2xx
// status is an ordinary result here; only transport failures surface as
// errors, because the whole point of the harness is to observe how the
// service answers, not to second-guess it.
package bookstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/config"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/faults"
)

const userAgent = "Bookstore-API-Tests/1.0"

// restClient is the shared HTTP core behind the Books and Authors clients.
type restClient struct {
	baseURL   string
	client    *http.Client
	config    *config.Config
	endpoints *Endpoints
	logWriter io.Writer
}

func newRESTClient(cfg *config.Config) *restClient {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectionTimeout,
		}).DialContext,
		TLSHandshakeTimeout: cfg.ConnectionTimeout,
	}

	return &restClient{
		baseURL: strings.TrimSuffix(cfg.APIBaseURL(), "/"),
		client: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		config:    cfg,
		endpoints: NewEndpoints(),
		logWriter: os.Stderr,
	}
}

// logError logs a generic error with trace context.
func (c *restClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	fmt.Fprintf(c.logWriter, "[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *restClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	fmt.Fprintf(c.logWriter, "[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *restClient) logTraceContext(traceParent string) {
	fmt.Fprintf(c.logWriter, "TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest performs one exchange against the service. Whatever status the
// service answers with comes back inside the Response; the error return is
// reserved for request construction and transport failures.
func (c *restClient) doRequest(ctx context.Context, method, path string, body io.Reader) (*Response, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=bookstore-qa")

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, faults.NewTypedError(faults.TransportError, "", fmt.Sprintf("%s %s failed", method, path), err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, faults.NewTypedError(faults.TransportError, "", fmt.Sprintf("%s %s reading response body", method, path), err)
	}

	if c.config.LoggingEnabled {
		fmt.Fprintf(c.logWriter, "[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.DebugMode && len(respBody) > 0 {
		fmt.Fprintf(c.logWriter, "[%s %s] response body: %s\n", method, path, string(respBody))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    resp.Header,
		Body:       respBody,
		Duration:   duration,
		TraceID:    extractTraceID(traceParent),
	}, nil
}

// doJSON marshals the payload and performs the exchange with a JSON body.
func (c *restClient) doJSON(ctx context.Context, method, path string, payload any) (*Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return c.doRequest(ctx, method, path, strings.NewReader(string(data)))
}
