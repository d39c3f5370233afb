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

// Package validate holds the named response checks. Every check is pure,
// inspects only the handle it is given, and fails with an error that names
// the check and the offending value, so a red test always says which
// contract the service broke. Checks are independent: none assumes another
// ran first, and any subset can be applied in any order.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/bookstore"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/faults"
)

func violation(check, format string, args ...any) error {
	return faults.NewTypedError(faults.ContractViolation, check, fmt.Sprintf(format, args...), nil)
}

// StatusCode requires an exact status, regardless of body content.
func StatusCode(resp *bookstore.Response, want int) error {
	if resp.StatusCode != want {
		return violation("StatusCode", "expected status %d, got %d", want, resp.StatusCode)
	}

	return nil
}

// StatusOneOf accepts any of the given statuses. It backs the
// documented-behavior scenarios where the service legitimately answers in
// more than one way.
func StatusOneOf(resp *bookstore.Response, statuses ...int) error {
	allowed := set.New[int](statuses...)

	if !allowed.Contains(resp.StatusCode) {
		return violation("StatusOneOf", "status %d not in allowed set %v", resp.StatusCode, statuses)
	}

	return nil
}

// Successful requires any 2xx status.
func Successful(resp *bookstore.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return violation("Successful", "expected a 2xx status, got %d", resp.StatusCode)
	}

	return nil
}

// ClientError requires any 4xx status.
func ClientError(resp *bookstore.Response) error {
	if resp.StatusCode < 400 || resp.StatusCode > 499 {
		return violation("ClientError", "expected a 4xx status, got %d", resp.StatusCode)
	}

	return nil
}

func BadRequest(resp *bookstore.Response) error {
	if resp.StatusCode != http.StatusBadRequest {
		return violation("BadRequest", "expected status 400, got %d", resp.StatusCode)
	}

	return nil
}

func NotFound(resp *bookstore.Response) error {
	if resp.StatusCode != http.StatusNotFound {
		return violation("NotFound", "expected status 404, got %d", resp.StatusCode)
	}

	return nil
}

func UnprocessableEntity(resp *bookstore.Response) error {
	if resp.StatusCode != http.StatusUnprocessableEntity {
		return violation("UnprocessableEntity", "expected status 422, got %d", resp.StatusCode)
	}

	return nil
}

// ResponseTime requires the exchange to have completed within the ceiling.
func ResponseTime(resp *bookstore.Response, ceiling time.Duration) error {
	if resp.Duration > ceiling {
		return violation("ResponseTime", "response took %s, ceiling %s", resp.Duration, ceiling)
	}

	return nil
}

// Header requires an exact header value.
func Header(resp *bookstore.Response, name, want string) error {
	got := resp.Headers.Get(name)
	if got != want {
		return violation("Header", "header %s = %q, expected %q", name, got, want)
	}

	return nil
}

// JSONContentType accepts any JSON content type, including the service's
// parameterized "application/json; charset=utf-8; v=1.0".
func JSONContentType(resp *bookstore.Response) error {
	contentType := resp.ContentType()
	if !strings.HasPrefix(contentType, "application/json") {
		return violation("JSONContentType", "content type %q is not JSON", contentType)
	}

	return nil
}

func BodyNotEmpty(resp *bookstore.Response) error {
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return violation("BodyNotEmpty", "response body is empty")
	}

	return nil
}

func BodyEmpty(resp *bookstore.Response) error {
	if len(bytes.TrimSpace(resp.Body)) != 0 {
		return violation("BodyEmpty", "expected empty body, got %d bytes", len(resp.Body))
	}

	return nil
}

// JSONFieldExists requires the field to be present and non-null. Dotted
// paths reach into nested objects and "[0].id" style paths into arrays.
func JSONFieldExists(resp *bookstore.Response, field string) error {
	value, err := resp.JSONPath(normalizePath(field))
	if err != nil {
		return faults.NewTypedError(faults.ContractViolation, "JSONFieldExists",
			fmt.Sprintf("cannot read field '%s'", field), err)
	}

	if value == nil {
		return violation("JSONFieldExists", "field '%s' not present", field)
	}

	return nil
}

// JSONFieldEquals requires the field to hold the given value. Numeric
// values compare by magnitude, so an expected int matches a decoded
// float64.
func JSONFieldEquals(resp *bookstore.Response, field string, want any) error {
	value, err := resp.JSONPath(normalizePath(field))
	if err != nil {
		return faults.NewTypedError(faults.ContractViolation, "JSONFieldEquals",
			fmt.Sprintf("cannot read field '%s'", field), err)
	}

	if !jsonEqual(value, want) {
		return violation("JSONFieldEquals", "field '%s' = %v, expected %v", field, value, want)
	}

	return nil
}

// JSONArray requires the body to be a syntactic JSON array.
func JSONArray(resp *bookstore.Response) error {
	if _, err := decodeArray(resp); err != nil {
		return err
	}

	return nil
}

func JSONArrayNotEmpty(resp *bookstore.Response) error {
	elements, err := decodeArray(resp)
	if err != nil {
		return err
	}

	if len(elements) == 0 {
		return violation("JSONArrayNotEmpty", "array is empty")
	}

	return nil
}

func JSONArraySize(resp *bookstore.Response, want int) error {
	elements, err := decodeArray(resp)
	if err != nil {
		return err
	}

	if len(elements) != want {
		return violation("JSONArraySize", "array has %d elements, expected %d", len(elements), want)
	}

	return nil
}

func decodeArray(resp *bookstore.Response) ([]any, error) {
	var decoded any
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, faults.NewTypedError(faults.ContractViolation, "JSONArray", "body is not valid JSON", err)
	}

	elements, ok := decoded.([]any)
	if !ok {
		return nil, violation("JSONArray", "body is %T, not a JSON array", decoded)
	}

	return elements, nil
}

func normalizePath(field string) string {
	if strings.HasPrefix(field, ".") {
		return field
	}

	return "." + field
}

func jsonEqual(got, want any) bool {
	if gotNumber, ok := toFloat(got); ok {
		wantNumber, ok := toFloat(want)
		return ok && gotNumber == wantNumber
	}

	return reflect.DeepEqual(got, want)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
