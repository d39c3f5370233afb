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

// Package faults defines the error taxonomy shared by the harness: fatal
// configuration errors, per-request transport errors, contract violations
// raised by named response checks, and non-fatal reachability warnings.
package faults

import "errors"

type Category string

const (
	ConfigError       Category = "ConfigError"
	TransportError    Category = "TransportError"
	ContractViolation Category = "ContractViolation"
	ReachabilityError Category = "ReachabilityError"
)

// TypedError carries the failure category and, for contract violations, the
// name of the check that produced it so failures are never anonymous.
type TypedError struct {
	Category Category
	Check    string
	Message  string
	Cause    error
}

func (e *TypedError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := e.Message
	if e.Check != "" {
		msg = e.Check + ": " + msg
	}

	if msg != "" && e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	if msg != "" {
		return msg
	}

	if e.Cause != nil {
		return e.Cause.Error()
	}

	return string(e.Category)
}

func (e *TypedError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Cause
}

func NewTypedError(category Category, check, message string, cause error) *TypedError {
	return &TypedError{
		Category: category,
		Check:    check,
		Message:  message,
		Cause:    cause,
	}
}

// IsCategory reports whether err, or anything it wraps, is a TypedError of
// the given category.
func IsCategory(err error, category Category) bool {
	if err == nil {
		return false
	}

	var typedErr *TypedError
	if !errors.As(err, &typedErr) {
		return false
	}

	return typedErr.Category == category
}

// CheckName extracts the named check from a contract violation, or returns
// the empty string for errors outside the taxonomy.
func CheckName(err error) string {
	var typedErr *TypedError
	if !errors.As(err, &typedErr) {
		return ""
	}

	return typedErr.Check
}
