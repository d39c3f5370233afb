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

// Package api provides integration test utilities for the bookstore API
// suites.
//
// # Separate Client Implementation
//
// The suites drive the service through the hand-built clients in
// pkg/bookstore rather than a client generated from the service's OpenAPI
// document. This design choice provides several benefits:
//
// 1. **API Contract Validation**: Having an independent client
// implementation serves as a form of triangulation on API correctness. Any
// legitimate change to the service's contract must have a compensating
// change in the client, making API evolution explicit and reviewable. A
// generated client would silently absorb exactly the drift these suites
// exist to catch.
//
// 2. **Test-Specific Features**: The custom client includes features
// tailored for integration testing:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - Non-2xx statuses returned as ordinary results, never errors, so
//     negative scenarios assert on them directly
//   - Raw-id request variants for sending syntactically invalid ids
//   - Direct access to HTTP status codes and response bodies
//
// # Payload Builders
//
// Builders start from generated valid payloads and let scenarios override,
// blank or remove individual fields, which is how the negative and
// boundary shapes are produced without duplicating payload literals in
// every test.
package api
