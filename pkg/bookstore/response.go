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

package bookstore

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/itchyny/gojq"
)

// Response captures one completed HTTP exchange. The body is fully read and
// the connection released before the handle is returned, so it stays valid
// for as long as the owning test keeps it.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
	TraceID    string
}

func (r *Response) ContentType() string {
	return r.Headers.Get("Content-Type")
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("unmarshaling response body: %w", err)
	}

	return nil
}

// JSONPath evaluates a jq expression against the decoded body and returns
// the single result, a slice when the expression yields several values, or
// nil when it yields none.
func (r *Response) JSONPath(expression string) (any, error) {
	var decoded any
	if err := json.Unmarshal(r.Body, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshaling response body: %w", err)
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("parsing jq expression %q: %w", expression, err)
	}

	iter := query.Run(decoded)

	var results []any

	for {
		value, ok := iter.Next()
		if !ok {
			break
		}

		if err, ok := value.(error); ok {
			return nil, fmt.Errorf("evaluating jq expression %q: %w", expression, err)
		}

		results = append(results, value)
	}

	if len(results) == 0 {
		return nil, nil
	}

	if len(results) == 1 {
		return results[0], nil
	}

	return results, nil
}
