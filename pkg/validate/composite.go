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

package validate

import (
	"fmt"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/bookstore"
)

var bookFields = []string{"id", "title", "description", "pageCount", "excerpt", "publishDate"}

var authorFields = []string{"id", "idBook", "firstName", "lastName"}

// BookResponse bundles the checks every well-formed single-book answer must
// pass: a 2xx status, a JSON content type and all six book fields present.
// The first failing check decides the error.
func BookResponse(resp *bookstore.Response) error {
	if err := Successful(resp); err != nil {
		return fmt.Errorf("book response: %w", err)
	}

	if err := JSONContentType(resp); err != nil {
		return fmt.Errorf("book response: %w", err)
	}

	for _, field := range bookFields {
		if err := JSONFieldExists(resp, field); err != nil {
			return fmt.Errorf("book response: %w", err)
		}
	}

	return nil
}

// AuthorResponse is the author counterpart of BookResponse.
func AuthorResponse(resp *bookstore.Response) error {
	if err := Successful(resp); err != nil {
		return fmt.Errorf("author response: %w", err)
	}

	if err := JSONContentType(resp); err != nil {
		return fmt.Errorf("author response: %w", err)
	}

	for _, field := range authorFields {
		if err := JSONFieldExists(resp, field); err != nil {
			return fmt.Errorf("author response: %w", err)
		}
	}

	return nil
}
