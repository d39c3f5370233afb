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
	"fmt"
	"net/url"
)

// Endpoints contains all API endpoint patterns, relative to the versioned
// API base. Id segments are taken as strings and substituted verbatim so
// deliberately malformed values travel unchanged.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Book endpoints.
func (e *Endpoints) Books() string {
	return "/Books"
}

func (e *Endpoints) Book(id string) string {
	return fmt.Sprintf("/Books/%s", url.PathEscape(id))
}

// Author endpoints.
func (e *Endpoints) Authors() string {
	return "/Authors"
}

func (e *Endpoints) Author(id string) string {
	return fmt.Sprintf("/Authors/%s", url.PathEscape(id))
}

func (e *Endpoints) AuthorsByBook(bookID string) string {
	return fmt.Sprintf("/Authors/authors/books/%s", url.PathEscape(bookID))
}
