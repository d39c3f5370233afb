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

// Package models defines the wire-level records exchanged with the bookstore
// service. These are plain value types; the remote service owns all
// validation semantics, so no client-side required-field rules exist here.
package models

// Book mirrors the service's book resource. The id is server-assigned, so
// creation payloads leave it unset and omitempty keeps it off the wire.
// PublishDate stays a string because the harness probes the service with
// malformed date values as well as valid ISO-8601 ones.
type Book struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PageCount   int    `json:"pageCount"`
	Excerpt     string `json:"excerpt"`
	PublishDate string `json:"publishDate"`
}

// Author mirrors the service's author resource. IDBook references a book but
// the service does not enforce the relation.
type Author struct {
	ID        int    `json:"id,omitempty"`
	IDBook    int    `json:"idBook"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName derives the display name on demand rather than storing it.
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
