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

// Package stubapi is an in-process double of the bookstore service for unit
// tests. It answers with the REST semantics the harness checks describe
// (404 for unknown ids, 400 validation problems for malformed ones) while
// reproducing the live service's observable habits: the versioned JSON
// content type, RFC 7807 problem bodies, echo-without-persist creation, and
// the author-create id echo. Books accept empty titles on creation exactly
// like the live service does; authors are validated strictly.
package stubapi

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/models"
)

const (
	contentTypeJSON    = "application/json; charset=utf-8; v=1.0"
	contentTypeProblem = "application/problem+json; charset=utf-8; v=1.0"

	problemTypeNotFound   = "https://tools.ietf.org/html/rfc7231#section-6.5.4"
	problemTypeValidation = "https://tools.ietf.org/html/rfc7231#section-6.5.1"
)

// Server holds the seeded catalogue. Reads, updates and deletes act on the
// store; creates echo the payload back without persisting, which is what
// the live service does.
type Server struct {
	mu      sync.Mutex
	books   map[int]models.Book
	authors map[int]models.Author
}

// New seeds twenty books with two authors each, shaped like the live
// service's sample data.
func New() *Server {
	s := &Server{
		books:   make(map[int]models.Book),
		authors: make(map[int]models.Author),
	}

	for i := 1; i <= 20; i++ {
		s.books[i] = models.Book{
			ID:          i,
			Title:       fmt.Sprintf("Book %d", i),
			Description: fmt.Sprintf("Description for Book %d", i),
			PageCount:   100 * i,
			Excerpt:     fmt.Sprintf("Excerpt for Book %d", i),
			PublishDate: fmt.Sprintf("2024-01-%02dT00:00:00Z", (i%28)+1),
		}
	}

	for i := 1; i <= 40; i++ {
		s.authors[i] = models.Author{
			ID:        i,
			IDBook:    (i + 1) / 2,
			FirstName: fmt.Sprintf("First Name %d", i),
			LastName:  fmt.Sprintf("Last Name %d", i),
		}
	}

	return s
}

// Handler returns the routed service surface under /api/v1.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/Books", s.listBooks)
		r.Post("/Books", s.createBook)
		r.Get("/Books/{id}", s.getBook)
		r.Put("/Books/{id}", s.updateBook)
		r.Delete("/Books/{id}", s.deleteBook)

		r.Get("/Authors", s.listAuthors)
		r.Post("/Authors", s.createAuthor)
		r.Get("/Authors/{id}", s.getAuthor)
		r.Put("/Authors/{id}", s.updateAuthor)
		r.Delete("/Authors/{id}", s.deleteAuthor)
		r.Get("/Authors/authors/books/{idBook}", s.authorsByBook)
	})

	return router
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

// echoBook serializes every field explicitly, id 0 included. The live
// service never omits fields, and omitempty on the model would.
func echoBook(book models.Book) map[string]any {
	return map[string]any{
		"id":          book.ID,
		"title":       book.Title,
		"description": book.Description,
		"pageCount":   book.PageCount,
		"excerpt":     book.Excerpt,
		"publishDate": book.PublishDate,
	}
}

func echoAuthor(author models.Author) map[string]any {
	return map[string]any{
		"id":        author.ID,
		"idBook":    author.IDBook,
		"firstName": author.FirstName,
		"lastName":  author.LastName,
	}
}

// writeNotFound answers with the service's RFC 7807 not-found body.
func (s *Server) writeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", contentTypeProblem)
	w.WriteHeader(http.StatusNotFound)

	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   problemTypeNotFound,
		"title":  "Not Found",
		"status": http.StatusNotFound,
	})
}

// writeValidationProblem answers with the service's RFC 7807 validation
// body, one message list per offending field.
func (s *Server) writeValidationProblem(w http.ResponseWriter, errors map[string][]string) {
	w.Header().Set("Content-Type", contentTypeProblem)
	w.WriteHeader(http.StatusBadRequest)

	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   problemTypeValidation,
		"title":  "One or more validation errors occurred.",
		"status": http.StatusBadRequest,
		"errors": errors,
	})
}

// parseID enforces the id contract: it must parse as an integer and be
// positive. The live service only honors the first half of that.
func (s *Server) parseID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		s.writeValidationProblem(w, map[string][]string{
			name: {fmt.Sprintf("The value '%s' is not valid.", raw)},
		})

		return 0, false
	}

	return id, true
}

func (s *Server) listBooks(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]models.Book, 0, len(s.books))
	for _, id := range slices.Sorted(maps.Keys(s.books)) {
		books = append(books, s.books[id])
	}

	s.writeJSON(w, http.StatusOK, books)
}

func (s *Server) getBook(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		s.writeNotFound(w)
		return
	}

	s.writeJSON(w, http.StatusOK, book)
}

func (s *Server) createBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		s.writeValidationProblem(w, map[string][]string{
			"$": {err.Error()},
		})

		return
	}

	// Echo without persisting, empty titles and all.
	s.writeJSON(w, http.StatusOK, echoBook(book))
}

func (s *Server) updateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r, "id")
	if !ok {
		return
	}

	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		// Mistyped fields surface as binding problems, matching the
		// service's 400 on "pageCount": "not_a_number".
		s.writeValidationProblem(w, map[string][]string{
			"$": {err.Error()},
		})

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.books[id]; !exists {
		s.writeNotFound(w)
		return
	}

	s.books[id] = book

	s.writeJSON(w, http.StatusOK, echoBook(book))
}

func (s *Server) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.books[id]; !exists {
		s.writeNotFound(w)
		return
	}

	delete(s.books, id)

	s.writeJSON(w, http.StatusOK, map[string]any{})
}

func (s *Server) listAuthors(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	authors := make([]models.Author, 0, len(s.authors))
	for _, id := range slices.Sorted(maps.Keys(s.authors)) {
		authors = append(authors, s.authors[id])
	}

	s.writeJSON(w, http.StatusOK, authors)
}

func (s *Server) getAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.authors[id]
	if !ok {
		s.writeNotFound(w)
		return
	}

	s.writeJSON(w, http.StatusOK, author)
}

func (s *Server) createAuthor(w http.ResponseWriter, r *http.Request) {
	var author models.Author
	if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
		s.writeValidationProblem(w, map[string][]string{
			"$": {err.Error()},
		})

		return
	}

	if errors := validateAuthor(author); len(errors) > 0 {
		s.writeValidationProblem(w, errors)
		return
	}

	// Echo without persisting. A payload without an id echoes id 0, the
	// quirk the contract tests pin.
	s.writeJSON(w, http.StatusOK, echoAuthor(author))
}

func (s *Server) updateAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r, "id")
	if !ok {
		return
	}

	var author models.Author
	if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
		s.writeValidationProblem(w, map[string][]string{
			"$": {err.Error()},
		})

		return
	}

	if errors := validateAuthor(author); len(errors) > 0 {
		s.writeValidationProblem(w, errors)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.authors[id]; !exists {
		s.writeNotFound(w)
		return
	}

	s.authors[id] = author

	s.writeJSON(w, http.StatusOK, echoAuthor(author))
}

func (s *Server) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.authors[id]; !exists {
		s.writeNotFound(w)
		return
	}

	delete(s.authors, id)

	s.writeJSON(w, http.StatusOK, map[string]any{})
}

func (s *Server) authorsByBook(w http.ResponseWriter, r *http.Request) {
	idBook, ok := s.parseID(w, r, "idBook")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matches := make([]models.Author, 0)

	for _, id := range slices.Sorted(maps.Keys(s.authors)) {
		if author := s.authors[id]; author.IDBook == idBook {
			matches = append(matches, author)
		}
	}

	// An unknown book yields an empty list, not a 404.
	s.writeJSON(w, http.StatusOK, matches)
}

func validateAuthor(author models.Author) map[string][]string {
	errors := make(map[string][]string)

	if author.FirstName == "" {
		errors["firstName"] = []string{"The firstName field is required."}
	}

	if author.LastName == "" {
		errors["lastName"] = []string{"The lastName field is required."}
	}

	if author.IDBook <= 0 {
		errors["idBook"] = []string{"The idBook field must reference a book."}
	}

	if len(errors) == 0 {
		return nil
	}

	return errors
}
