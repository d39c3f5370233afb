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
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/config"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/models"
)

// BooksClient exercises the Books resource.
type BooksClient struct {
	rest *restClient
}

func NewBooksClient(cfg *config.Config) *BooksClient {
	return &BooksClient{rest: newRESTClient(cfg)}
}

// SetLogWriter redirects request diagnostics, typically to the suite writer.
func (c *BooksClient) SetLogWriter(w io.Writer) {
	c.rest.logWriter = w
}

func (c *BooksClient) List(ctx context.Context) (*Response, error) {
	return c.rest.doRequest(ctx, http.MethodGet, c.rest.endpoints.Books(), nil)
}

func (c *BooksClient) Get(ctx context.Context, id int) (*Response, error) {
	return c.GetRaw(ctx, strconv.Itoa(id))
}

// GetRaw substitutes the id segment verbatim so malformed values like "abc"
// can be aimed at the service.
func (c *BooksClient) GetRaw(ctx context.Context, id string) (*Response, error) {
	return c.rest.doRequest(ctx, http.MethodGet, c.rest.endpoints.Book(id), nil)
}

// Create posts the payload to the Books collection. The payload may be a
// models.Book or any map shaped by the test, which is how deliberately
// broken bodies travel.
func (c *BooksClient) Create(ctx context.Context, payload any) (*Response, error) {
	return c.rest.doJSON(ctx, http.MethodPost, c.rest.endpoints.Books(), payload)
}

func (c *BooksClient) Update(ctx context.Context, id int, payload any) (*Response, error) {
	return c.UpdateRaw(ctx, strconv.Itoa(id), payload)
}

func (c *BooksClient) UpdateRaw(ctx context.Context, id string, payload any) (*Response, error) {
	return c.rest.doJSON(ctx, http.MethodPut, c.rest.endpoints.Book(id), payload)
}

func (c *BooksClient) Delete(ctx context.Context, id int) (*Response, error) {
	return c.DeleteRaw(ctx, strconv.Itoa(id))
}

func (c *BooksClient) DeleteRaw(ctx context.Context, id string) (*Response, error) {
	return c.rest.doRequest(ctx, http.MethodDelete, c.rest.endpoints.Book(id), nil)
}

// IsReachable probes the Books collection. It never raises: any transport
// failure or non-200 answer reads as unreachable.
func (c *BooksClient) IsReachable(ctx context.Context) bool {
	resp, err := c.List(ctx)
	if err != nil {
		return false
	}

	return resp.StatusCode == http.StatusOK
}

// GetBook is the typed accessor for a single book. A non-200 answer returns
// nil with no error; callers wanting the status use Get instead.
func (c *BooksClient) GetBook(ctx context.Context, id int) (*models.Book, error) {
	resp, err := c.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting book: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var book models.Book
	if err := resp.JSON(&book); err != nil {
		return nil, fmt.Errorf("unmarshaling book response: %w", err)
	}

	return &book, nil
}

// ListBooks is the typed accessor for the collection. A non-200 answer
// returns an empty slice with no error.
func (c *BooksClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	resp, err := c.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return []models.Book{}, nil
	}

	var books []models.Book
	if err := resp.JSON(&books); err != nil {
		return nil, fmt.Errorf("unmarshaling books response: %w", err)
	}

	return books, nil
}
