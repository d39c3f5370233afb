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

// AuthorsClient exercises the Authors resource.
type AuthorsClient struct {
	rest *restClient
}

func NewAuthorsClient(cfg *config.Config) *AuthorsClient {
	return &AuthorsClient{rest: newRESTClient(cfg)}
}

// SetLogWriter redirects request diagnostics, typically to the suite writer.
func (c *AuthorsClient) SetLogWriter(w io.Writer) {
	c.rest.logWriter = w
}

func (c *AuthorsClient) List(ctx context.Context) (*Response, error) {
	return c.rest.doRequest(ctx, http.MethodGet, c.rest.endpoints.Authors(), nil)
}

func (c *AuthorsClient) Get(ctx context.Context, id int) (*Response, error) {
	return c.GetRaw(ctx, strconv.Itoa(id))
}

// GetRaw substitutes the id segment verbatim, malformed values included.
func (c *AuthorsClient) GetRaw(ctx context.Context, id string) (*Response, error) {
	return c.rest.doRequest(ctx, http.MethodGet, c.rest.endpoints.Author(id), nil)
}

func (c *AuthorsClient) Create(ctx context.Context, payload any) (*Response, error) {
	return c.rest.doJSON(ctx, http.MethodPost, c.rest.endpoints.Authors(), payload)
}

func (c *AuthorsClient) Update(ctx context.Context, id int, payload any) (*Response, error) {
	return c.UpdateRaw(ctx, strconv.Itoa(id), payload)
}

func (c *AuthorsClient) UpdateRaw(ctx context.Context, id string, payload any) (*Response, error) {
	return c.rest.doJSON(ctx, http.MethodPut, c.rest.endpoints.Author(id), payload)
}

func (c *AuthorsClient) Delete(ctx context.Context, id int) (*Response, error) {
	return c.DeleteRaw(ctx, strconv.Itoa(id))
}

func (c *AuthorsClient) DeleteRaw(ctx context.Context, id string) (*Response, error) {
	return c.rest.doRequest(ctx, http.MethodDelete, c.rest.endpoints.Author(id), nil)
}

// ListByBook fetches the authors attached to a book.
func (c *AuthorsClient) ListByBook(ctx context.Context, bookID int) (*Response, error) {
	return c.rest.doRequest(ctx, http.MethodGet, c.rest.endpoints.AuthorsByBook(strconv.Itoa(bookID)), nil)
}

// IsReachable probes the Authors collection. It never raises.
func (c *AuthorsClient) IsReachable(ctx context.Context) bool {
	resp, err := c.List(ctx)
	if err != nil {
		return false
	}

	return resp.StatusCode == http.StatusOK
}

// GetAuthor is the typed accessor for a single author. A non-200 answer
// returns nil with no error.
func (c *AuthorsClient) GetAuthor(ctx context.Context, id int) (*models.Author, error) {
	resp, err := c.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting author: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var author models.Author
	if err := resp.JSON(&author); err != nil {
		return nil, fmt.Errorf("unmarshaling author response: %w", err)
	}

	return &author, nil
}

// ListAuthors is the typed accessor for the collection. A non-200 answer
// returns an empty slice with no error.
func (c *AuthorsClient) ListAuthors(ctx context.Context) ([]models.Author, error) {
	resp, err := c.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}

	return c.decodeAuthorList(resp)
}

// ListAuthorsByBook is the typed accessor for a book's authors.
func (c *AuthorsClient) ListAuthorsByBook(ctx context.Context, bookID int) ([]models.Author, error) {
	resp, err := c.ListByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("listing authors for book %d: %w", bookID, err)
	}

	return c.decodeAuthorList(resp)
}

func (c *AuthorsClient) decodeAuthorList(resp *Response) ([]models.Author, error) {
	if resp.StatusCode != http.StatusOK {
		return []models.Author{}, nil
	}

	var authors []models.Author
	if err := resp.JSON(&authors); err != nil {
		return nil, fmt.Errorf("unmarshaling authors response: %w", err)
	}

	return authors, nil
}
