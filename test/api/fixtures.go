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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/bookstore"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/models"
)

// CreateBookWithCleanup creates a book and schedules a best-effort delete.
// The public service echoes creations without persisting them, so the
// delete usually answers 404; it is still issued so the suite leaves no
// residue when pointed at a stateful deployment.
func CreateBookWithCleanup(client *bookstore.BooksClient, ctx context.Context, payload map[string]interface{}) models.Book {
	resp, err := client.Create(ctx, payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK))

	var book models.Book
	Expect(resp.JSON(&book)).To(Succeed())

	GinkgoWriter.Printf("Created book with ID: %d\n", book.ID)

	DeferCleanup(func() {
		if book.ID == 0 {
			return
		}

		deleteResp, deleteErr := client.Delete(ctx, book.ID)
		if deleteErr != nil {
			GinkgoWriter.Printf("Warning: Failed to delete book %d: %v\n", book.ID, deleteErr)
			return
		}

		GinkgoWriter.Printf("Cleanup delete of book %d answered %d\n", book.ID, deleteResp.StatusCode)
	})

	return book
}

// CreateAuthorWithCleanup creates an author and schedules a best-effort
// delete. The public service echoes created authors with id 0, in which
// case there is nothing addressable to delete.
func CreateAuthorWithCleanup(client *bookstore.AuthorsClient, ctx context.Context, payload map[string]interface{}) models.Author {
	resp, err := client.Create(ctx, payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK))

	var author models.Author
	Expect(resp.JSON(&author)).To(Succeed())

	GinkgoWriter.Printf("Created author with ID: %d\n", author.ID)

	DeferCleanup(func() {
		if author.ID == 0 {
			return
		}

		deleteResp, deleteErr := client.Delete(ctx, author.ID)
		if deleteErr != nil {
			GinkgoWriter.Printf("Warning: Failed to delete author %d: %v\n", author.ID, deleteErr)
			return
		}

		GinkgoWriter.Printf("Cleanup delete of author %d answered %d\n", author.ID, deleteResp.StatusCode)
	})

	return author
}

// CreateBooksSequence posts a run of sequentially named books and returns
// the echoed payloads in creation order.
func CreateBooksSequence(client *bookstore.BooksClient, ctx context.Context, count int) []models.Book {
	books := make([]models.Book, 0, count)
	testID := GenerateTestID()

	for i := range count {
		payload := NewBookPayload().
			WithTitle(fmt.Sprintf("Sequence Book %s-%d", testID, i+1)).
			Build()

		books = append(books, CreateBookWithCleanup(client, ctx, payload))
	}

	return books
}

// VerifyBookPresence verifies that the expected ids are present in the list.
func VerifyBookPresence(books []models.Book, expectedIDs []int) {
	bookIDs := extractBookIDs(books)
	for _, expectedID := range expectedIDs {
		Expect(bookIDs).To(ContainElement(expectedID), "Expected book ID %d to be present in the list", expectedID)
	}
}

// VerifyAuthorPresence verifies that the expected ids are present in the list.
func VerifyAuthorPresence(authors []models.Author, expectedIDs []int) {
	authorIDs := extractAuthorIDs(authors)
	for _, expectedID := range expectedIDs {
		Expect(authorIDs).To(ContainElement(expectedID), "Expected author ID %d to be present in the list", expectedID)
	}
}

// VerifyAuthorsBelongToBook verifies every author in the list references
// the given book.
func VerifyAuthorsBelongToBook(authors []models.Author, bookID int) {
	for _, author := range authors {
		Expect(author.IDBook).To(Equal(bookID), "Expected author %d to belong to book %d", author.ID, bookID)
	}
}

// extractBookIDs extracts ids from a list of books.
func extractBookIDs(books []models.Book) []int {
	bookIDs := make([]int, len(books))

	for i, book := range books {
		bookIDs[i] = book.ID
	}

	return bookIDs
}

// extractAuthorIDs extracts ids from a list of authors.
func extractAuthorIDs(authors []models.Author) []int {
	authorIDs := make([]int, len(authors))

	for i, author := range authors {
		authorIDs[i] = author.ID
	}

	return authorIDs
}
