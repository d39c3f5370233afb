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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/models"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/validate"
)

var _ = Describe("Books API", func() {
	Context("When retrieving books", func() {
		Describe("Given the full catalogue", func() {
			It("should return all books successfully", func() {
				resp, err := books.List(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusCode(resp, http.StatusOK)).To(Succeed())
				Expect(validate.JSONContentType(resp)).To(Succeed())
				Expect(validate.JSONArray(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 5*time.Second)).To(Succeed())

				var catalogue []models.Book
				Expect(resp.JSON(&catalogue)).To(Succeed())

				if len(catalogue) > 0 {
					first := catalogue[0]
					Expect(first.ID).NotTo(BeZero())
					Expect(first.Title).NotTo(BeEmpty())
				}

				entry.Pass("catalogue holds %d books", len(catalogue))
			})

			It("should return structurally valid books", func() {
				resp, err := books.List(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusCode(resp, http.StatusOK)).To(Succeed())
				Expect(validate.JSONArray(resp)).To(Succeed())
				Expect(schemas.ValidateBookList(resp)).To(Succeed())

				var catalogue []models.Book
				Expect(resp.JSON(&catalogue)).To(Succeed())

				if len(catalogue) > 0 {
					sample := catalogue[0]
					Expect(sample.ID).To(BeNumerically(">", 0))
					Expect(sample.PageCount).To(BeNumerically(">=", 0))
					Expect(sample.PublishDate).NotTo(BeEmpty())
				}
			})
		})

		Describe("Given a valid book id", func() {
			It("should return the requested book", func() {
				resp, err := books.Get(ctx, 1)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BookResponse(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
				Expect(schemas.ValidateBook(resp)).To(Succeed())

				var book models.Book
				Expect(resp.JSON(&book)).To(Succeed())
				Expect(book.ID).To(Equal(1))
				Expect(book.Title).NotTo(BeEmpty())
				Expect(book.PageCount).To(BeNumerically(">", 0))

				entry.Pass("retrieved %q with %d pages", book.Title, book.PageCount)
			})
		})

		Describe("Given a non-existent book id", func() {
			It("should return not found", func() {
				resp, err := books.Get(ctx, 999999)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.NotFound(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})
		})

		Describe("Given a malformed book id", func() {
			It("should reject an alphabetic id", func() {
				resp, err := books.GetRaw(ctx, "abc")
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BadRequest(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())

				entry.Info("service rejected alphabetic id with %d", resp.StatusCode)
			})

			It("should answer a negative id with a client error", func() {
				resp, err := books.Get(ctx, -1)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusOneOf(resp, http.StatusBadRequest, http.StatusNotFound)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})
		})
	})
})
