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
	"github.com/bookstore-qa/bookstore-api-tests/test/api"
)

var _ = Describe("Authors API", func() {
	Context("When retrieving authors", func() {
		Describe("Given the full roster", func() {
			It("should return all authors successfully", func() {
				resp, err := authors.List(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusCode(resp, http.StatusOK)).To(Succeed())
				Expect(validate.JSONContentType(resp)).To(Succeed())
				Expect(validate.JSONArray(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 5*time.Second)).To(Succeed())

				var roster []models.Author
				Expect(resp.JSON(&roster)).To(Succeed())

				if len(roster) > 0 {
					first := roster[0]
					Expect(first.ID).NotTo(BeZero())
					Expect(first.FirstName).NotTo(BeEmpty())
					Expect(first.LastName).NotTo(BeEmpty())
				}

				entry.Pass("roster holds %d authors", len(roster))
			})

			It("should return structurally valid authors", func() {
				resp, err := authors.List(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusCode(resp, http.StatusOK)).To(Succeed())
				Expect(validate.JSONArray(resp)).To(Succeed())
				Expect(schemas.ValidateAuthorList(resp)).To(Succeed())

				var roster []models.Author
				Expect(resp.JSON(&roster)).To(Succeed())

				if len(roster) > 0 {
					sample := roster[0]
					Expect(sample.ID).To(BeNumerically(">", 0))
					Expect(sample.IDBook).To(BeNumerically(">", 0))
				}
			})
		})

		Describe("Given a valid author id", func() {
			It("should return the requested author", func() {
				resp, err := authors.Get(ctx, 1)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.AuthorResponse(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
				Expect(schemas.ValidateAuthor(resp)).To(Succeed())

				var author models.Author
				Expect(resp.JSON(&author)).To(Succeed())
				Expect(author.ID).To(Equal(1))
				Expect(author.FirstName).NotTo(BeEmpty())
				Expect(author.LastName).NotTo(BeEmpty())

				entry.Pass("retrieved author %s", author.FullName())
			})
		})

		Describe("Given a non-existent author id", func() {
			It("should return not found", func() {
				resp, err := authors.Get(ctx, 999999)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.NotFound(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})
		})

		Describe("Given a book association", func() {
			It("should return the authors attached to a book", func() {
				resp, err := authors.ListByBook(ctx, 1)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusCode(resp, http.StatusOK)).To(Succeed())
				Expect(validate.JSONContentType(resp)).To(Succeed())
				Expect(validate.JSONArray(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())

				var byBook []models.Author
				Expect(resp.JSON(&byBook)).To(Succeed())
				api.VerifyAuthorsBelongToBook(byBook, 1)

				entry.Pass("book 1 has %d authors", len(byBook))
			})

			It("should answer a non-existent book with empty results or not found", func() {
				resp, err := authors.ListByBook(ctx, 999999)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusOneOf(resp, http.StatusOK, http.StatusNotFound)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())

				entry.Info("service answered %d for a non-existent book", resp.StatusCode)
			})

			It("should answer a negative book id with a defined status", func() {
				resp, err := authors.ListByBook(ctx, -1)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusOneOf(resp, http.StatusOK, http.StatusBadRequest, http.StatusNotFound)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())

				entry.Info("service answered %d for a negative book id", resp.StatusCode)
			})
		})

		Describe("Given a malformed author id", func() {
			It("should reject an alphabetic id", func() {
				resp, err := authors.GetRaw(ctx, "abc")
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BadRequest(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())

				entry.Info("service rejected alphabetic id with %d", resp.StatusCode)
			})
		})
	})
})
