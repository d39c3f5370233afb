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
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/models"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/validate"
	"github.com/bookstore-qa/bookstore-api-tests/test/api"
)

var _ = Describe("Authors API", func() {
	Context("When creating authors", func() {
		Describe("Given a valid payload", func() {
			It("should create a generated author", func() {
				payload := api.NewAuthorPayload().Build()

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusCode(resp, http.StatusOK)).To(Succeed())
				Expect(validate.JSONContentType(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 5*time.Second)).To(Succeed())

				var created models.Author
				Expect(resp.JSON(&created)).To(Succeed())

				// The service echoes created authors with id 0, so only the
				// fields are compared.
				Expect(created.FirstName).To(Equal(payload["firstName"]))
				Expect(created.LastName).To(Equal(payload["lastName"]))
				Expect(created.IDBook).To(Equal(payload["idBook"]))

				entry.Pass("created author %s", created.FullName())
			})

			It("should accept a minimal payload", func() {
				payload := api.NewAuthorPayload().
					WithFirstName("Min" + api.GenerateTestID()).
					WithLastName("Author").
					WithBookID(1).
					Build()

				created := api.CreateAuthorWithCleanup(authors, ctx, payload)

				Expect(created.FirstName).To(Equal(payload["firstName"]))
				Expect(created.LastName).To(Equal(payload["lastName"]))
			})
		})

		Describe("Given incomplete name fields", func() {
			It("should reject an empty first name", func() {
				payload := api.NewAuthorPayload().
					WithFirstName("").
					WithLastName("TestAuthor").
					WithBookID(1).
					Build()

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BadRequest(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})

			It("should reject an empty last name", func() {
				payload := api.NewAuthorPayload().
					WithFirstName("TestAuthor").
					WithLastName("").
					WithBookID(1).
					Build()

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BadRequest(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})
		})

		Describe("Given a broken book reference", func() {
			It("should reject a payload without a book id", func() {
				payload := api.NewAuthorPayload().
					WithFirstName("TestAuthor").
					WithLastName("WithoutBook").
					WithoutField("idBook").
					Build()

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BadRequest(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})

			It("should reject a negative book id", func() {
				payload := api.NewAuthorPayload().
					WithFirstName("TestAuthor").
					WithLastName("WithNegativeBook").
					WithBookID(-1).
					Build()

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BadRequest(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})

			It("should answer a non-existent book id with a defined status", func() {
				payload := api.NewAuthorPayload().
					WithFirstName("Test" + api.GenerateTestID()).
					WithLastName("Author").
					WithBookID(999999).
					Build()

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				// The service may or may not validate the relation.
				Expect(validate.StatusOneOf(resp, http.StatusOK, http.StatusBadRequest, http.StatusNotFound)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())

				entry.Info("service answered %d for a non-existent book reference", resp.StatusCode)
			})
		})

		Describe("Given unusual name values", func() {
			It("should handle very long names", func() {
				longName := strings.Repeat("a", 1000)

				payload := api.NewAuthorPayload().
					WithFirstName(longName).
					WithLastName(longName).
					WithBookID(1).
					Build()

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusOneOf(resp, http.StatusOK, http.StatusBadRequest, http.StatusRequestEntityTooLarge)).To(Succeed())
				Expect(validate.ResponseTime(resp, 5*time.Second)).To(Succeed())

				entry.Info("service answered %d for 1000-character names", resp.StatusCode)
			})

			It("should handle special characters", func() {
				payload := api.NewAuthorPayload().
					WithFirstName("João-André").
					WithLastName("O'Connor-Smith").
					WithBookID(1).
					Build()

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusOneOf(resp, http.StatusOK, http.StatusBadRequest)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())

				if resp.StatusCode == http.StatusOK {
					var created models.Author
					Expect(resp.JSON(&created)).To(Succeed())
					Expect(created.FirstName).To(Equal("João-André"))
					Expect(created.LastName).To(Equal("O'Connor-Smith"))
				}

				entry.Info("service answered %d for special characters", resp.StatusCode)
			})
		})
	})
})
