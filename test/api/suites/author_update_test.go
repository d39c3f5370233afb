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
	Context("When updating authors", func() {
		Describe("Given an existing author", func() {
			It("should update an author with valid data", func() {
				payload := api.NewAuthorPayload().
					WithID(1).
					WithFirstName("Updated" + api.GenerateTestID()).
					WithLastName("Author").
					WithBookID(1).
					Build()

				resp, err := authors.Update(ctx, 1, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusCode(resp, http.StatusOK)).To(Succeed())
				Expect(validate.JSONContentType(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 5*time.Second)).To(Succeed())

				var updated models.Author
				Expect(resp.JSON(&updated)).To(Succeed())
				Expect(updated.ID).To(Equal(1))
				Expect(updated.FirstName).To(Equal(payload["firstName"]))
				Expect(updated.LastName).To(Equal(payload["lastName"]))
				Expect(updated.IDBook).To(Equal(payload["idBook"]))

				entry.Pass("updated author to %s", updated.FullName())
			})

			It("should accept a partial update", func() {
				payload := api.NewAuthorPayload().
					WithID(2).
					WithFirstName("PartialUpdate" + api.GenerateTestID()).
					WithLastName("TestAuthor").
					WithBookID(1).
					Build()

				resp, err := authors.Update(ctx, 2, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusCode(resp, http.StatusOK)).To(Succeed())

				var updated models.Author
				Expect(resp.JSON(&updated)).To(Succeed())
				Expect(updated.ID).To(Equal(2))
				Expect(updated.FirstName).To(Equal(payload["firstName"]))
			})
		})

		Describe("Given a non-existent author id", func() {
			It("should return not found", func() {
				payload := api.NewAuthorPayload().
					WithID(999999).
					WithFirstName("NonExistent").
					WithLastName("Author").
					WithBookID(1).
					Build()

				resp, err := authors.Update(ctx, 999999, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.NotFound(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})
		})

		Describe("Given a malformed author id", func() {
			It("should reject an alphabetic id", func() {
				resp, err := authors.UpdateRaw(ctx, "abc", api.NewAuthorPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BadRequest(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())

				entry.Info("service rejected alphabetic id with %d", resp.StatusCode)
			})

			It("should reject a negative id", func() {
				payload := api.NewAuthorPayload().WithID(-1).Build()

				resp, err := authors.Update(ctx, -1, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BadRequest(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})
		})

		Describe("Given incomplete name fields", func() {
			It("should reject an empty first name", func() {
				payload := api.NewAuthorPayload().
					WithID(1).
					WithFirstName("").
					WithLastName("ValidLastName").
					WithBookID(1).
					Build()

				resp, err := authors.Update(ctx, 1, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BadRequest(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})

			It("should reject an empty last name", func() {
				payload := api.NewAuthorPayload().
					WithID(1).
					WithFirstName("ValidFirstName").
					WithLastName("").
					WithBookID(1).
					Build()

				resp, err := authors.Update(ctx, 1, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BadRequest(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})
		})

		Describe("Given a broken book reference", func() {
			It("should reject a null book id", func() {
				payload := api.NewAuthorPayload().
					WithID(1).
					WithFirstName("ValidFirstName").
					WithLastName("ValidLastName").
					WithField("idBook", nil).
					Build()

				resp, err := authors.Update(ctx, 1, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.BadRequest(resp)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())
			})

			It("should answer a non-existent book id with a defined status", func() {
				payload := api.NewAuthorPayload().
					WithID(1).
					WithFirstName("Test" + api.GenerateTestID()).
					WithLastName("Author").
					WithBookID(999999).
					Build()

				resp, err := authors.Update(ctx, 1, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusOneOf(resp, http.StatusOK, http.StatusBadRequest, http.StatusNotFound)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())

				entry.Info("service answered %d for a non-existent book reference", resp.StatusCode)
			})
		})

		Describe("Given unusual payloads", func() {
			It("should handle very long names", func() {
				longName := strings.Repeat("a", 1000)

				payload := api.NewAuthorPayload().
					WithID(1).
					WithFirstName(longName).
					WithLastName(longName).
					WithBookID(1).
					Build()

				resp, err := authors.Update(ctx, 1, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(validate.StatusOneOf(resp, http.StatusOK, http.StatusBadRequest, http.StatusRequestEntityTooLarge)).To(Succeed())
				Expect(validate.ResponseTime(resp, 5*time.Second)).To(Succeed())

				entry.Info("service answered %d for 1000-character names", resp.StatusCode)
			})

			It("should document the behavior for mismatched path and body ids", func() {
				payload := api.NewAuthorPayload().
					WithID(2).
					WithFirstName("Mismatch" + api.GenerateTestID()).
					WithLastName("Test").
					WithBookID(1).
					Build()

				resp, err := authors.Update(ctx, 1, payload)
				Expect(err).NotTo(HaveOccurred())

				// The service may honor the path id, honor the body id, or refuse.
				Expect(validate.StatusOneOf(resp, http.StatusOK, http.StatusBadRequest, http.StatusConflict)).To(Succeed())
				Expect(validate.ResponseTime(resp, 3*time.Second)).To(Succeed())

				entry.Info("service answered %d for path id 1 with body id 2", resp.StatusCode)
			})
		})
	})
})
