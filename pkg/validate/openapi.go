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

package validate

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/bookstore"
	"github.com/bookstore-qa/bookstore-api-tests/pkg/faults"
)

// openapiDocument is the service's published contract, trimmed to the
// resources the harness exercises.
//
//go:embed openapi.json
var openapiDocument []byte

// SchemaValidator checks response bodies against the OpenAPI schemas the
// service publishes, catching drift the field-level checks cannot see,
// such as a string where an integer belongs or a field nobody declared.
type SchemaValidator struct {
	book   *openapi3.Schema
	author *openapi3.Schema
}

// NewSchemaValidator parses and validates the embedded document once, so
// each response validation is a pure in-memory schema visit.
func NewSchemaValidator() (*SchemaValidator, error) {
	ctx := context.Background()

	loader := &openapi3.Loader{Context: ctx}

	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, faults.NewTypedError(faults.ConfigError, "OpenAPIDocument", "cannot parse embedded document", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, faults.NewTypedError(faults.ConfigError, "OpenAPIDocument", "embedded document is invalid", err)
	}

	book, err := lookupSchema(doc, "Book")
	if err != nil {
		return nil, err
	}

	author, err := lookupSchema(doc, "Author")
	if err != nil {
		return nil, err
	}

	return &SchemaValidator{book: book, author: author}, nil
}

func lookupSchema(doc *openapi3.T, name string) (*openapi3.Schema, error) {
	if doc.Components == nil {
		return nil, faults.NewTypedError(faults.ConfigError, "OpenAPIDocument", "document has no components", nil)
	}

	ref, ok := doc.Components.Schemas[name]
	if !ok || ref.Value == nil {
		return nil, faults.NewTypedError(faults.ConfigError, "OpenAPIDocument",
			fmt.Sprintf("schema %q not found", name), nil)
	}

	return ref.Value, nil
}

// ValidateBook checks the response body against the Book schema.
func (v *SchemaValidator) ValidateBook(resp *bookstore.Response) error {
	return validateObject("Book", v.book, resp.Body)
}

// ValidateAuthor checks the response body against the Author schema.
func (v *SchemaValidator) ValidateAuthor(resp *bookstore.Response) error {
	return validateObject("Author", v.author, resp.Body)
}

// ValidateBookList checks every element of a book array response.
func (v *SchemaValidator) ValidateBookList(resp *bookstore.Response) error {
	return validateList("Book", v.book, resp.Body)
}

// ValidateAuthorList checks every element of an author array response.
func (v *SchemaValidator) ValidateAuthorList(resp *bookstore.Response) error {
	return validateList("Author", v.author, resp.Body)
}

func validateObject(name string, schema *openapi3.Schema, body []byte) error {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return faults.NewTypedError(faults.ContractViolation, "OpenAPISchema", "body is not valid JSON", err)
	}

	if err := schema.VisitJSON(decoded); err != nil {
		return faults.NewTypedError(faults.ContractViolation, "OpenAPISchema",
			fmt.Sprintf("body does not match the %s schema", name), err)
	}

	return nil
}

func validateList(name string, schema *openapi3.Schema, body []byte) error {
	var decoded []any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return faults.NewTypedError(faults.ContractViolation, "OpenAPISchema", "body is not a JSON array", err)
	}

	for i, element := range decoded {
		if err := schema.VisitJSON(element); err != nil {
			return faults.NewTypedError(faults.ContractViolation, "OpenAPISchema",
				fmt.Sprintf("element %d does not match the %s schema", i, name), err)
		}
	}

	return nil
}
