package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/datagen"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	rand.Read(bytes)
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// BookPayloadBuilder builds book payloads for testing. Starting from a
// generated valid creation payload, individual fields can be overridden,
// blanked or removed to produce the malformed shapes the negative
// scenarios send.
type BookPayloadBuilder struct {
	payload map[string]interface{}
}

// NewBookPayload creates a new book payload builder with generated defaults.
func NewBookPayload() *BookPayloadBuilder {
	book := datagen.BookForCreation()

	return &BookPayloadBuilder{
		payload: map[string]interface{}{
			"title":       book.Title,
			"description": book.Description,
			"pageCount":   book.PageCount,
			"excerpt":     book.Excerpt,
			"publishDate": book.PublishDate,
		},
	}
}

// WithID sets an explicit id. Creation payloads normally carry none.
func (b *BookPayloadBuilder) WithID(id int) *BookPayloadBuilder {
	b.payload["id"] = id
	return b
}

// WithTitle sets the title (pass empty string to send a blank title).
func (b *BookPayloadBuilder) WithTitle(title string) *BookPayloadBuilder {
	b.payload["title"] = title
	return b
}

// WithDescription sets the description.
func (b *BookPayloadBuilder) WithDescription(description string) *BookPayloadBuilder {
	b.payload["description"] = description
	return b
}

// WithPageCount sets the page count. Accepts any value so scenarios can
// send the wrong type.
func (b *BookPayloadBuilder) WithPageCount(pageCount interface{}) *BookPayloadBuilder {
	b.payload["pageCount"] = pageCount
	return b
}

// WithExcerpt sets the excerpt.
func (b *BookPayloadBuilder) WithExcerpt(excerpt string) *BookPayloadBuilder {
	b.payload["excerpt"] = excerpt
	return b
}

// WithPublishDate sets the publish date. Accepts any value so scenarios
// can send malformed dates.
func (b *BookPayloadBuilder) WithPublishDate(publishDate interface{}) *BookPayloadBuilder {
	b.payload["publishDate"] = publishDate
	return b
}

// WithField sets an arbitrary field to an arbitrary value, including nil.
// This is how null and wrong-type probes are shaped.
func (b *BookPayloadBuilder) WithField(name string, value interface{}) *BookPayloadBuilder {
	b.payload[name] = value
	return b
}

// WithoutField removes a field entirely, for absent-field scenarios.
func (b *BookPayloadBuilder) WithoutField(name string) *BookPayloadBuilder {
	delete(b.payload, name)
	return b
}

// Build returns the completed book payload.
func (b *BookPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}

// AuthorPayloadBuilder builds author payloads for testing.
type AuthorPayloadBuilder struct {
	payload map[string]interface{}
}

// NewAuthorPayload creates a new author payload builder with generated defaults.
func NewAuthorPayload() *AuthorPayloadBuilder {
	author := datagen.AuthorForCreation()

	return &AuthorPayloadBuilder{
		payload: map[string]interface{}{
			"idBook":    author.IDBook,
			"firstName": author.FirstName,
			"lastName":  author.LastName,
		},
	}
}

// WithID sets an explicit id. Creation payloads normally carry none.
func (b *AuthorPayloadBuilder) WithID(id int) *AuthorPayloadBuilder {
	b.payload["id"] = id
	return b
}

// WithBookID sets the book the author is attached to. Accepts any value so
// scenarios can send the wrong type.
func (b *AuthorPayloadBuilder) WithBookID(idBook interface{}) *AuthorPayloadBuilder {
	b.payload["idBook"] = idBook
	return b
}

// WithFirstName sets the first name (pass empty string to send a blank one).
func (b *AuthorPayloadBuilder) WithFirstName(firstName string) *AuthorPayloadBuilder {
	b.payload["firstName"] = firstName
	return b
}

// WithLastName sets the last name.
func (b *AuthorPayloadBuilder) WithLastName(lastName string) *AuthorPayloadBuilder {
	b.payload["lastName"] = lastName
	return b
}

// WithField sets an arbitrary field to an arbitrary value, including nil.
func (b *AuthorPayloadBuilder) WithField(name string, value interface{}) *AuthorPayloadBuilder {
	b.payload[name] = value
	return b
}

// WithoutField removes a field entirely, for absent-field scenarios.
func (b *AuthorPayloadBuilder) WithoutField(name string) *AuthorPayloadBuilder {
	delete(b.payload, name)
	return b
}

// Build returns the completed author payload.
func (b *AuthorPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}
