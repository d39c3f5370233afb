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

// Package datagen produces sample books and authors for the test suites.
// Values are drawn from fixed pools so failures read naturally in reports,
// with timestamp suffixes where a test needs payloads it can tell apart.
// Creation variants carry no id; the service assigns one. The id counters
// exist only to keep in-memory samples distinct and start well above the
// service's seeded catalogue.
package datagen

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/models"
)

const (
	firstBookID   = 1000
	firstAuthorID = 2000
)

//nolint:gochecknoglobals
var (
	bookIDs   atomic.Int64
	authorIDs atomic.Int64
)

//nolint:gochecknoglobals
var bookTitles = []string{
	"The Great Adventure", "Mystery of the Lost City", "Future Horizons",
	"Tales of Wonder", "Journey Through Time", "Secrets of the Universe",
	"The Last Guardian", "Digital Dreams", "Whispers in the Wind",
	"Chronicles of Tomorrow", "The Hidden Truth", "Beyond the Stars",
}

//nolint:gochecknoglobals
var bookDescriptions = []string{
	"A captivating story that will keep you on the edge of your seat",
	"An epic adventure through unknown realms and mysterious lands",
	"A thought-provoking tale about the future of humanity",
	"A heartwarming story of friendship and courage",
	"An thrilling journey through time and space",
}

//nolint:gochecknoglobals
var bookExcerpts = []string{
	"In the beginning, there was darkness. Then came the light...",
	"The old man looked at the horizon, knowing his time had come...",
	"She opened the book and immediately felt transported to another world...",
	"The sound of footsteps echoed through the empty corridor...",
	"It was a dark and stormy night when everything changed...",
}

//nolint:gochecknoglobals
var firstNames = []string{
	"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Lisa",
	"William", "Jessica", "James", "Ashley", "Daniel", "Amanda", "Christopher",
	"Stephanie", "Matthew", "Melissa", "Anthony", "Nicole",
}

//nolint:gochecknoglobals
var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

// NextBookID returns a fresh local book id, counting up from 1000.
func NextBookID() int {
	return firstBookID + int(bookIDs.Add(1)) - 1
}

// NextAuthorID returns a fresh local author id, counting up from 2000.
func NextAuthorID() int {
	return firstAuthorID + int(authorIDs.Add(1)) - 1
}

// RandomBook returns a fully populated book with a fresh local id.
func RandomBook() models.Book {
	return models.Book{
		ID:          NextBookID(),
		Title:       pick(bookTitles),
		Description: pick(bookDescriptions),
		PageCount:   RandomInt(50, 550),
		Excerpt:     pick(bookExcerpts),
		PublishDate: RandomPastDate(),
	}
}

// BookWithTitle returns a creation payload pinned to the given title, with
// the remaining fields derived from it.
func BookWithTitle(title string) models.Book {
	return models.Book{
		Title:       title,
		Description: "Auto-generated description for: " + title,
		PageCount:   RandomInt(100, 500),
		Excerpt:     "This is an excerpt from " + title,
		PublishDate: RandomPastDate(),
	}
}

// BookForCreation returns a creation payload with a timestamp-suffixed
// title, so repeated runs never collide on it.
func BookForCreation() models.Book {
	return models.Book{
		Title:       pick(bookTitles) + " " + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Description: pick(bookDescriptions),
		PageCount:   RandomInt(100, 500),
		Excerpt:     pick(bookExcerpts),
		PublishDate: time.Now().UTC().Format(time.RFC3339),
	}
}

// InvalidBook returns a payload that breaks every field constraint at once.
func InvalidBook() models.Book {
	return models.Book{
		ID:          -1,
		Title:       "",
		Description: "",
		PageCount:   -10,
		Excerpt:     "",
		PublishDate: "",
	}
}

// OversizedBook returns a payload with the boundary-sized field values the
// creation scenarios push at the service.
func OversizedBook() models.Book {
	return models.Book{
		Title:       strings.Repeat("Very Long Title ", 100),
		Description: strings.Repeat("Very long description content ", 1000),
		PageCount:   999999,
		Excerpt:     pick(bookExcerpts),
		PublishDate: time.Now().UTC().Format(time.RFC3339),
	}
}

// RandomAuthor returns a fully populated author with a fresh local id,
// attached to a random book in the seeded catalogue.
func RandomAuthor() models.Author {
	return models.Author{
		ID:        NextAuthorID(),
		IDBook:    RandomInt(1, 101),
		FirstName: pick(firstNames),
		LastName:  pick(lastNames),
	}
}

// AuthorForBook returns an author attached to the given book.
func AuthorForBook(bookID int) models.Author {
	return models.Author{
		ID:        NextAuthorID(),
		IDBook:    bookID,
		FirstName: pick(firstNames),
		LastName:  pick(lastNames),
	}
}

// AuthorForCreation returns a creation payload without an id.
func AuthorForCreation() models.Author {
	return models.Author{
		IDBook:    RandomInt(1, 101),
		FirstName: pick(firstNames),
		LastName:  pick(lastNames),
	}
}

// AuthorWithNames returns an author pinned to the given names.
func AuthorWithNames(firstName, lastName string) models.Author {
	return models.Author{
		ID:        NextAuthorID(),
		IDBook:    RandomInt(1, 101),
		FirstName: firstName,
		LastName:  lastName,
	}
}

// InvalidAuthor returns a payload that breaks every field constraint.
func InvalidAuthor() models.Author {
	return models.Author{
		ID:        -1,
		IDBook:    -1,
		FirstName: "",
		LastName:  "",
	}
}

// UniqueString suffixes the prefix with the current time in milliseconds.
func UniqueString(prefix string) string {
	return prefix + "_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// RandomInt returns a uniform value in [min, max).
func RandomInt(minimum, maximum int) int {
	return minimum + rand.IntN(maximum-minimum)
}

// RandomPastDate returns a UTC midnight on a uniformly chosen day within
// the past ten years, formatted as RFC 3339.
func RandomPastDate() string {
	now := time.Now().UTC()

	days := int(now.Sub(now.AddDate(-10, 0, 0)).Hours() / 24)

	day := now.AddDate(0, 0, -rand.IntN(days))

	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
}

func pick(pool []string) string {
	return pool[rand.IntN(len(pool))]
}
