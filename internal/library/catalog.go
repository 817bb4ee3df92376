// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"strings"
)

// ClearStatus reports the outcome of a Clear call.
type ClearStatus string

const (
	ClearStatusCleared              ClearStatus = "cleared"
	ClearStatusConfirmationRequired ClearStatus = "confirmation_required"
)

// Catalog is the in-memory book collection. Insertion order is preserved
// across every operation and save/load cycle. Methods mutate in place;
// persisting the result is the caller's job.
type Catalog struct {
	books []Book
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add validates the book and appends it. An invalid book leaves the catalog
// untouched and returns a *ValidationError naming the failing fields.
func (c *Catalog) Add(b Book) error {
	if err := b.Validate(); err != nil {
		return err
	}
	c.books = append(c.books, b)
	return nil
}

// Remove deletes every book whose title matches case-insensitively and
// returns the number removed. Zero matches is not an error.
func (c *Catalog) Remove(title string) int {
	kept := c.books[:0]
	for _, b := range c.books {
		if strings.EqualFold(b.Title, title) {
			continue
		}
		kept = append(kept, b)
	}
	removed := len(c.books) - len(kept)
	c.books = kept
	return removed
}

// Search returns the books whose title or author contains the query,
// case-insensitively, in catalog order. An empty query matches nothing.
func (c *Catalog) Search(query string) []Book {
	if query == "" {
		return nil
	}

	q := strings.ToLower(query)
	var matches []Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) {
			matches = append(matches, b)
		}
	}
	return matches
}

// ListAll returns every book in insertion order. The slice is a copy, so
// callers cannot reach into catalog state through it.
func (c *Catalog) ListAll() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Clear empties the catalog, but only when the caller confirms. The first,
// unconfirmed call is a no-op reporting ClearStatusConfirmationRequired.
func (c *Catalog) Clear(confirmed bool) ClearStatus {
	if !confirmed {
		return ClearStatusConfirmationRequired
	}
	c.books = nil
	return ClearStatusCleared
}
