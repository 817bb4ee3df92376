// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrCorruptData reports a library file that exists but cannot be parsed as
// a JSON book array. Load surfaces it instead of treating the file as empty,
// so a later Save cannot clobber content the user might still repair.
var ErrCorruptData = errors.New("library file is corrupt")

// Store persists a catalog as a JSON array in a single file. The path is
// fixed at construction; one store owns one file.
type Store struct {
	path string
}

// NewStore returns a store backed by the given file path. No I/O happens
// until Load or Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the catalog from disk. A missing file is a fresh start and
// yields an empty catalog with no error. A file that does not parse as a
// JSON book array yields an error wrapping ErrCorruptData.
func (s *Store) Load() (*Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCatalog(), nil
		}
		return nil, fmt.Errorf("read library file: %w", err)
	}

	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptData, s.path, err)
	}

	slog.Debug("library loaded", "path", s.path, "books", len(books))
	return &Catalog{books: books}, nil
}

// Save writes the whole catalog atomically: marshal, write a uniquely named
// temp file in the same directory, rename over the target. Readers never
// observe a half-written file.
func (s *Store) Save(c *Catalog) error {
	books := c.books
	if books == nil {
		books = []Book{}
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create library directory: %w", err)
	}

	tmp := fmt.Sprintf("%s.tmp-%s", s.path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write library file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace library file: %w", err)
	}

	slog.Debug("library saved", "path", s.path, "books", len(books))
	return nil
}
