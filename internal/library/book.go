// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package library implements the book catalog core: the record model, the
// in-memory catalog operations, JSON file persistence and the plain-text
// interchange format.
package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MinYear is the oldest publication year a record may carry.
const MinYear = 1000

// Book is a single catalog record. Books carry no identity beyond their
// field values; duplicates are allowed.
type Book struct {
	Title      string `json:"title" yaml:"title" validate:"required"`
	Author     string `json:"author" yaml:"author" validate:"required"`
	Year       *int   `json:"year" yaml:"year" validate:"required,pubyear"` // nil = unknown
	Genre      string `json:"genre" yaml:"genre" validate:"required"`
	ReadStatus bool   `json:"read_status" yaml:"read_status"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("pubyear", validatePubYear)
}

// validatePubYear accepts years from MinYear through the current calendar year.
func validatePubYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= MinYear && year <= int64(time.Now().Year())
}

// FieldError describes one invalid field of a rejected book.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every field that kept a book out of the catalog.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "invalid book: " + strings.Join(msgs, "; ")
}

// Validate checks the record against the catalog rules: title, author and
// genre must be non-empty, year must be present and lie in [MinYear, current
// year]. The returned error is a *ValidationError naming each failing field.
func (b Book) Validate() error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	verr := &ValidationError{}
	for _, fe := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "pubyear":
			message = fmt.Sprintf("%s must be between %d and %d", field, MinYear, time.Now().Year())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		verr.Fields = append(verr.Fields, FieldError{Field: field, Message: message})
	}
	return verr
}
