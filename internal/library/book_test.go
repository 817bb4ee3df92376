// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yearPtr(y int) *int {
	return &y
}

func validBook() Book {
	return Book{
		Title:      "Dune",
		Author:     "Frank Herbert",
		Year:       yearPtr(1965),
		Genre:      "Science Fiction",
		ReadStatus: true,
	}
}

func TestBookValidate(t *testing.T) {
	t.Run("valid book passes", func(t *testing.T) {
		require.NoError(t, validBook().Validate())
	})

	t.Run("current year is accepted", func(t *testing.T) {
		b := validBook()
		b.Year = yearPtr(time.Now().Year())
		require.NoError(t, b.Validate())
	})

	tests := []struct {
		name      string
		mutate    func(*Book)
		wantField string
	}{
		{
			name:      "empty title",
			mutate:    func(b *Book) { b.Title = "" },
			wantField: "title",
		},
		{
			name:      "empty author",
			mutate:    func(b *Book) { b.Author = "" },
			wantField: "author",
		},
		{
			name:      "empty genre",
			mutate:    func(b *Book) { b.Genre = "" },
			wantField: "genre",
		},
		{
			name:      "missing year",
			mutate:    func(b *Book) { b.Year = nil },
			wantField: "year",
		},
		{
			name:      "year before 1000",
			mutate:    func(b *Book) { b.Year = yearPtr(999) },
			wantField: "year",
		},
		{
			name:      "year in the future",
			mutate:    func(b *Book) { b.Year = yearPtr(time.Now().Year() + 1) },
			wantField: "year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBook()
			tt.mutate(&b)

			err := b.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.wantField, verr.Fields[0].Field)
			assert.Contains(t, verr.Fields[0].Message, tt.wantField)
		})
	}

	t.Run("every failing field is named", func(t *testing.T) {
		err := Book{}.Validate()
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))

		var fields []string
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{"title", "author", "year", "genre"}, fields)
	})

	t.Run("year bound message tracks the calendar", func(t *testing.T) {
		b := validBook()
		b.Year = yearPtr(999)

		var verr *ValidationError
		require.True(t, errors.As(b.Validate(), &verr))
		assert.Contains(t, verr.Fields[0].Message, fmt.Sprintf("between %d and %d", MinYear, time.Now().Year()))
	})
}
