// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmptyCatalog(t *testing.T) {
	s := Summarize(NewCatalog())

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.ReadCount)
	assert.Equal(t, 0.0, s.PercentRead)
	require.NotNil(t, s.GenreHistogram)
	assert.Empty(t, s.GenreHistogram)
}

func TestSummarize(t *testing.T) {
	c := testCatalog(t)
	s := Summarize(c)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.ReadCount)
	assert.Equal(t, 66.67, s.PercentRead)
	assert.Equal(t, map[string]int{"Science Fiction": 2, "Fantasy": 1}, s.GenreHistogram)
}

func TestSummarizePercentRounding(t *testing.T) {
	t.Run("half reads to an even 50.00", func(t *testing.T) {
		c := NewCatalog()
		require.NoError(t, c.Add(validBook()))
		require.NoError(t, c.Add(Book{Title: "Foundation", Author: "Isaac Asimov", Year: yearPtr(1951), Genre: "Science Fiction"}))

		assert.Equal(t, 50.0, Summarize(c).PercentRead)
	})

	t.Run("thirds round to two decimals", func(t *testing.T) {
		c := NewCatalog()
		require.NoError(t, c.Add(validBook()))
		require.NoError(t, c.Add(Book{Title: "Foundation", Author: "Isaac Asimov", Year: yearPtr(1951), Genre: "Science Fiction"}))
		require.NoError(t, c.Add(Book{Title: "Hyperion", Author: "Dan Simmons", Year: yearPtr(1989), Genre: "Science Fiction"}))

		assert.Equal(t, 33.33, Summarize(c).PercentRead)
	})
}

func TestSummarizeGenreKeysAreExact(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Add(Book{Title: "Dune", Author: "Frank Herbert", Year: yearPtr(1965), Genre: "Sci-Fi"}))
	require.NoError(t, c.Add(Book{Title: "Foundation", Author: "Isaac Asimov", Year: yearPtr(1951), Genre: "sci-fi"}))

	s := Summarize(c)
	assert.Equal(t, map[string]int{"Sci-Fi": 1, "sci-fi": 1}, s.GenreHistogram)
}
