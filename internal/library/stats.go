// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import "math"

// Summary aggregates catalog statistics for display and export.
type Summary struct {
	Total          int            `json:"total" yaml:"total"`
	ReadCount      int            `json:"read_count" yaml:"read_count"`
	PercentRead    float64        `json:"percent_read" yaml:"percent_read"`
	GenreHistogram map[string]int `json:"genre_histogram" yaml:"genre_histogram"`
}

// Summarize computes totals over the catalog. PercentRead is rounded to two
// decimals and is zero for an empty catalog. Histogram keys are the exact
// genre text, case included; the map is never nil.
func Summarize(c *Catalog) Summary {
	s := Summary{GenreHistogram: make(map[string]int)}
	s.Total = len(c.books)
	for _, b := range c.books {
		if b.ReadStatus {
			s.ReadCount++
		}
		s.GenreHistogram[b.Genre]++
	}
	if s.Total > 0 {
		pct := float64(s.ReadCount) / float64(s.Total) * 100
		s.PercentRead = math.Round(pct*100) / 100
	}
	return s
}
