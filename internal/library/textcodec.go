// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

// The interchange format is line-oriented plain text: five labelled lines
// per record followed by a 30-dash delimiter.
//
//	Title: Dune
//	Author: Frank Herbert
//	Year: 1965
//	Genre: Science Fiction
//	Read: Yes
//	------------------------------
//
// Decode is deliberately more tolerant than Encode is strict: unrecognized
// lines are skipped, a record completes on its Read: line, and a year that
// does not parse leaves the field unset instead of failing the import.

const recordDelimiter = "------------------------------" // 30 dashes

const (
	labelTitle  = "Title: "
	labelAuthor = "Author: "
	labelYear   = "Year: "
	labelGenre  = "Genre: "
	labelRead   = "Read: "
)

// Scanner token cap. A single field line should never get anywhere near it.
const maxLineBytes = 1 << 20

// Encode renders the catalog in the interchange format, one record after
// another in catalog order. A nil year renders as an empty value.
func Encode(c *Catalog) []byte {
	var buf bytes.Buffer
	for _, b := range c.books {
		year := ""
		if b.Year != nil {
			year = strconv.Itoa(*b.Year)
		}
		read := "No"
		if b.ReadStatus {
			read = "Yes"
		}

		fmt.Fprintf(&buf, "%s%s\n", labelTitle, b.Title)
		fmt.Fprintf(&buf, "%s%s\n", labelAuthor, b.Author)
		fmt.Fprintf(&buf, "%s%s\n", labelYear, year)
		fmt.Fprintf(&buf, "%s%s\n", labelGenre, b.Genre)
		fmt.Fprintf(&buf, "%s%s\n", labelRead, read)
		buf.WriteString(recordDelimiter + "\n")
	}
	return buf.Bytes()
}

// Decode parses the interchange format back into a catalog. Labels must
// match Encode's output exactly; text values are taken verbatim while the
// Year and Read values are whitespace-trimmed before interpretation, so
// Decode(Encode(c)) reproduces c field for field. A record is appended the
// moment its Read: line is consumed; partial records at end of input are
// dropped. Decode fails only when the input cannot be read as text at all.
func Decode(r io.Reader) (*Catalog, error) {
	c := NewCatalog()
	var cur Book

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("decode library text: input is not valid UTF-8")
		}

		switch {
		case strings.HasPrefix(line, labelTitle):
			cur.Title = strings.TrimPrefix(line, labelTitle)
		case strings.HasPrefix(line, labelAuthor):
			cur.Author = strings.TrimPrefix(line, labelAuthor)
		case strings.HasPrefix(line, labelYear):
			raw := strings.TrimSpace(strings.TrimPrefix(line, labelYear))
			if year, err := strconv.Atoi(raw); err == nil {
				cur.Year = &year
			} else {
				cur.Year = nil
				if raw != "" {
					slog.Warn("year is not numeric, leaving it unset", "value", raw)
				}
			}
		case strings.HasPrefix(line, labelGenre):
			cur.Genre = strings.TrimPrefix(line, labelGenre)
		case strings.HasPrefix(line, labelRead):
			cur.ReadStatus = strings.TrimSpace(strings.TrimPrefix(line, labelRead)) == "Yes"
			c.books = append(c.books, cur)
			cur = Book{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read library text: %w", err)
	}
	return c, nil
}
