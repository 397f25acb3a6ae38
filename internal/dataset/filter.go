// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package dataset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/tomtom215/dailymoma/internal/models"
)

// Titles must be longer than this many characters.
const minTitleRunes = 5

var excludedTitleWords = []string{"untitled", "study"}

// parseCollection decodes the payload as a JSON array of records. Elements
// that are not decodable record objects are skipped; rawCount still counts
// them.
func parseCollection(body []byte) (records []models.Artwork, rawCount int, err error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, 0, ErrEmptyCollection
	}
	if trimmed[0] != '[' {
		if !json.Valid(trimmed) {
			return nil, 0, ErrMalformedPayload
		}
		return nil, 0, ErrNotArray
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if len(elements) == 0 {
		return nil, 0, ErrEmptyCollection
	}

	records = make([]models.Artwork, 0, len(elements))
	for _, el := range elements {
		el = bytes.TrimSpace(el)
		if len(el) == 0 || el[0] != '{' {
			continue
		}
		var art models.Artwork
		if err := json.Unmarshal(el, &art); err != nil {
			continue
		}
		records = append(records, art)
	}
	return records, len(elements), nil
}

// Eligible reports whether a record may be shown: all of Title, Artist, Date,
// Medium and ObjectID present, a title longer than five characters, and no
// "untitled" or "study" in the title.
func Eligible(a models.Artwork) bool {
	if a.Title == "" || a.Artist.IsEmpty() || a.Date == "" || a.Medium == "" || a.ObjectID == "" {
		return false
	}
	if utf8.RuneCountInString(a.Title) <= minTitleRunes {
		return false
	}
	lower := strings.ToLower(a.Title)
	for _, word := range excludedTitleWords {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}

// Filter returns the eligible records in their original order.
func Filter(records []models.Artwork) []models.Artwork {
	out := make([]models.Artwork, 0, len(records))
	for i := range records {
		if Eligible(records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

// Downsample keeps every Nth record, N = len(records)/target, preserving order
// and truncating to target. With fewer records than target all are kept.
func Downsample(records []models.Artwork, target int) []models.Artwork {
	if target <= 0 {
		return []models.Artwork{}
	}
	step := len(records) / target
	if step == 0 {
		out := make([]models.Artwork, len(records))
		copy(out, records)
		return out
	}

	out := make([]models.Artwork, 0, target)
	for i := 0; i < len(records) && len(out) < target; i += step {
		out = append(out, records[i])
	}
	return out
}
