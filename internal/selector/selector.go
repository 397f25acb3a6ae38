// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

// Package selector derives the two artworks of the day from a calendar date.
//
// The date is reduced to an integer seed, which drives a sine-based
// pseudo-random function; the same (date, list) pair always yields the same
// pair of records in every process.
package selector

import (
	"errors"
	"math"
	"time"

	"github.com/tomtom215/dailymoma/internal/models"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// Offset between the seed of the first and second pick.
const secondPickOffset = 1000

// ErrEmptyList is returned when selection is attempted against an empty list.
var ErrEmptyList = errors.New("artwork list is empty")

// Selector picks two artworks for a calendar date.
//
// Selection is a pure function of (date, list). The selector only holds the
// zone that defines "today" and an injectable clock used for clamping.
type Selector struct {
	loc *time.Location
	now func() time.Time
}

// New creates a Selector for the given zone. A nil zone means UTC and a nil
// clock means time.Now.
func New(loc *time.Location, now func() time.Time) *Selector {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Selector{loc: loc, now: now}
}

// Location returns the selection zone.
func (s *Selector) Location() *time.Location {
	return s.loc
}

// MinDate returns the earliest selectable date (2024-09-01) in the selection zone.
func (s *Selector) MinDate() time.Time {
	return time.Date(2024, time.September, 1, 0, 0, 0, 0, s.loc)
}

// Today returns the current calendar date in the selection zone.
func (s *Selector) Today() time.Time {
	return truncateDay(s.now().In(s.loc), s.loc)
}

// Clamp maps any date into [MinDate, Today]. Only the calendar date of d is
// considered.
func (s *Selector) Clamp(d time.Time) time.Time {
	day := truncateDay(d, s.loc)
	if minDate := s.MinDate(); day.Before(minDate) {
		return minDate
	}
	if today := s.Today(); day.After(today) {
		return today
	}
	return day
}

// SelectTwo returns the two artworks of the day for date. The date is clamped
// first; both picks may be the same record.
func (s *Selector) SelectTwo(date time.Time, list []models.Artwork) (models.Artwork, models.Artwork, error) {
	if len(list) == 0 {
		return models.Artwork{}, models.Artwork{}, ErrEmptyList
	}
	i1, i2 := Indices(Seed(s.Clamp(date)), len(list))
	return list[i1], list[i2], nil
}

// Seed derives the selection seed from the calendar date of d:
// (year*10000 + month*100 + day)*7 + dayOfYear*13.
func Seed(d time.Time) int64 {
	y, m, day := d.Date()
	ymd := int64(y)*10000 + int64(m)*100 + int64(day)
	return ymd*7 + int64(d.YearDay())*13
}

// SeededRandom returns frac(sin(seed) * 10000), a value in [0, 1).
func SeededRandom(seed int64) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// Indices returns the two list positions for seed over a list of length n.
// n must be positive.
func Indices(seed int64, n int) (int, int) {
	return pick(seed, n), pick(seed+secondPickOffset, n)
}

func pick(seed int64, n int) int {
	avg := (SeededRandom(seed) + SeededRandom(seed+1) + SeededRandom(seed+2)) / 3
	i := int(math.Floor(avg * float64(n)))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func truncateDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
