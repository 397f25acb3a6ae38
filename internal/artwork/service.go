// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package artwork

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tomtom215/dailymoma/internal/cache"
	"github.com/tomtom215/dailymoma/internal/dataset"
	"github.com/tomtom215/dailymoma/internal/logging"
	"github.com/tomtom215/dailymoma/internal/metrics"
	"github.com/tomtom215/dailymoma/internal/models"
	"github.com/tomtom215/dailymoma/internal/selector"
	"github.com/tomtom215/dailymoma/internal/validation"
)

// Fallback reasons recorded in artwork_fallbacks_total.
const (
	reasonInvalidDate = "invalid_date"
	reasonEmptyList   = "empty_list"
	reasonInternal    = "internal"
)

// ListSource supplies the current candidate list; *cache.Manager in
// production.
type ListSource interface {
	GetArtworkList(ctx context.Context, now time.Time) ([]models.Artwork, cache.Info)
}

// Query is the validated form of the artwork request parameters.
type Query struct {
	Date string `validate:"omitempty,calendar_date"`
}

// Service answers artwork-of-the-day requests.
//
// Handle never fails: any problem with the date, the list or the selection
// produces a "sample" response built from the five-record sample list.
type Service struct {
	lists    ListSource
	selector *selector.Selector
	now      func() time.Time
	sample   []models.Artwork
}

// NewService wires the list source and selector. now should be the same
// clock the selector uses; nil means time.Now.
func NewService(lists ListSource, sel *selector.Selector, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		lists:    lists,
		selector: sel,
		now:      now,
		sample:   dataset.Sample(),
	}
}

// Selector returns the selector used for picks and date clamping.
func (s *Service) Selector() *selector.Selector {
	return s.selector
}

// Handle selects the two artworks for rawDate (nil or empty means today).
func (s *Service) Handle(ctx context.Context, rawDate *string) (resp models.ArtworkResponse) {
	effective := s.selector.Today()

	defer func() {
		if r := recover(); r != nil {
			resp = s.degraded(ctx, effective, fmt.Errorf("internal error: %v", r), reasonInternal)
		}
	}()

	date, err := s.parseDate(rawDate)
	if err != nil {
		return s.degraded(ctx, effective, err, reasonInvalidDate)
	}
	effective = s.selector.Clamp(date)

	list, info := s.lists.GetArtworkList(ctx, s.now())

	a1, a2, err := s.selector.SelectTwo(effective, list)
	if err != nil {
		reason := reasonInternal
		if errors.Is(err, selector.ErrEmptyList) {
			reason = reasonEmptyList
		}
		return s.degraded(ctx, effective, err, reason)
	}

	metrics.RecordArtworkResponse(models.SourceMoMA, "")
	logging.Ctx(ctx).Debug().
		Str("date", effective.Format(selector.DateLayout)).
		Str("artwork1", a1.Title).
		Str("artwork2", a2.Title).
		Bool("cached", info.Cached).
		Msg("Artworks selected")

	return models.ArtworkResponse{
		Artwork1:      a1,
		Artwork2:      a2,
		TotalArtworks: len(list),
		Source:        models.SourceMoMA,
		Date:          effective.Format(selector.DateLayout),
		CacheInfo: &models.CacheInfo{
			Cached:   info.Cached,
			CacheAge: int(math.Round(info.Age.Minutes())),
		},
	}
}

// parseDate accepts YYYY-MM-DD (in the selection zone) or an RFC 3339
// timestamp (converted to the selection zone).
func (s *Service) parseDate(rawDate *string) (time.Time, error) {
	if rawDate == nil || strings.TrimSpace(*rawDate) == "" {
		return s.selector.Today(), nil
	}
	raw := strings.TrimSpace(*rawDate)

	if verr := validation.ValidateStruct(&Query{Date: raw}); verr != nil {
		return time.Time{}, newInvalidDate(raw, verr)
	}

	loc := s.selector.Location()
	if d, err := time.ParseInLocation(selector.DateLayout, raw, loc); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, newInvalidDate(raw, err)
	}
	return t.In(loc), nil
}

// degraded selects from the sample list for date and reports err.
func (s *Service) degraded(ctx context.Context, date time.Time, err error, reason string) models.ArtworkResponse {
	metrics.RecordArtworkResponse(models.SourceSample, reason)
	logging.Ctx(ctx).Warn().Err(err).Str("reason", reason).Msg("Serving sample artworks")

	resp := models.ArtworkResponse{
		TotalArtworks: len(s.sample),
		Source:        models.SourceSample,
		Error:         err.Error(),
	}
	if a1, a2, selErr := s.selector.SelectTwo(date, s.sample); selErr == nil {
		resp.Artwork1, resp.Artwork2 = a1, a2
	}
	return resp
}
