// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package api

import (
	"net/http"

	"github.com/tomtom215/dailymoma/internal/models"
)

// Artwork returns the two artworks for a date.
//
// The endpoint always answers 200. Problems with the date or the dataset
// produce a body with source "sample" and an error message instead.
//
// @Summary Get the artworks of the day
// @Description Returns two deterministically selected artworks for the given date (default today). Dates before 2024-09-01 or after today are clamped.
// @Tags Artwork
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} models.ArtworkResponse "Selected artworks (source moma or sample)"
// @Router /artwork [get]
func (h *Handler) Artwork(w http.ResponseWriter, r *http.Request) {
	var rawDate *string
	if q := r.URL.Query(); q.Has("date") {
		d := q.Get("date")
		rawDate = &d
	}

	resp := h.artworks.Handle(r.Context(), rawDate)

	cacheControl := cachePublicShort
	if resp.Source != models.SourceMoMA {
		cacheControl = cacheNoStore
	}
	respondFlat(w, http.StatusOK, cacheControl, resp)
}
