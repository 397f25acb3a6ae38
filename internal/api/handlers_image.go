// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tomtom215/dailymoma/internal/logging"
	"github.com/tomtom215/dailymoma/internal/models"
	"github.com/tomtom215/dailymoma/internal/validation"
)

const (
	imageSourcePlaceholder = "placeholder"
	imageNote              = "Image scraping temporarily disabled due to MoMA blocking requests"
)

// ImageQuery is the validated form of the image request parameters.
type ImageQuery struct {
	ObjectID string `validate:"required,object_id,max=64"`
}

// Image resolves an image URL for an artwork.
//
// @Summary Resolve an artwork image URL
// @Description Returns a placeholder image URL for the object. Any ":suffix" on the object ID is dropped.
// @Tags Artwork
// @Produce json
// @Param objectId query string true "Collection object ID"
// @Success 200 {object} models.ImageResponse "Image URL"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid object ID"
// @Router /image [get]
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	q := ImageQuery{ObjectID: r.URL.Query().Get("objectId")}
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondFlatError(w, http.StatusBadRequest, verr.Error())
		return
	}

	id, _, _ := strings.Cut(q.ObjectID, ":")
	id = strings.TrimSpace(id)

	logging.Ctx(r.Context()).Debug().Str("object_id", sanitizeLogValue(id)).Msg("Returning placeholder image")

	respondFlat(w, http.StatusOK, cachePublicShort, models.ImageResponse{
		ImageURL: fmt.Sprintf(h.placeholderURL, url.QueryEscape(id)),
		Source:   imageSourcePlaceholder,
		ObjectID: id,
		Note:     imageNote,
	})
}
