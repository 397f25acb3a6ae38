// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/dailymoma/internal/logging"
	"github.com/tomtom215/dailymoma/internal/middleware"
	"github.com/tomtom215/dailymoma/internal/models"
)

const (
	cachePublicShort = "public, max-age=60"
	cacheNoStore     = "no-store"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// writeJSON marshals v and writes it with an ETag. HTML characters are left
// unescaped so collection text such as "Drawings & Prints" is sent verbatim.
func writeJSON(w http.ResponseWriter, status int, cacheControl string, v interface{}) {
	data, err := json.MarshalNoEscape(v)
	if err != nil {
		logging.Err(err).Msg("Failed to marshal JSON response")
		status = http.StatusInternalServerError
		cacheControl = cacheNoStore
		data, _ = json.MarshalNoEscape(errorEnvelope(models.ErrCodeInternal, "Failed to encode response", nil, nil))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Err(err).Msg("Failed to write JSON response")
	}
}

// respondJSON sends an enveloped response, used by the operational endpoints.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	writeJSON(w, status, cacheNoStore, response)
}

// respondFlat sends a bare JSON body, used by the public artwork and image
// endpoints whose shape is fixed by their clients.
func respondFlat(w http.ResponseWriter, status int, cacheControl string, v interface{}) {
	writeJSON(w, status, cacheControl, v)
}

// respondFlatError sends {"error": message}.
func respondFlatError(w http.ResponseWriter, status int, message string) {
	respondFlat(w, status, cacheNoStore, models.ErrorResponse{Error: message})
}

// respondError sends an enveloped error response. data may carry the partial
// payload (for example readiness diagnostics); the request ID is echoed in
// the error details.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, data interface{}, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Warn().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	var details map[string]interface{}
	if id := middleware.GetRequestID(r.Context()); id != "" {
		details = map[string]interface{}{"request_id": id}
	}
	respondJSON(w, status, errorEnvelope(code, message, details, data))
}

func errorEnvelope(code, message string, details map[string]interface{}, data interface{}) *models.APIResponse {
	return &models.APIResponse{
		Status: "error",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// generateETag returns a weak FNV-1a ETag; the body may be served
// gzip-encoded or plain.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `W/"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// notFound and methodNotAllowed replace chi's plain-text defaults.
func notFound(w http.ResponseWriter, _ *http.Request) {
	respondFlatError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	respondFlatError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
