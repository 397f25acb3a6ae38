// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package dataset

import (
	"context"
	"errors"
	"net"

	gobreaker "github.com/sony/gobreaker/v2"
)

// Upstream fetch errors. All of them are absorbed by Provider, which falls
// back to the curated baseline.
var (
	ErrUpstreamStatus   = errors.New("upstream returned non-success status")
	ErrLFSPointer       = errors.New("upstream returned a Git LFS pointer instead of the collection")
	ErrPayloadTooLarge  = errors.New("upstream payload exceeds size limit")
	ErrMalformedPayload = errors.New("upstream payload is not valid JSON")
	ErrNotArray         = errors.New("upstream payload is not a JSON array")
	ErrEmptyCollection  = errors.New("upstream collection is empty")
	ErrThrottled        = errors.New("upstream fetch throttled")
)

// errorType maps a fetch error to a low-cardinality metrics label.
func errorType(err error) string {
	var netErr net.Error
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrThrottled):
		return "throttled"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, ErrLFSPointer):
		return "lfs_pointer"
	case errors.Is(err, ErrUpstreamStatus):
		return "http_status"
	case errors.Is(err, ErrPayloadTooLarge):
		return "payload_too_large"
	case errors.Is(err, ErrMalformedPayload):
		return "malformed"
	case errors.Is(err, ErrNotArray):
		return "not_array"
	case errors.Is(err, ErrEmptyCollection):
		return "empty"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	default:
		return "transport"
	}
}
