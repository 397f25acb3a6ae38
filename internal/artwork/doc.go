// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

/*
Package artwork turns an artwork-of-the-day request into a response.

The Service resolves the requested date (YYYY-MM-DD or RFC 3339, interpreted
in the selection time zone), clamps it into the valid range, obtains the
candidate list from the cache and asks the selector for the day's pair.

Handle never returns an error. Invalid dates, empty lists and unexpected
panics all produce a response with source "sample", an error message and two
artworks drawn from the five-record sample list.
*/
package artwork
