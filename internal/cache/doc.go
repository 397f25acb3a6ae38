// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

/*
Package cache holds the single in-memory artwork list slot.

# Overview

Manager wraps a Loader (the dataset provider) with a time-bounded slot:
  - Exactly one list resident at a time, replaced whole on reload
  - Fresh while now - FetchedAt < TTL (7 days by default)
  - Curated-only lists may use a shorter FallbackTTL so an upstream outage
    is retried sooner
  - No background refresh and no eviction besides replacement
  - Stale readers are coalesced with golang.org/x/sync/singleflight

# Clock

Callers pass now explicitly, which keeps expiry testable without sleeping:

	list, info := m.GetArtworkList(ctx, time.Now())

# Observability

Hits, misses and reloads are exported as cache_hits_total,
cache_misses_total and cache_reloads_total with cache_type="artworks";
cache_entries tracks the list size.
*/
package cache
