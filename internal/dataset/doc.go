// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

/*
Package dataset builds the candidate artwork list from the MoMA collection.

Pipeline:

 1. Fetch the Artworks.json export over HTTP (User-Agent, timeout, size cap)
 2. Reject Git LFS pointer stubs
 3. Decode the JSON array, skipping elements that are not record objects
 4. Keep records with Title, Artist, Date, Medium and ObjectID, a title
    longer than five characters, and no "untitled" or "study" in the title
 5. Downsample to the configured size by keeping every Nth record
 6. Prepend the 21 curated records

Resilience:

Fetches run through a circuit breaker (sony/gobreaker) and a minimum
interval limiter (x/time/rate). Any failure, including a rejected or
throttled attempt, yields the curated list alone. LoadCandidateList never
returns an error; LoadResult carries the absorbed cause for logs and
metrics.

Example:

	provider := dataset.New(dataset.DefaultConfig())
	list, result := provider.LoadCandidateList(ctx)
	if result.Outcome == dataset.OutcomeCurated {
	    log.Printf("upstream unavailable: %v", result.Err)
	}
*/
package dataset
