// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

/*
Package models defines the data structures shared across Daily MoMA.

Key Components:

  - Artwork: a collection record (Title, Artist, Date, Medium, Department,
    Classification, ObjectID) using the upstream PascalCase JSON names
  - ArtistNames: artist credit that round-trips either a string or an array
  - ObjectID: identifier accepting JSON numbers or strings
  - ArtworkResponse / CacheInfo: body of GET /api/artwork
  - ImageResponse: body of GET /api/image
  - APIResponse / HealthStatus / ReadinessStatus: operational endpoints

Usage Example:

	import "github.com/tomtom215/dailymoma/internal/models"

	art := models.Artwork{
	    Title:    "The Starry Night",
	    Artist:   models.SingleArtist("Vincent van Gogh"),
	    Date:     "1889",
	    Medium:   "Oil on canvas",
	    ObjectID: "79802",
	}

Thread Safety:

Model values are plain data. Artwork values handed out by the dataset and
cache packages are shared between goroutines and must be treated as
read-only.
*/
package models
