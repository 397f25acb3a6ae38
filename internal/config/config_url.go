// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package config

import (
	"fmt"
	"net/url"
)

// validateCollectionURL validates an absolute HTTP/HTTPS URL.
// Paths and query strings are allowed; credentials are not.
func validateCollectionURL(rawURL, fieldName string) error {
	if rawURL == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.User != nil {
		return fmt.Errorf("%s must not embed credentials", fieldName)
	}

	return nil
}

// validateOrigin validates a CORS origin: scheme and host only.
func validateOrigin(origin string) error {
	parsedURL, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("failed to parse origin: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("host is required")
	}

	// Allow trailing slash but no other paths
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("origin should not contain a path: %s", parsedURL.Path)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("origin should not contain query parameters")
	}

	return nil
}
