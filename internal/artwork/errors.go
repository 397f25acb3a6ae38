// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package artwork

import (
	"errors"
)

// InvalidDateMessage is the client-facing text for unparseable dates.
const InvalidDateMessage = "Invalid date format. Use YYYY-MM-DD"

// ErrInvalidDate is the sentinel wrapped by date ValidationErrors.
var ErrInvalidDate = errors.New("invalid date")

// ValidationError reports a request parameter that could not be used.
// Error returns the client-facing message; errors.Is matches ErrInvalidDate
// and errors.As reaches the underlying cause.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	cause   error
}

func newInvalidDate(value string, cause error) *ValidationError {
	return &ValidationError{
		Field:   "date",
		Value:   value,
		Message: InvalidDateMessage,
		cause:   cause,
	}
}

// Error implements error.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap exposes both the sentinel and the cause.
func (e *ValidationError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidDate}
	}
	return []error{ErrInvalidDate, e.cause}
}
