// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package upstream

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an UpstreamError. The values double as metric labels.
type ErrorKind string

const (
	// ErrorKindTransport: the request never produced a response.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindStatus: the API answered with a non-2xx status.
	ErrorKindStatus ErrorKind = "status"
	// ErrorKindDecode: the response body was not valid JSON.
	ErrorKindDecode ErrorKind = "decode"
	// ErrorKindCredentials: no API key is configured.
	ErrorKindCredentials ErrorKind = "credentials"
)

var (
	// ErrNoPodcastsFound is returned when a default podcast is needed and the
	// account has none.
	ErrNoPodcastsFound = errors.New("No podcasts found associated with this API key") //nolint:staticcheck // user-facing text

	// ErrInvalidParameterCombination is returned when a date range and
	// days_since_published are both given for episode analytics.
	ErrInvalidParameterCombination = errors.New("Cannot use 'from_date'/'to_date' and 'days_since_published' together.") //nolint:staticcheck // user-facing text

	// ErrMissingAPIKey is the cause of every credentials-kind UpstreamError.
	ErrMissingAPIKey = errors.New("no API key configured (set PODIGEE_API_KEY)")
)

// UpstreamError is the single failure kind of the access layer.
type UpstreamError struct {
	Resource   string // path template, e.g. "podcasts/{id}/analytics"
	StatusCode int    // 0 when no response was received
	Kind       ErrorKind
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Kind == ErrorKindDecode {
		return fmt.Sprintf("Error during API request: %v", e.Err)
	}
	return fmt.Sprintf("Failed to fetch data from Podigee API: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamError reports whether err carries an *UpstreamError.
func IsUpstreamError(err error) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr)
}
