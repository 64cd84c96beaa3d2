// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/podigee/mcp-server/internal/logging"
)

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks the configuration for values that would prevent startup.
// A missing API key is deliberately not an error.
func (c *Config) Validate() error {
	if err := c.validatePodigee(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validatePodigee validates the upstream API settings
func (c *Config) validatePodigee() error {
	if err := validateAPIBaseURL(c.Podigee.BaseURL, "PODIGEE_BASE_URL"); err != nil {
		return err
	}
	if c.Podigee.Timeout <= 0 {
		return fmt.Errorf("PODIGEE_TIMEOUT must be positive, got: %v", c.Podigee.Timeout)
	}
	if c.Podigee.RequestsPerSecond < 0 {
		return fmt.Errorf("PODIGEE_REQUESTS_PER_SECOND must not be negative, got: %v", c.Podigee.RequestsPerSecond)
	}
	return nil
}

// validateAPIBaseURL validates an HTTP/HTTPS API root. Paths are allowed
// (the Podigee root carries /api/v1); query strings are not.
func validateAPIBaseURL(rawURL, fieldName string) error {
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

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}

// validateServer validates the transport selection
func (c *Config) validateServer() error {
	switch c.Server.Transport {
	case TransportStdio:
		return nil
	case TransportHTTP:
	default:
		return fmt.Errorf("MCP_TRANSPORT must be one of: stdio, http, got: %q", c.Server.Transport)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got: %v", c.Server.Timeout)
	}
	return nil
}

// validateRateLimits validates HTTP transport rate limiting bounds
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled || !c.IsHTTPTransport() {
		return nil
	}

	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQS must be between 1 and 100000, got: %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > time.Hour {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h, got: %v", c.Security.RateLimitWindow)
	}
	return nil
}

// validateLogging validates the logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// Warnings returns non-fatal configuration problems that should be logged at startup.
func (c *Config) Warnings() []string {
	var warnings []string
	if !c.HasAPIKey() {
		warnings = append(warnings, "No Podigee API key provided (PODIGEE_API_KEY). API calls will fail.")
	}
	if c.IsHTTPTransport() && c.Security.RateLimitDisabled {
		warnings = append(warnings, "HTTP transport rate limiting is disabled")
	}
	return warnings
}
