// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

// Package config loads and validates the server configuration.
//
// Configuration is layered with koanf: built-in defaults, then an optional
// YAML file (CONFIG_PATH or config.yaml), then environment variables. The only
// value a deployment normally sets is PODIGEE_API_KEY; everything else has a
// working default.
//
// A missing API key is not a startup error. The server starts, logs a warning,
// and every tool call reports the upstream failure instead.
package config

import (
	"time"
)

// DefaultPodigeeBaseURL is the production Podigee REST API root.
const DefaultPodigeeBaseURL = "https://app.podigee.com/api/v1"

// Transport names accepted by server.transport.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config is the complete server configuration.
type Config struct {
	Podigee  PodigeeConfig  `koanf:"podigee"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// PodigeeConfig holds the upstream API settings.
type PodigeeConfig struct {
	// APIKey is sent verbatim in the Token header of every request.
	APIKey string `koanf:"api_key"`

	// BaseURL is the API root, including the /api/v1 path.
	BaseURL string `koanf:"base_url"`

	// Timeout bounds a single upstream HTTP request.
	Timeout time.Duration `koanf:"timeout"`

	// RequestsPerSecond throttles outbound requests. 0 disables throttling.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// CircuitBreaker wraps the client in a gobreaker circuit breaker.
	CircuitBreaker bool `koanf:"circuit_breaker"`
}

// ServerConfig selects and configures the tool transport.
type ServerConfig struct {
	Transport string        `koanf:"transport"` // "stdio" (default) or "http"
	Host      string        `koanf:"host"`
	Port      int           `koanf:"port"`
	Timeout   time.Duration `koanf:"timeout"`
}

// SecurityConfig holds HTTP transport protection settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// HasAPIKey reports whether an upstream credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.Podigee.APIKey != ""
}

// IsHTTPTransport reports whether the HTTP transport is selected.
func (c *Config) IsHTTPTransport() bool {
	return c.Server.Transport == TransportHTTP
}
