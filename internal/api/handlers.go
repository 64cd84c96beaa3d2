// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package api

import (
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/podigee/mcp-server/internal/tools"
)

// BreakerStatus reports the state of the upstream circuit breaker.
// Implemented by *upstream.CircuitBreakerClient.
type BreakerStatus interface {
	State() gobreaker.State
}

// Handler serves the HTTP transport endpoints.
type Handler struct {
	registry         *tools.Registry
	version          string
	apiKeyConfigured bool
	breaker          BreakerStatus // nil when the breaker is disabled
	startTime        time.Time
}

// HandlerConfig holds the dependencies of a Handler.
type HandlerConfig struct {
	Registry         *tools.Registry
	Version          string
	APIKeyConfigured bool
	Breaker          BreakerStatus
}

// NewHandler creates the HTTP handler set.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		registry:         cfg.Registry,
		version:          cfg.Version,
		apiKeyConfigured: cfg.APIKeyConfigured,
		breaker:          cfg.Breaker,
		startTime:        time.Now(),
	}
}
