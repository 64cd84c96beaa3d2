// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package api

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status           string  `json:"status"`
	Version          string  `json:"version"`
	APIKeyConfigured bool    `json:"api_key_configured"`
	CircuitBreaker   string  `json:"circuit_breaker,omitempty"`
	Uptime           float64 `json:"uptime_seconds"`
}

// HealthLive handles GET /api/v1/health/live. The process answering is enough.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:           "alive",
		Version:          h.version,
		APIKeyConfigured: h.apiKeyConfigured,
		Uptime:           time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready.
//
// Not ready without an API key, or while the upstream circuit breaker is open.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:           "ready",
		Version:          h.version,
		APIKeyConfigured: h.apiKeyConfigured,
		Uptime:           time.Since(h.startTime).Seconds(),
	}
	code := http.StatusOK

	if h.breaker != nil {
		state := h.breaker.State()
		status.CircuitBreaker = state.String()
		if state == gobreaker.StateOpen {
			status.Status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	if !h.apiKeyConfigured {
		status.Status = "unconfigured"
		code = http.StatusServiceUnavailable
	}

	NewResponseWriter(w, r).Status(code, status)
}
