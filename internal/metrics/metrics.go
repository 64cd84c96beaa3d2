// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

// Package metrics holds the Prometheus collectors for the Podigee MCP server.
//
// Collectors are registered on the default registry through promauto and are
// exported on /metrics when the HTTP transport is enabled. Instrumentation covers:
//   - Upstream Podigee API requests (count, latency, failures)
//   - Circuit breaker state around the upstream client
//   - Tool invocations and their outcome
//   - Parameter clamping and malformed upstream values
//   - HTTP transport requests
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream Podigee API Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podigee_upstream_requests_total",
			Help: "Total number of requests sent to the Podigee API",
		},
		[]string{"resource", "status_code"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "podigee_upstream_request_duration_seconds",
			Help:    "Podigee API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"resource"},
	)

	UpstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podigee_upstream_errors_total",
			Help: "Total number of failed Podigee API requests",
		},
		[]string{"resource", "error_type"}, // error_type: "transport", "status", "decode", "credentials"
	)

	// Tool Invocation Metrics
	ToolInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podigee_tool_invocations_total",
			Help: "Total number of tool invocations",
		},
		[]string{"tool", "outcome"}, // outcome: "success", "error", "empty"
	)

	ToolDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "podigee_tool_duration_seconds",
			Help:    "Tool execution duration in seconds, upstream calls included",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"tool"},
	)

	LimitClamped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podigee_limit_clamped_total",
			Help: "Total number of limit arguments reduced to the page size maximum",
		},
		[]string{"tool"},
	)

	MalformedValues = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podigee_malformed_values_total",
			Help: "Total number of non-integer breakdown values skipped during aggregation",
		},
		[]string{"dimension"},
	)

	// HTTP Transport Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of HTTP transport requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP transport request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active HTTP transport requests",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and transport information",
		},
		[]string{"version", "transport"},
	)
)

// RecordUpstreamRequest records a completed Podigee API request.
// statusCode is 0 when the request never produced a response.
func RecordUpstreamRequest(resource string, statusCode int, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(resource, strconv.Itoa(statusCode)).Inc()
	UpstreamRequestDuration.WithLabelValues(resource).Observe(duration.Seconds())
}

// RecordUpstreamError records a failed Podigee API request.
func RecordUpstreamError(resource, errorType string) {
	UpstreamErrors.WithLabelValues(resource, errorType).Inc()
}

// RecordToolInvocation records the outcome and duration of one tool call.
func RecordToolInvocation(tool, outcome string, duration time.Duration) {
	ToolInvocations.WithLabelValues(tool, outcome).Inc()
	ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordLimitClamp records a limit argument reduced to the maximum page size.
func RecordLimitClamp(tool string) {
	LimitClamped.WithLabelValues(tool).Inc()
}

// RecordMalformedValues records n skipped breakdown values for a dimension.
func RecordMalformedValues(dimension string, n int) {
	if n <= 0 {
		return
	}
	MalformedValues.WithLabelValues(dimension).Add(float64(n))
}

// RecordAPIRequest records an HTTP transport request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active HTTP transport requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the running version and transport.
func SetAppInfo(version, transport string) {
	AppInfo.WithLabelValues(version, transport).Set(1)
}
