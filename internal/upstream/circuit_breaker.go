// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/podigee/mcp-server/internal/logging"
	"github.com/podigee/mcp-server/internal/metrics"
	"github.com/podigee/mcp-server/internal/models/podigee"
)

// circuitBreakerName labels the breaker in logs and metrics
const circuitBreakerName = "podigee-api"

// CircuitBreakerClient wraps an API with the circuit breaker pattern so a
// failing Podigee API is not hammered by every tool call.
//
// Only transport failures, 5xx and 429 responses count against the breaker.
// A missing API key, a 4xx, an undecodable body or a rejected parameter
// combination are caller problems and leave the breaker closed.
type CircuitBreakerClient struct {
	client API
	cb     *gobreaker.CircuitBreaker[any]
	name   string
}

// NewCircuitBreakerClient wraps client with a circuit breaker.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewCircuitBreakerClient(client API) *CircuitBreakerClient {
	return newCircuitBreakerClient(client, gobreaker.Settings{
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// newCircuitBreakerClient applies the shared hooks to settings
func newCircuitBreakerClient(client API, settings gobreaker.Settings) *CircuitBreakerClient {
	settings.Name = circuitBreakerName

	metrics.CircuitBreakerState.WithLabelValues(circuitBreakerName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(circuitBreakerName).Set(0)

	settings.ReadyToTrip = func(counts gobreaker.Counts) bool {
		if counts.Requests < 10 {
			return false
		}

		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		shouldTrip := failureRatio >= 0.6
		if shouldTrip {
			logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
		}
		return shouldTrip
	}

	settings.IsSuccessful = countsAsSuccess

	settings.OnStateChange = func(name string, from, to gobreaker.State) {
		fromStr := stateToString(from)
		toStr := stateToString(to)

		logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

		metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		if to == gobreaker.StateClosed {
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
		}
	}

	return &CircuitBreakerClient{
		client: client,
		cb:     gobreaker.NewCircuitBreaker[any](settings),
		name:   circuitBreakerName,
	}
}

// countsAsSuccess reports whether err should leave the breaker's failure counts alone
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}

	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		return true
	}
	switch upErr.Kind {
	case ErrorKindTransport:
		return false
	case ErrorKindStatus:
		return upErr.StatusCode < 500 && upErr.StatusCode != http.StatusTooManyRequests
	default:
		return true
	}
}

// execute wraps an API call with circuit breaker protection
func (cbc *CircuitBreakerClient) execute(fn func() (any, error)) (any, error) {
	result, err := cbc.cb.Execute(fn)

	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			err = &UpstreamError{Resource: "circuit-breaker", Kind: ErrorKindTransport, Err: err}
		case countsAsSuccess(err):
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		default:
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
			counts := cbc.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	return result, nil
}

// State returns the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// castResult type-asserts the circuit breaker result
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// ListPodcasts lists podcasts with circuit breaker protection
func (cbc *CircuitBreakerClient) ListPodcasts(ctx context.Context) ([]podigee.Podcast, error) {
	return castResult[[]podigee.Podcast](cbc.execute(func() (any, error) {
		return cbc.client.ListPodcasts(ctx)
	}))
}

// PodcastAnalytics retrieves a podcast series with circuit breaker protection
func (cbc *CircuitBreakerClient) PodcastAnalytics(ctx context.Context, podcastID int64, from, to string) (*podigee.AnalyticsSeries, error) {
	return castResult[*podigee.AnalyticsSeries](cbc.execute(func() (any, error) {
		return cbc.client.PodcastAnalytics(ctx, podcastID, from, to)
	}))
}

// PodcastOverview retrieves overview statistics with circuit breaker protection
func (cbc *CircuitBreakerClient) PodcastOverview(ctx context.Context, podcastID int64, from, to string) (*podigee.Overview, error) {
	return castResult[*podigee.Overview](cbc.execute(func() (any, error) {
		return cbc.client.PodcastOverview(ctx, podcastID, from, to)
	}))
}

// EpisodeAnalytics retrieves an episode series with circuit breaker protection
func (cbc *CircuitBreakerClient) EpisodeAnalytics(ctx context.Context, q EpisodeAnalyticsQuery) (*podigee.AnalyticsSeries, error) {
	return castResult[*podigee.AnalyticsSeries](cbc.execute(func() (any, error) {
		return cbc.client.EpisodeAnalytics(ctx, q)
	}))
}

// ListEpisodes lists episodes with circuit breaker protection
func (cbc *CircuitBreakerClient) ListEpisodes(ctx context.Context, q EpisodeQuery) ([]podigee.Episode, error) {
	return castResult[[]podigee.Episode](cbc.execute(func() (any, error) {
		return cbc.client.ListEpisodes(ctx, q)
	}))
}

// PodcastDetails retrieves podcast metadata with circuit breaker protection
func (cbc *CircuitBreakerClient) PodcastDetails(ctx context.Context, podcastID int64, fieldsFilter []string) (*podigee.PodcastDetails, error) {
	return castResult[*podigee.PodcastDetails](cbc.execute(func() (any, error) {
		return cbc.client.PodcastDetails(ctx, podcastID, fieldsFilter)
	}))
}

// PodcastEpisodesAnalytics retrieves batch episode downloads with circuit breaker protection
func (cbc *CircuitBreakerClient) PodcastEpisodesAnalytics(ctx context.Context, q BatchQuery) (*podigee.BatchAnalytics, error) {
	return castResult[*podigee.BatchAnalytics](cbc.execute(func() (any, error) {
		return cbc.client.PodcastEpisodesAnalytics(ctx, q)
	}))
}

// Ensure CircuitBreakerClient implements API
var _ API = (*CircuitBreakerClient)(nil)
