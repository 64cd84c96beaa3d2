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
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

func newTestBreaker(api API) *CircuitBreakerClient {
	return newCircuitBreakerClient(api, gobreaker.Settings{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     time.Minute,
	})
}

func TestCountsAsSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: true},
		{name: "transport", err: &UpstreamError{Kind: ErrorKindTransport, Err: errors.New("refused")}, want: false},
		{name: "server error", err: &UpstreamError{Kind: ErrorKindStatus, StatusCode: 503}, want: false},
		{name: "too many requests", err: &UpstreamError{Kind: ErrorKindStatus, StatusCode: http.StatusTooManyRequests}, want: false},
		{name: "not found", err: &UpstreamError{Kind: ErrorKindStatus, StatusCode: 404}, want: true},
		{name: "unauthorized", err: &UpstreamError{Kind: ErrorKindStatus, StatusCode: 401}, want: true},
		{name: "decode", err: &UpstreamError{Kind: ErrorKindDecode}, want: true},
		{name: "credentials", err: &UpstreamError{Kind: ErrorKindCredentials, Err: ErrMissingAPIKey}, want: true},
		{name: "invalid combination", err: ErrInvalidParameterCombination, want: true},
		{name: "canceled", err: fmt.Errorf("wrapped: %w", context.Canceled), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := countsAsSuccess(tt.err); got != tt.want {
				t.Errorf("countsAsSuccess(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestCircuitBreakerClient_PassesResultsThrough(t *testing.T) {
	api := &stubAPI{}
	cbc := newTestBreaker(api)

	series, err := cbc.PodcastAnalytics(context.Background(), 1, "", "")
	if err != nil || series == nil {
		t.Fatalf("PodcastAnalytics() = (%v, %v)", series, err)
	}
	if _, err := cbc.ListPodcasts(context.Background()); err != nil {
		t.Fatalf("ListPodcasts() error = %v", err)
	}
	if cbc.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed", cbc.State())
	}
}

func TestCircuitBreakerClient_OpensOnTransportFailures(t *testing.T) {
	api := &stubAPI{err: &UpstreamError{Kind: ErrorKindTransport, Err: errors.New("connection refused")}}
	cbc := newTestBreaker(api)

	for i := 0; i < 10; i++ {
		if _, err := cbc.PodcastOverview(context.Background(), 1, "", ""); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}
	if cbc.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open", cbc.State())
	}

	calls := len(api.calls)
	_, err := cbc.PodcastOverview(context.Background(), 1, "", "")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected ErrOpenState, got %v", err)
	}
	if !IsUpstreamError(err) {
		t.Error("rejection should surface as an UpstreamError")
	}
	if len(api.calls) != calls {
		t.Error("open breaker must not call the wrapped client")
	}
}

func TestCircuitBreakerClient_IgnoresClientErrors(t *testing.T) {
	api := &stubAPI{err: &UpstreamError{Kind: ErrorKindStatus, StatusCode: http.StatusNotFound, Err: errors.New("not found")}}
	cbc := newTestBreaker(api)

	for i := 0; i < 15; i++ {
		_, err := cbc.PodcastDetails(context.Background(), 1, nil)
		var upErr *UpstreamError
		if !errors.As(err, &upErr) || upErr.StatusCode != http.StatusNotFound {
			t.Fatalf("call %d: expected the 404 to pass through, got %v", i, err)
		}
	}
	if cbc.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed", cbc.State())
	}
}

func TestCastResult(t *testing.T) {
	t.Parallel()

	if _, err := castResult[*int](nil, errors.New("boom")); err == nil {
		t.Error("expected error passthrough")
	}
	if v, err := castResult[*int](nil, nil); err != nil || v != nil {
		t.Errorf("nil result should yield zero value, got (%v, %v)", v, err)
	}
	if _, err := castResult[*int]("wrong", nil); err == nil {
		t.Error("expected type mismatch error")
	}
}

func TestStateToString(t *testing.T) {
	t.Parallel()

	if stateToString(gobreaker.StateHalfOpen) != "half-open" || stateToFloat(gobreaker.StateOpen) != 2 {
		t.Error("unexpected state mapping")
	}
}
