// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordUpstreamRequest(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("test_podcasts", "200"))

	RecordUpstreamRequest("test_podcasts", 200, 25*time.Millisecond)
	RecordUpstreamRequest("test_podcasts", 200, 40*time.Millisecond)

	after := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("test_podcasts", "200"))
	if after-before != 2 {
		t.Errorf("expected counter to increase by 2, got %v", after-before)
	}
}

func TestRecordUpstreamError(t *testing.T) {
	before := testutil.ToFloat64(UpstreamErrors.WithLabelValues("test_episodes", "status"))

	RecordUpstreamError("test_episodes", "status")

	after := testutil.ToFloat64(UpstreamErrors.WithLabelValues("test_episodes", "status"))
	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestRecordToolInvocation(t *testing.T) {
	tests := []struct {
		name    string
		tool    string
		outcome string
	}{
		{"success", "test_list_podcasts", "success"},
		{"error", "test_list_podcasts", "error"},
		{"empty result", "test_list_episodes", "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(ToolInvocations.WithLabelValues(tt.tool, tt.outcome))
			RecordToolInvocation(tt.tool, tt.outcome, 10*time.Millisecond)
			after := testutil.ToFloat64(ToolInvocations.WithLabelValues(tt.tool, tt.outcome))
			if after-before != 1 {
				t.Errorf("expected counter to increase by 1, got %v", after-before)
			}
		})
	}
}

func TestRecordLimitClamp(t *testing.T) {
	before := testutil.ToFloat64(LimitClamped.WithLabelValues("test_clamp"))
	RecordLimitClamp("test_clamp")
	if got := testutil.ToFloat64(LimitClamped.WithLabelValues("test_clamp")) - before; got != 1 {
		t.Errorf("expected clamp counter to increase by 1, got %v", got)
	}
}

func TestRecordMalformedValues(t *testing.T) {
	before := testutil.ToFloat64(MalformedValues.WithLabelValues("test_formats"))

	RecordMalformedValues("test_formats", 3)
	RecordMalformedValues("test_formats", 0)
	RecordMalformedValues("test_formats", -1)

	if got := testutil.ToFloat64(MalformedValues.WithLabelValues("test_formats")) - before; got != 3 {
		t.Errorf("expected malformed counter to increase by 3, got %v", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)

	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 1 {
		t.Errorf("expected one active request, got %v", got)
	}
	TrackActiveRequest(false)
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("test-version", "stdio")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("test-version", "stdio")); got != 1 {
		t.Errorf("expected app_info gauge to be 1, got %v", got)
	}
}
