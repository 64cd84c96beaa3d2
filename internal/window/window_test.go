// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package window

import (
	"testing"
	"time"
)

var now = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func intPtr(i int) *int { return &i }

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		from, to   string
		daysOffset *int
		want       Window
	}{
		{
			name: "explicit pair is verbatim",
			from: "2024-01-01", to: "2024-01-31",
			want: Window{From: "2024-01-01", To: "2024-01-31"},
		},
		{
			name: "explicit pair overrides offset",
			from: "2024-01-01", to: "2024-01-31",
			daysOffset: intPtr(7),
			want:       Window{From: "2024-01-01", To: "2024-01-31"},
		},
		{
			name:       "offset only",
			daysOffset: intPtr(7),
			want:       Window{From: "2024-03-08", To: "2024-03-15"},
		},
		{
			name: "no inputs uses default lookback",
			want: Window{From: "2024-02-14", To: "2024-03-15"},
		},
		{
			name: "from without to falls back",
			from: "2024-01-01",
			want: Window{From: "2024-02-14", To: "2024-03-15"},
		},
		{
			name:       "to without from uses offset",
			to:         "2024-01-31",
			daysOffset: intPtr(1),
			want:       Window{From: "2024-03-14", To: "2024-03-15"},
		},
		{
			name:       "zero offset is today only",
			daysOffset: intPtr(0),
			want:       Window{From: "2024-03-15", To: "2024-03-15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Resolve(now, tt.from, tt.to, tt.daysOffset)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolve_OffsetArithmetic(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 30, 90, 365} {
		got := Resolve(now, "", "", &n)
		wantFrom := now.AddDate(0, 0, -n).Format(DateLayout)
		if got.To != "2024-03-15" || got.From != wantFrom {
			t.Errorf("offset %d: got %+v, want from %s to 2024-03-15", n, got, wantFrom)
		}
	}
}

func TestDefaultAndOrDefault(t *testing.T) {
	t.Parallel()

	want := Window{From: "2024-02-14", To: "2024-03-15"}
	if got := Default(now); got != want {
		t.Errorf("Default() = %+v, want %+v", got, want)
	}
	if got := OrDefault(now, "", "2024-01-31"); got != want {
		t.Errorf("OrDefault() = %+v, want %+v", got, want)
	}
	explicit := Window{From: "2023-12-01", To: "2023-12-31"}
	if got := OrDefault(now, explicit.From, explicit.To); got != explicit {
		t.Errorf("OrDefault() = %+v, want %+v", got, explicit)
	}
}

func TestClampLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		limit       int
		want        int
		wantClamped bool
	}{
		{limit: 1, want: 1},
		{limit: 10, want: 10},
		{limit: 50, want: 50},
		{limit: 51, want: 50, wantClamped: true},
		{limit: 1000, want: 50, wantClamped: true},
	}

	for _, tt := range tests {
		got, clamped := ClampLimit(tt.limit)
		if got != tt.want || clamped != tt.wantClamped {
			t.Errorf("ClampLimit(%d) = (%d, %v), want (%d, %v)", tt.limit, got, clamped, tt.want, tt.wantClamped)
		}
	}
}
